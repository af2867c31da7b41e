package main

import (
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"

	"github.com/sounicbehera/madina-technician-app/internal/devserver"
)

func main() {
	// Setup structured JSON logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	port := getEnv("PORT", "5000")

	store := devserver.NewStore()
	tech, err := devserver.Seed(store)
	if err != nil {
		slog.Error("Failed to seed store", "error", err)
		os.Exit(1)
	}
	slog.Info("Seeded development data",
		"employee_id", tech.EmployeeID,
		"password", "technician")

	handler := devserver.NewHTTPHandler(store)
	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	// Setup graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("Devserver starting", "port", port)
		if err := http.ListenAndServe(":"+port, router); err != nil {
			slog.Error("Devserver failed to start", "error", err)
			os.Exit(1)
		}
	}()

	<-c
	slog.Info("Devserver shutting down")
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
