package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/sounicbehera/madina-technician-app/internal/api"
	"github.com/sounicbehera/madina-technician-app/internal/auth"
	"github.com/sounicbehera/madina-technician-app/internal/config"
	"github.com/sounicbehera/madina-technician-app/internal/extlink"
	"github.com/sounicbehera/madina-technician-app/internal/screens"
	"github.com/sounicbehera/madina-technician-app/internal/session"
	"github.com/sounicbehera/madina-technician-app/internal/ui"
)

func main() {
	// Structured JSON logging on stderr; stdout belongs to the screens
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(),
	}))
	slog.SetDefault(logger)

	configPath := os.Getenv("TECHNICIAN_CONFIG")
	if configPath == "" {
		if path, err := config.DefaultPath(); err == nil {
			configPath = path
		}
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		slog.Error("Failed to load configuration", "path", configPath, "error", err)
		os.Exit(1)
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath, err = session.DefaultPath()
		if err != nil {
			slog.Error("Failed to resolve session path", "error", err)
			os.Exit(1)
		}
	}

	slog.Info("Starting technician app",
		"api_base_url", cfg.APIBaseURL,
		"session_file", sessionPath)

	client := api.NewClient(cfg.APIBaseURL, cfg.HTTPTimeout)
	store := session.NewFileStore(sessionPath)

	authCtx := auth.NewContext(client, store)
	authCtx.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := ui.NewTerminal(os.Stdin, os.Stdout)
	nav := screens.NewNavigator(term, authCtx, client, extlink.SystemOpener{}, cfg.UPIQRURL)
	nav.Run(ctx)

	slog.Info("Technician app exiting")
}

// logLevel reads LOG_LEVEL, defaulting to info.
func logLevel() slog.Level {
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
