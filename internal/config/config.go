// Package config loads client configuration from an optional YAML file with
// environment variable overrides.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults used when neither the config file nor the environment sets a value.
const (
	DefaultAPIBaseURL = "http://localhost:5000"
	DefaultUPIQRURL   = "https://madinaservices.example.com/assets/upi-qr.png"
	DefaultTimeout    = 10 * time.Second
)

// Config holds the client settings.
type Config struct {
	APIBaseURL  string
	SessionFile string
	UPIQRURL    string
	HTTPTimeout time.Duration
}

// fileConfig is the YAML shape; the timeout is a duration string like "30s".
type fileConfig struct {
	APIBaseURL  string `yaml:"api_base_url"`
	SessionFile string `yaml:"session_file"`
	UPIQRURL    string `yaml:"upi_qr_url"`
	HTTPTimeout string `yaml:"http_timeout"`
}

// DefaultPath returns the config file location under the user's home
// directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".madina-technician", "config.yaml"), nil
}

// Load reads the YAML file at path when it exists, then applies environment
// overrides and defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	var file fileConfig

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &file); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{
		APIBaseURL:  file.APIBaseURL,
		SessionFile: file.SessionFile,
		UPIQRURL:    file.UPIQRURL,
	}
	if file.HTTPTimeout != "" {
		timeout, err := time.ParseDuration(file.HTTPTimeout)
		if err != nil {
			return nil, err
		}
		cfg.HTTPTimeout = timeout
	}

	cfg.APIBaseURL = getEnv("TECHNICIAN_API_URL", defaultString(cfg.APIBaseURL, DefaultAPIBaseURL))
	cfg.UPIQRURL = getEnv("TECHNICIAN_UPI_QR_URL", defaultString(cfg.UPIQRURL, DefaultUPIQRURL))
	cfg.SessionFile = getEnv("TECHNICIAN_SESSION_FILE", cfg.SessionFile)
	cfg.HTTPTimeout = getEnvDuration("TECHNICIAN_HTTP_TIMEOUT", defaultDuration(cfg.HTTPTimeout, DefaultTimeout))

	return cfg, nil
}

func defaultString(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func defaultDuration(value, fallback time.Duration) time.Duration {
	if value > 0 {
		return value
	}
	return fallback
}

// getEnv gets environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvDuration gets duration from environment variable
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
