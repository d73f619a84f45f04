// Package cli provides common initialization for cmd/wishlog.
package cli

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"wishlog/internal/config"
	"wishlog/internal/log"
)

// SetupLogger initializes structured logging with default settings.
// Returns the configured logger and sets its slog logger as the
// process default so package-level slog calls share it.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	slog.SetDefault(logger.Logger)
	return logger
}

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}
	return cfg
}
