// Package main implements the entry point for the redlib API server, which
// exposes configured subreddit collections and serves JSON envelopes.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/phrazzld/redlib-api/internal/config"
	"github.com/phrazzld/redlib-api/internal/platform/logger"
)

// main is the entry point for the redlib API server. It loads configuration,
// sets up logging, builds the application and runs the HTTP server until a
// shutdown signal arrives.
func main() {
	// Load a local .env file if present; a missing file is normal outside
	// local development
	_ = godotenv.Load()

	// Load configuration and the raw settings accessor
	cfg, settings, err := loadAppConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set up structured logging using the configured log level
	l, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		log.Fatalf("Failed to set up logger: %v", err)
	}

	// Log configuration details now that the JSON logger is the default
	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"truncate_limit", cfg.API.TruncateLimit)

	// Build the application and run it until shutdown
	app := newApplication(cfg, settings.Get, l)
	if err := app.Run(context.Background()); err != nil {
		l.Error("Server exited with error", "error", err)
		log.Fatal(err)
	}
}

// loadAppConfig loads the typed configuration and the raw settings accessor
// from one shared viper instance, so REDLIB_COLLECTIONS can come from the
// same config file as everything else.
func loadAppConfig() (*config.Config, *config.Settings, error) {
	v := viper.New()

	cfg, err := config.LoadWith(v)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return cfg, config.NewSettings(v), nil
}
