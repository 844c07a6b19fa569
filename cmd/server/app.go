package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/redlib-api/internal/collections"
	"github.com/phrazzld/redlib-api/internal/config"
	"github.com/phrazzld/redlib-api/internal/platform/metrics"
)

// application holds all the shared application dependencies to simplify
// management and keep wiring in one place.
type application struct {
	// Configuration
	config *config.Config

	// Core services
	logger *slog.Logger

	// Collections registry, injected into the handlers that read it
	collections *collections.Registry

	// Prometheus collectors and the /metrics handler
	metrics *metrics.Metrics
}

// newApplication creates a new application instance with all dependencies
// initialized. The collections registry parses its setting on first query.
func newApplication(cfg *config.Config, settings config.SettingFunc, logger *slog.Logger) *application {
	return &application{
		config:      cfg,
		logger:      logger,
		collections: collections.NewRegistry(settings, logger),
		metrics:     metrics.New(),
	}
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	// Parse collections before serving so configuration problems show up in
	// the startup logs rather than on the first request
	count := app.collections.Len()
	app.metrics.SetCollectionsConfigured(count)
	app.logger.Info("Collections loaded", "count", count)

	// Set up router using the application dependencies
	router := app.setupRouter()

	// Start the HTTP server and block until it stops
	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
