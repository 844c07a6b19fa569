package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/phrazzld/redlib-api/internal/api"
	apiMiddleware "github.com/phrazzld/redlib-api/internal/api/middleware"
	"github.com/phrazzld/redlib-api/internal/api/shared"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Returns the configured router.
func (app *application) setupRouter() http.Handler {
	// Create a router
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger)) // Trace IDs for log/error correlation
	r.Use(app.metrics.Middleware)

	// Create API handlers using the application's dependencies
	collectionsHandler := api.NewCollectionsHandler(app.collections, app.logger)

	// Register routes
	r.Route("/api", func(r chi.Router) {
		// Collection endpoints
		r.Get("/collections", collectionsHandler.List)
		r.Get("/collections/{name}", collectionsHandler.Get)

		// Everything under /api answers with an envelope, including misses
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithError(w, r, http.StatusNotFound, "Not found")
		})
		r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
			shared.RespondWithError(w, r, http.StatusMethodNotAllowed, "Method not allowed")
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	// Prometheus scrape endpoint
	r.Handle("/metrics", app.metrics.Handler())

	return r
}
