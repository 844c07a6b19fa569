package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/redlib-api/internal/api/shared"
	"github.com/phrazzld/redlib-api/internal/collections"
)

// CollectionSource is the read side of the collections registry.
type CollectionSource interface {
	All() []collections.Collection
	Resolve(name string) (string, bool)
}

// CollectionsHandler serves the configured collections.
type CollectionsHandler struct {
	source CollectionSource
	logger *slog.Logger
}

// NewCollectionsHandler creates a new CollectionsHandler.
func NewCollectionsHandler(source CollectionSource, logger *slog.Logger) *CollectionsHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CollectionsHandler")
	}

	return &CollectionsHandler{
		source: source,
		logger: logger.With(slog.String("component", "collections_handler")),
	}
}

// List handles GET /collections.
func (h *CollectionsHandler) List(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithData(w, r, CollectionsResponse{Collections: h.source.All()})
}

// Get handles GET /collections/{name}. Unknown aliases yield 404.
func (h *CollectionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	target, ok := h.source.Resolve(name)
	if !ok {
		h.logger.Debug("collection not found", slog.String("name", name))
		shared.RespondWithError(w, r, http.StatusNotFound, "Collection not found")
		return
	}

	shared.RespondWithData(w, r, CollectionResponse{Name: name, Target: target})
}
