package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/redlib-api/internal/config"
	"github.com/phrazzld/redlib-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
)

func newTestApplication(raw string, present bool) *application {
	cfg := &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "debug"},
		API:    config.APIConfig{TruncateLimit: 400},
	}
	l, _ := logger.NewTestLogger()
	settings := func(name string) (string, bool) {
		if name != "REDLIB_COLLECTIONS" {
			return "", false
		}
		return raw, present
	}
	return newApplication(cfg, settings, l)
}

func TestRouterServesCollections(t *testing.T) {
	router := newTestApplication("news = worldnews+technology;ai=singularity+claude", true).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/collections", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"collections":[
		{"name":"ai","target":"singularity+claude"},
		{"name":"news","target":"worldnews+technology"}
	]},"error":null}`, w.Body.String())
	assert.Len(t, w.Header().Get("X-Trace-ID"), 32)
}

func TestRouterResolvesCollection(t *testing.T) {
	router := newTestApplication("ai=singularity+claude", true).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/collections/ai", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"data":{"name":"ai","target":"singularity+claude"},"error":null}`, w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/collections/nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"data":null,"error":"Collection not found"}`, w.Body.String())
}

func TestRouterUnknownAPIRouteUsesEnvelope(t *testing.T) {
	router := newTestApplication("", false).setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/unknown", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"data":null,"error":"Not found"}`, w.Body.String())
}

func TestRouterHealthAndMetrics(t *testing.T) {
	app := newTestApplication("ai=singularity", true)
	app.metrics.SetCollectionsConfigured(app.collections.Len())
	router := app.setupRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, "redlib_collections_configured 1"))
	assert.True(t, strings.Contains(body, `redlib_api_responses_total{route="/health",status="200"} 1`))
}

func TestRouterMetricsGroupUnmatchedPaths(t *testing.T) {
	router := newTestApplication("", false).setupRouter()

	for i := 0; i < 5; i++ {
		path := fmt.Sprintf("/random-%d", i)
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := w.Body.String()

	assert.Contains(t, body, `redlib_api_responses_total{route="unmatched",status="404"} 5`)
	assert.NotContains(t, body, "/random-")
}
