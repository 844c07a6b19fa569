package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareCountsByRouteAndStatus(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/collections/{name}", func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "name") == "missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})

	for _, path := range []string{"/collections/ai", "/collections/news", "/collections/missing"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Responses.WithLabelValues("/collections/{name}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Responses.WithLabelValues("/collections/{name}", "404")))
}

func TestHandlerExposesCollectionsGauge(t *testing.T) {
	m := New()
	m.SetCollectionsConfigured(3)

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "redlib_collections_configured 3"))
}

func TestMiddlewareGroupsUnmatchedPaths(t *testing.T) {
	m := New()

	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {})

	for _, path := range []string{"/random-0", "/random-1", "/a/b/c", "/wp-login.php", "/random-4"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 1, testutil.CollectAndCount(m.Responses), "unmatched paths should share one series")
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Responses.WithLabelValues(UnmatchedRoute, "404")))
}
