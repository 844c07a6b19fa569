// Package metrics holds the Prometheus collectors exported by the server.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	registry *prometheus.Registry

	Responses             *prometheus.CounterVec
	CollectionsConfigured prometheus.Gauge
}

// New creates and registers all Prometheus metrics on a dedicated registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		Responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "redlib_api_responses_total",
			Help: "Total number of API responses by route pattern and status code",
		}, []string{"route", "status"}),
		CollectionsConfigured: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "redlib_collections_configured",
			Help: "Number of collection aliases parsed from configuration",
		}),
	}
	reg.MustRegister(m.Responses, m.CollectionsConfigured)
	return m
}

// SetCollectionsConfigured records the number of configured collections.
func (m *Metrics) SetCollectionsConfigured(n int) {
	m.CollectionsConfigured.Set(float64(n))
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Middleware counts responses by route pattern and status code. Requests
// that match no route share the UnmatchedRoute label.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		m.Responses.WithLabelValues(routePattern(r), strconv.Itoa(status)).Inc()
	})
}
