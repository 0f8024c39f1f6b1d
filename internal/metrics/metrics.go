// Package metrics provides Prometheus instrumentation for the advisor
// backend.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CacheHits counts TTL-cache reads served without recomputation.
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "investsmart_cache_hits_total",
		Help: "Cache reads answered from a live entry",
	}, []string{"kind"})

	// CacheMisses counts TTL-cache reads that forced a recomputation.
	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "investsmart_cache_misses_total",
		Help: "Cache reads that fell through to recomputation",
	}, []string{"kind"})

	// SuggestionsGenerated counts freshly assembled suggestion bundles,
	// partitioned by risk level.
	SuggestionsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "investsmart_suggestions_generated_total",
		Help: "Suggestion bundles assembled (cache misses only)",
	}, []string{"risk"})

	// FallbacksServed counts fail-open responses.
	FallbacksServed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "investsmart_fallbacks_served_total",
		Help: "Requests answered with the canned fallback payload",
	})

	// SimulationsRun counts strategy simulations by archetype.
	SimulationsRun = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "investsmart_simulations_run_total",
		Help: "Strategy simulations executed",
	}, []string{"strategy"})

	// HTTPRequestsTotal counts HTTP requests by method, path, and status.
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "investsmart_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration tracks request duration by method and path.
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "investsmart_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
	}, []string{"method", "path"})
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware records request counts and latencies.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		wrapped := &statusWriter{ResponseWriter: w, status: 200}
		next.ServeHTTP(wrapped, r)

		path := r.URL.Path
		HTTPRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
