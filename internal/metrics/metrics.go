// Package metrics provides Prometheus metrics for the webutil API and helpers.
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
	// HTTP request metrics
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webutil_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "webutil_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	// Clipboard metrics
	clipboardWritesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webutil_clipboard_writes_total",
			Help: "Total clipboard writes by provider",
		},
		[]string{"provider", "status"},
	)

	// Debounce/throttle metrics
	timingInvocationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webutil_timing_invocations_total",
			Help: "Debounce and throttle wrapper outcomes",
		},
		[]string{"kind", "result"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RecordHTTPRequest records an HTTP request metric.
func RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordClipboardWrite records a clipboard write through the named provider.
func RecordClipboardWrite(provider string, success bool) {
	status := "success"
	if !success {
		status = "error"
	}
	clipboardWritesTotal.WithLabelValues(provider, status).Inc()
}

// RecordTiming records a debounce or throttle outcome, e.g. ("throttle", "dropped").
func RecordTiming(kind, result string) {
	timingInvocationsTotal.WithLabelValues(kind, result).Inc()
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware returns HTTP middleware that records request metrics.
// The route pattern is used as the path label when the mux set one.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)
		// Unrouted paths share one label to keep cardinality bounded.
		path := r.Pattern
		if path == "" {
			path = "unmatched"
		}
		RecordHTTPRequest(r.Method, path, rw.statusCode, time.Since(start))
	})
}
