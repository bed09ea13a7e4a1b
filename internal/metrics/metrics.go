package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	cartOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cart_operations_total",
			Help: "Total number of cart mutations by operation.",
		},
		[]string{"operation"},
	)

	ordersSubmittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_orders_submitted_total",
			Help: "Total number of order submissions by outcome.",
		},
		[]string{"outcome"},
	)

	fallbackServedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_fallback_served_total",
			Help: "Times illustrative fallback data replaced an upstream response.",
		},
		[]string{"source"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

func RecordCartOperation(operation string) {
	cartOperationsTotal.WithLabelValues(operation).Inc()
}

func RecordOrderSubmission(outcome string) {
	ordersSubmittedTotal.WithLabelValues(outcome).Inc()
}

func RecordFallback(source string) {
	fallbackServedTotal.WithLabelValues(source).Inc()
}

// wrapper around http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		start := time.Now()
		httpRequestsInFlight.Inc()

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		// The mux fills in path values during routing, so the pattern is only
		// known once the handler has run.
		pathPattern := r.URL.Path
		if id := r.PathValue("productId"); id != "" {
			pathPattern = r.URL.Path[:len(r.URL.Path)-len(id)] + "{productId}"
		}

		httpRequestsInFlight.Dec()
		httpRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, pathPattern).Inc()
		httpRequestsDuration.WithLabelValues(r.Method, pathPattern).Observe(time.Since(start).Seconds())

	})
}

func Handler() http.Handler {
	return promhttp.Handler()
}
