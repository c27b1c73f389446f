// Package metrics holds the Prometheus collectors of the HTTP surface. A
// Metrics value is built once and passed explicitly to the components that
// record into it.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus collectors for the API.
type Metrics struct {
	httpRequestDuration *prometheus.HistogramVec
	httpRequestsTotal   *prometheus.CounterVec

	historyRequestsTotal *prometheus.CounterVec
	historyItemsReturned *prometheus.HistogramVec
}

// New creates a Metrics instance and registers all collectors on registry.
// If registry is nil, prometheus.DefaultRegisterer is used.
func New(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletfeed_http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0, 15.0},
			},
			[]string{"handler", "method", "status"},
		),
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletfeed_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),
		historyRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "walletfeed_history_requests_total",
				Help: "Transaction history requests by network and outcome",
			},
			[]string{"network", "outcome"},
		),
		historyItemsReturned: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "walletfeed_history_items_returned",
				Help:    "Number of transactions returned per successful history request",
				Buckets: []float64{0, 1, 2, 5, 8, 10},
			},
			[]string{"network"},
		),
	}
}

// RecordHTTPRequest records an HTTP request with duration.
func (m *Metrics) RecordHTTPRequest(handler, method string, statusCode int, duration float64) {
	status := statusCodeToString(statusCode)
	m.httpRequestDuration.WithLabelValues(handler, method, status).Observe(duration)
	m.httpRequestsTotal.WithLabelValues(handler, method, status).Inc()
}

// RecordHistoryRequest records the outcome of one history request.
// items is only observed for the "ok" outcome.
func (m *Metrics) RecordHistoryRequest(network, outcome string, items int) {
	m.historyRequestsTotal.WithLabelValues(network, outcome).Inc()
	if outcome == "ok" {
		m.historyItemsReturned.WithLabelValues(network).Observe(float64(items))
	}
}

// Middleware records request metrics under handlerName, a constant identifier
// of the route such as "/v1/transactions".
func Middleware(m *Metrics, handlerName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			next.ServeHTTP(wrapped, r)

			if m != nil {
				m.RecordHTTPRequest(handlerName, r.Method, wrapped.statusCode, time.Since(start).Seconds())
			}
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code and calls the underlying WriteHeader.
func (w *responseWriter) WriteHeader(statusCode int) {
	w.statusCode = statusCode
	w.ResponseWriter.WriteHeader(statusCode)
}

func statusCodeToString(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500 && code < 600:
		return "5xx"
	default:
		return "unknown"
	}
}
