package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Counter metrics
var (
	// HTTP request counter by endpoint and status
	HTTPRequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "baubuero_http_requests_total",
			Help: "Total number of HTTP requests by endpoint and status",
		},
		[]string{"endpoint", "method", "status"},
	)

	// Login counter
	LoginCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "baubuero_login_attempts_total",
			Help: "Total number of login attempts",
		},
	)

	// Authentication error counter
	AuthErrorCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "baubuero_auth_errors_total",
			Help: "Total number of authentication errors",
		},
		[]string{"type"}, // "invalid_credentials", "invalid_session", "missing_session"
	)

	// Record write counter by entity and operation
	RecordOperationCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "baubuero_record_operations_total",
			Help: "Total number of record operations by entity",
		},
		[]string{"entity", "operation"}, // operation is "create", "update" or "delete"
	)
)

// Histogram metrics
var (
	// Request duration
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "baubuero_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint", "method", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		HTTPRequestCounter,
		LoginCounter,
		AuthErrorCounter,
		RecordOperationCounter,
		RequestDuration,
	)
}

// RecordAuthError increments the auth error counter for the given type.
func RecordAuthError(errorType string) {
	AuthErrorCounter.WithLabelValues(errorType).Inc()
}

// RecordOperation increments the record operation counter.
func RecordOperation(entity, operation string) {
	RecordOperationCounter.WithLabelValues(entity, operation).Inc()
}
