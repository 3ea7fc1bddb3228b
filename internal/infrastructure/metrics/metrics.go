package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestCounter counts HTTP requests by status code, method, and route
	RequestCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bootcamp_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"status", "method", "path"},
	)

	// RequestDuration measures HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bootcamp_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"status", "method", "path"},
	)

	// RequestInProgress counts HTTP requests currently being processed
	RequestInProgress = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "bootcamp_http_requests_in_progress",
			Help: "Number of HTTP requests currently being processed",
		},
		[]string{"method", "path"},
	)

	// DatabaseOperationDuration measures repository query duration
	DatabaseOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bootcamp_db_operation_duration_seconds",
			Help:    "Database operation duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "table"},
	)

	// LifecycleTransitions counts real status transitions (not idempotent repeats)
	LifecycleTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bootcamp_lifecycle_transitions_total",
			Help: "Total number of event and submission status transitions",
		},
		[]string{"entity", "status"},
	)

	// AnnouncementFailures counts notifier errors
	AnnouncementFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bootcamp_announcement_failures_total",
			Help: "Total number of failed lifecycle announcements",
		},
	)
)

// RecordDBOperation records the duration of a database operation
func RecordDBOperation(operation string, table string, startTime time.Time) {
	duration := time.Since(startTime).Seconds()
	DatabaseOperationDuration.WithLabelValues(operation, table).Observe(duration)
}
