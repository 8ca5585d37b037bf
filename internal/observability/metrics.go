package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for EngagementOperations.
const (
	OutcomeSuccess        = "success"
	OutcomeRejected       = "rejected"
	OutcomePartialFailure = "partial_failure"
	OutcomeError          = "error"
)

var (
	// EngagementOperations counts coordinator operations by name and outcome.
	EngagementOperations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_engagement_operations_total",
		Help: "Total engagement operations by operation and outcome",
	}, []string{"operation", "outcome"})

	// PartialFailures counts multi-step mutations that stopped after committing some steps.
	PartialFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_partial_failures_total",
		Help: "Total partially applied engagement mutations by operation and failed step",
	}, []string{"operation", "step"})

	// CascadeDeletedComments observes how many comments a single delete removed.
	CascadeDeletedComments = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "bloghub_cascade_deleted_comments",
		Help:    "Number of comments removed by one cascading delete",
		Buckets: []float64{1, 2, 5, 10, 25, 50, 100},
	})

	// RedisErrors counts Redis errors by command.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// ActiveWebSockets is the gauge of open websocket connections.
	ActiveWebSockets = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "bloghub_websocket_connections",
		Help: "Number of active WebSocket connections",
	})

	// WebSocketBackpressureDrops counts messages dropped due to backpressure by hub and reason.
	WebSocketBackpressureDrops = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bloghub_websocket_backpressure_drops_total",
		Help: "Total number of WebSocket messages dropped due to backpressure",
	}, []string{"hub", "reason"})
)

// RecordOperation increments the engagement counter for op with the given outcome.
func RecordOperation(op, outcome string) {
	EngagementOperations.WithLabelValues(op, outcome).Inc()
}

// RecordPartialFailure increments the partial failure counter for op at step.
func RecordPartialFailure(op, step string) {
	PartialFailures.WithLabelValues(op, step).Inc()
}
