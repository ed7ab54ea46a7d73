package metrics

import (
	"github.com/aalemi-dev/sentryotel/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// outcomeOK labels operations reported without a SubResource.
const outcomeOK = "ok"

var _ observability.Observer = (*OperationObserver)(nil)

// OperationObserver turns span processor and scope store operations into
// Prometheus metrics:
//
//   - <ns>_operations_total{component, operation, outcome}
//   - <ns>_operation_errors_total{component, operation}
//   - <ns>_operation_duration_seconds{component, operation}
//   - <ns>_scopestore_entries
//
// The outcome label is the operation's SubResource ("root", "forked",
// "not_enabled", "hit", "miss", ...), or "ok" when it has none.
type OperationObserver struct {
	operations *prometheus.CounterVec
	errors     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	entries    prometheus.Gauge
}

// NewOperationObserver registers the operation metrics in m.
// It panics if they are already registered there, like MustRegister.
func NewOperationObserver(m *Metrics) *OperationObserver {
	factory := promauto.With(m.registerer)

	return &OperationObserver{
		operations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "operations_total",
			Help:      "Span processor and scope store operations by outcome.",
		}, []string{"component", "operation", "outcome"}),
		errors: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: m.namespace,
			Name:      "operation_errors_total",
			Help:      "Operations that ended with an error.",
		}, []string{"component", "operation"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: m.namespace,
			Name:      "operation_duration_seconds",
			Help:      "Time spent in span processor and scope store operations.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
		}, []string{"component", "operation"}),
		entries: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: m.namespace,
			Name:      "scopestore_entries",
			Help:      "Scope associations not yet reclaimed.",
		}),
	}
}

// ObserveOperation records one operation.
func (o *OperationObserver) ObserveOperation(ctx observability.OperationContext) {
	outcome := ctx.SubResource
	if outcome == "" {
		outcome = outcomeOK
	}

	o.operations.WithLabelValues(ctx.Component, ctx.Operation, outcome).Inc()
	o.duration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())

	if ctx.Error != nil {
		o.errors.WithLabelValues(ctx.Component, ctx.Operation).Inc()
	}

	if ctx.Component == "scopestore" {
		o.entries.Set(float64(ctx.Size))
	}
}
