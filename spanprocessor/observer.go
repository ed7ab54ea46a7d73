package spanprocessor

import (
	"time"

	"github.com/aalemi-dev/sentryotel/observability"
	"go.opentelemetry.io/otel/trace"
)

// observeOperation safely calls the observer if it's not nil.
func (p *Processor) observeOperation(operation string, sc trace.SpanContext, subResource string, start time.Time, err error) {
	if p.observer != nil {
		p.observer.ObserveOperation(observability.OperationContext{
			Component:   "spanprocessor",
			Operation:   operation,
			Resource:    sc.SpanID().String(),
			SubResource: subResource,
			Duration:    time.Since(start),
			Error:       err,
		})
	}
}
