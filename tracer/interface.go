package tracer

import (
	"context"

	"github.com/aalemi-dev/sentryotel/reporting"
	"github.com/aalemi-dev/sentryotel/scopestore"
)

// Tracer provides distributed tracing whose spans are correlated with
// Sentry scopes.
//
// This interface is implemented by *TracerClient.
type Tracer interface {
	// StartSpan creates a new span with the given name.
	// The span is attached to the parent span in the context (if any), and the
	// returned context carries the span's Sentry scopes when they were recorded,
	// so that children fork them.
	// Always call span.End() when the operation completes (typically via defer).
	StartSpan(ctx context.Context, name string) (context.Context, Span)

	// GetCarrier extracts trace context from the given context as a map of headers.
	// Use this when making outbound requests to propagate the trace.
	GetCarrier(ctx context.Context) map[string]string

	// SetCarrierOnContext injects trace context from headers into the given context.
	// Spans started from the result have a remote parent.
	SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context
}

// Span represents a trace span for tracking operations in distributed systems.
//
// Spans created with StartSpan() inherit the parent span from the context
// if one exists.
type Span interface {
	// End completes the span and hands it to the registered processors.
	//
	// Example:
	//   ctx, span := tracer.StartSpan(ctx, "operation-name")
	//   defer span.End()
	End()

	// SetAttributes adds key-value pairs of attributes to the span.
	// Strings, ints, int64s, float64s and bools keep their type; anything
	// else is recorded as its fmt.Sprint form.
	SetAttributes(attrs map[string]interface{})

	// RecordError records err on the span, marks the span as failed and, when
	// the span has Sentry scopes, captures err on the span's hub.
	//
	// Example:
	//   result, err := database.Query(ctx, query)
	//   if err != nil {
	//     span.RecordError(err)
	//     return nil, err
	//   }
	RecordError(err error)
}

// ScopesLookup resolves the Sentry scopes recorded for a span.
// *scopestore.Store implements it.
type ScopesLookup interface {
	GetScopes(key scopestore.Key) (*reporting.Scopes, bool)
}

// storeOwner is implemented by span processors that record scopes in a store,
// such as *spanprocessor.Processor.
type storeOwner interface {
	Store() *scopestore.Store
}
