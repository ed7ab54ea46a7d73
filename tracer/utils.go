package tracer

import (
	"context"
	"fmt"

	"github.com/aalemi-dev/sentryotel/reporting"
	"github.com/aalemi-dev/sentryotel/scopestore"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	traceSpan "go.opentelemetry.io/otel/trace"
)

// spanImpl adapts an OpenTelemetry span, and the Sentry scopes recorded for
// it, to the Span interface.
type spanImpl struct {
	span   traceSpan.Span
	scopes *reporting.Scopes
}

// End ends the underlying OpenTelemetry span.
func (s *spanImpl) End() {
	s.span.End()
}

// SetAttributes converts attrs to OpenTelemetry attributes and sets them on the span.
// An empty map is a no-op.
//
// Example usage:
//
//	span.SetAttributes(map[string]interface{}{
//	    "user.id": "usr_12345",
//	    "items.count": 5,
//	    "premium.customer": true,
//	})
func (s *spanImpl) SetAttributes(attrs map[string]interface{}) {
	if len(attrs) == 0 {
		return
	}

	attributes := make([]attribute.KeyValue, 0, len(attrs))

	for k, v := range attrs {
		switch val := v.(type) {
		case string:
			attributes = append(attributes, attribute.String(k, val))
		case int:
			attributes = append(attributes, attribute.Int(k, val))
		case int64:
			attributes = append(attributes, attribute.Int64(k, val))
		case float64:
			attributes = append(attributes, attribute.Float64(k, val))
		case bool:
			attributes = append(attributes, attribute.Bool(k, val))
		default:
			attributes = append(attributes, attribute.String(k, fmt.Sprint(val)))
		}
	}

	s.span.SetAttributes(attributes...)
}

// RecordError records err on the span and sets its status to Error.
// When the span has scopes, err is also captured on the scopes' hub so the
// Sentry event carries whatever the span's code put on its scope.
func (s *spanImpl) RecordError(err error) {
	if err == nil {
		return
	}
	s.span.RecordError(err)
	s.span.SetStatus(codes.Error, err.Error())

	if s.scopes != nil {
		s.scopes.Hub().CaptureException(err)
	}
}

// StartSpan creates a span named name as a child of the span in ctx, if any.
//
// The span processors run synchronously inside Start, so by the time it
// returns the span's scopes are in the store. StartSpan looks them up and
// returns a context carrying them; spans started from that context fork the
// scopes instead of starting from the root hub.
//
// Example:
//
//	func processRequest(ctx context.Context, req Request) (Response, error) {
//	    ctx, span := tracer.StartSpan(ctx, "process-request")
//	    defer span.End()
//
//	    if scopes, ok := reporting.ScopesFromContext(ctx); ok {
//	        scopes.Hub().Scope().SetTag("request.id", req.ID)
//	    }
//
//	    result, err := performWork(ctx, req)
//	    if err != nil {
//	        span.RecordError(err)
//	        return Response{}, err
//	    }
//	    return result, nil
//	}
func (t *TracerClient) StartSpan(ctx context.Context, name string) (context.Context, Span) {
	ctx, otSpan := t.tracer.Start(ctx, name)

	span := &spanImpl{span: otSpan}
	if t.scopes != nil {
		if scopes, ok := t.scopes.GetScopes(scopestore.KeyFromSpanContext(otSpan.SpanContext())); ok {
			span.scopes = scopes
			ctx = reporting.ContextWithScopes(ctx, scopes)
		}
	}

	return ctx, span
}

// GetCarrier returns the W3C trace context and baggage of ctx as a header map.
// The map has a "traceparent" entry when ctx carries a valid span.
//
// Example:
//
//	for key, value := range tracer.GetCarrier(ctx) {
//	    req.Header.Set(key, value)
//	}
func (t *TracerClient) GetCarrier(ctx context.Context) map[string]string {
	carrier := propagation.MapCarrier{}
	t.propagator.Inject(ctx, carrier)
	return carrier
}

// SetCarrierOnContext extracts W3C trace context from carrier into ctx.
// A span started from the result has a remote parent, which the span
// processor records as sentry.is_remote_parent=true.
//
// Example:
//
//	headers := make(map[string]string)
//	for key, values := range r.Header {
//	    if len(values) > 0 {
//	        headers[key] = values[0]
//	    }
//	}
//	ctx := tracer.SetCarrierOnContext(r.Context(), headers)
func (t *TracerClient) SetCarrierOnContext(ctx context.Context, carrier map[string]string) context.Context {
	return t.propagator.Extract(ctx, propagation.MapCarrier(carrier))
}
