package scopestore

import "go.opentelemetry.io/otel/trace"

// Key identifies a span. Two keys are equal when both ids are equal.
type Key struct {
	TraceID trace.TraceID
	SpanID  trace.SpanID
}

// KeyFromSpanContext returns the Key of the span described by sc.
func KeyFromSpanContext(sc trace.SpanContext) Key {
	return Key{TraceID: sc.TraceID(), SpanID: sc.SpanID()}
}

// String renders the key as "<trace id>-<span id>" in hex.
func (k Key) String() string {
	return k.TraceID.String() + "-" + k.SpanID.String()
}
