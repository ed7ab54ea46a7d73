// Package spanprocessor connects the OpenTelemetry span lifecycle to Sentry
// scopes.
//
// Processor is an sdktrace.SpanProcessor. For every span it starts it forks
// the Sentry scopes found in the parent context (or creates fresh root scopes
// when there are none) and records the association in a scopestore.Store,
// keyed by the span's trace and span ids. Error reports issued while the span
// runs can then look the scopes up by span identity.
//
// A span is skipped, with a single debug log entry, when Sentry is not
// initialised or the span context is invalid. Skipping never affects the
// span itself.
//
// # Usage
//
//	processor := spanprocessor.NewProcessor(store, reporter).
//		WithLogger(log).
//		WithObserver(metricsObserver)
//
//	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(processor))
//
// New builds a Processor on the process-wide store and the current Sentry hub
// for setups that need a zero-argument constructor.
//
// # Remote parents
//
// When the parent context carries a span context, the started span gets the
// boolean attribute "sentry.is_remote_parent" recording whether that parent
// came from another process.
package spanprocessor
