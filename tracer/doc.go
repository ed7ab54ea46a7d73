// Package tracer wires an OpenTelemetry TracerProvider whose spans are
// correlated with Sentry scopes.
//
// The span processors passed to NewClient (normally a
// *spanprocessor.Processor) run synchronously when a span starts. StartSpan
// then looks the new span's scopes up and returns a context carrying them, so
// work inside the span can reach its Sentry hub and child spans fork their
// parent's scopes instead of starting from the root hub.
//
// # Architecture
//
//   - Tracer interface: the contract for starting spans and propagating context
//   - TracerClient struct: the implementation, returned by NewClient
//   - Span interface: ending spans, attributes and error recording
//   - FXModule provides both *TracerClient and Tracer and registers every
//     processor in the "span_processors" value group
//
// # Basic Usage
//
//	store, _ := scopestore.New(scopestore.Config{})
//	processor := spanprocessor.NewProcessor(store, reporting.NewReporter(sentry.CurrentHub()))
//
//	tracerClient, err := tracer.NewClient(tracer.Config{
//		ServiceName: "my-service",
//		AppEnv:      "development",
//	}, processor)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
//	if scopes, ok := reporting.ScopesFromContext(ctx); ok {
//		scopes.Hub().Scope().SetTag("request.id", "abc-xyz")
//	}
//
//	if err != nil {
//		span.RecordError(err) // also captured on the span's Sentry hub
//		return err
//	}
//
// # FX Module Integration
//
//	app := fx.New(
//		reporting.FXModule,
//		scopestore.FXModule,
//		spanprocessor.FXModule,
//		tracer.FXModule,
//		fx.Provide(
//			func() tracer.Config {
//				return tracer.Config{ServiceName: "my-service", AppEnv: "production", EnableExport: true}
//			},
//			func() reporting.Config {
//				return reporting.Config{DSN: os.Getenv("SENTRY_DSN")}
//			},
//		),
//	)
//	app.Run()
//
// # Distributed Tracing Across Services
//
// GetCarrier and SetCarrierOnContext move W3C trace context across process
// boundaries. A span started from an extracted context has a remote parent
// and is marked sentry.is_remote_parent=true by the span processor; it gets
// fresh root scopes since the remote caller's scopes are not in this process.
//
//	// Sending side
//	for key, value := range tracer.GetCarrier(ctx) {
//		req.Header.Set(key, value)
//	}
//
//	// Receiving side
//	ctx := tracer.SetCarrierOnContext(r.Context(), headers)
//	ctx, span := tracer.StartSpan(ctx, "handle-request")
//	defer span.End()
//
// # Thread Safety
//
// All methods on TracerClient and Span are safe for concurrent use.
package tracer
