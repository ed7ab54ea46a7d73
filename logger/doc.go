// Package logger provides structured logging for the sentryotel packages.
//
// It wraps Uber's Zap logger behind a small interface so the span processor,
// the scope store and the tracer can log without depending on Zap directly.
// Every package that logs declares its own narrow Logger interface which
// *LoggerClient satisfies.
//
// # Basic Usage
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       logger.Debug,
//		ServiceName: "checkout",
//	})
//
//	log.Debug("span skipped", nil, map[string]interface{}{
//		"reason": "invalid span",
//	})
//
// # Trace Correlation
//
// With EnableTracing set, the ...WithContext methods attach the trace and
// span ids of the active span:
//
//	log.InfoWithContext(ctx, "handling request", nil)
//	// {"level":"INFO","msg":"handling request","trace_id":"...","span_id":"..."}
//
// # FX Integration
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config { return logger.Config{Level: logger.Info} }),
//	)
package logger
