package logger

import (
	"context"

	"go.uber.org/fx"
)

// FXModule defines the Fx module for the logger package.
//
// The module provides:
// 1. *LoggerClient (concrete type) for direct use
// 2. Logger interface for dependency injection
// 3. A shutdown hook that flushes buffered entries
//
// Dependencies required by this module:
// - A logger.Config instance must be available in the dependency injection container
//
// The other packages accept narrow Logger interfaces of their own. Expose the
// client as those types to have it injected:
//
//	app := fx.New(
//	    logger.FXModule,
//	    fx.Provide(
//	        fx.Annotate(
//	            func(l *logger.LoggerClient) *logger.LoggerClient { return l },
//	            fx.As(new(spanprocessor.Logger)),
//	            fx.As(new(reporting.Logger)),
//	        ),
//	    ),
//	)
var FXModule = fx.Module("logger",
	fx.Provide(
		NewLoggerClient,
		fx.Annotate(
			func(l *LoggerClient) Logger { return l },
			fx.As(new(Logger)),
		),
	),
	fx.Invoke(RegisterLoggerLifecycle),
)

// RegisterLoggerLifecycle flushes the Zap logger when the application stops.
func RegisterLoggerLifecycle(lc fx.Lifecycle, client *LoggerClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			// stderr returns EINVAL/ENOTTY on Sync on most platforms; nothing
			// is buffered there, so the error carries no information.
			_ = client.Zap.Sync()
			return nil
		},
	})
}
