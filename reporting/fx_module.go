package reporting

import (
	"context"

	"go.uber.org/fx"
)

// FXModule initialises Sentry from a reporting.Config and provides:
// 1. *SentryReporter (concrete type) for direct use
// 2. Reporter interface for the span processor
// 3. A shutdown hook that flushes pending events
//
// Usage:
//
//	app := fx.New(
//	    reporting.FXModule,
//	    fx.Provide(func() reporting.Config {
//	        return reporting.Config{DSN: os.Getenv("SENTRY_DSN")}
//	    }),
//	)
var FXModule = fx.Module("reporting",
	fx.Provide(
		NewClient,
		fx.Annotate(
			func(r *SentryReporter) Reporter { return r },
			fx.As(new(Reporter)),
		),
	),
	fx.Invoke(RegisterReportingLifecycle),
)

// Logger is the subset of logger.Logger used for lifecycle messages.
type Logger interface {
	WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{})
}

// ReportingLifecycleParams groups the dependencies for lifecycle management.
type ReportingLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Reporter  *SentryReporter
	Logger    Logger `optional:"true"`
}

// RegisterReportingLifecycle flushes buffered events when the application stops.
// A flush that times out is logged, not returned, since nothing can retry it.
func RegisterReportingLifecycle(params ReportingLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if !params.Reporter.Flush() && params.Logger != nil {
				params.Logger.WarnWithContext(ctx, "Sentry flush timed out", nil, map[string]interface{}{
					"timeout": params.Reporter.flushTimeout.String(),
				})
			}
			return nil
		},
	})
}
