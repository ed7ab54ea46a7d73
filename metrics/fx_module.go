package metrics

import (
	"context"
	"errors"
	"net/http"

	"github.com/aalemi-dev/sentryotel/observability"
	"go.uber.org/fx"
)

// FXModule provides the Prometheus registry and an observability.Observer
// backed by it, so scopestore.FXModule and spanprocessor.FXModule report
// their operations as metrics without further wiring.
//
// The module provides:
// 1. *Metrics (concrete type) for direct use
// 2. *OperationObserver and observability.Observer
// 3. Lifecycle management for the /metrics HTTP server
//
// Usage:
//
//	app := fx.New(
//	    metrics.FXModule,
//	    scopestore.FXModule,
//	    spanprocessor.FXModule,
//	    fx.Provide(func() metrics.Config {
//	        return metrics.Config{ServiceName: "checkout", RuntimeMetrics: true}
//	    }),
//	)
var FXModule = fx.Module("metrics",
	fx.Provide(
		NewMetrics,
		NewOperationObserver,
		fx.Annotate(
			func(o *OperationObserver) observability.Observer { return o },
			fx.As(new(observability.Observer)),
		),
	),
	fx.Invoke(RegisterMetricsLifecycle),
)

// MetricsLifecycleParams groups the dependencies for lifecycle management.
type MetricsLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Metrics   *Metrics
	Logger    Logger `optional:"true"`
}

// RegisterMetricsLifecycle starts the metrics server in the background on
// start and shuts it down on stop. It does nothing when the server is
// disabled.
func RegisterMetricsLifecycle(params MetricsLifecycleParams) {
	server := params.Metrics.Server
	if server == nil {
		return
	}

	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				params.logInfo("Starting metrics server", map[string]interface{}{"address": server.Addr})
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					params.logError("Error starting metrics server", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.logInfo("Shutting down metrics server", nil)
			if err := server.Shutdown(ctx); err != nil {
				params.logError("Error shutting down metrics server", err)
			}
			return nil
		},
	})
}

func (p MetricsLifecycleParams) logInfo(msg string, fields map[string]interface{}) {
	if p.Logger != nil {
		p.Logger.Info(msg, nil, fields)
	}
}

func (p MetricsLifecycleParams) logError(msg string, err error) {
	if p.Logger != nil {
		p.Logger.Error(msg, err)
	}
}
