package tracer

import (
	"context"

	"go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

// FXModule provides a Uber FX module that configures distributed tracing.
//
// The module provides:
// 1. *TracerClient (concrete type) for direct use
// 2. Tracer interface for dependency injection
// 3. A shutdown hook that flushes and stops the provider
//
// Every sdktrace.SpanProcessor in the "span_processors" value group is
// registered on the provider, so including spanprocessor.FXModule is enough
// to correlate spans with Sentry scopes.
//
// Usage:
//
//	app := fx.New(
//	    reporting.FXModule,
//	    scopestore.FXModule,
//	    spanprocessor.FXModule,
//	    tracer.FXModule,
//	)
//	app.Run()
var FXModule = fx.Module("tracer",
	fx.Provide(
		NewClientWithDI,
		fx.Annotate(
			func(t *TracerClient) Tracer { return t },
			fx.As(new(Tracer)),
		),
	),
	fx.Invoke(RegisterTracerLifecycle),
)

// TracerParams groups the dependencies needed to create a TracerClient.
type TracerParams struct {
	fx.In

	Config     Config
	Processors []trace.SpanProcessor `group:"span_processors"`
	Scopes     ScopesLookup          `optional:"true"` // Overrides the lookup taken from the processors
}

// NewClientWithDI creates a TracerClient from injected dependencies.
func NewClientWithDI(params TracerParams) (*TracerClient, error) {
	client, err := NewClient(params.Config, params.Processors...)
	if err != nil {
		return nil, err
	}

	if params.Scopes != nil {
		client.scopes = params.Scopes
	}

	return client, nil
}

// TracerLifecycleParams groups the dependencies for lifecycle management.
type TracerLifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *TracerClient
	Logger    Logger `optional:"true"`
}

// RegisterTracerLifecycle registers an OnStop hook that shuts the provider
// down, flushing pending spans to the exporter. A client without a provider
// is skipped.
//
// This function is invoked by FXModule and normally doesn't need to be
// called directly.
func RegisterTracerLifecycle(params TracerLifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			if params.Client.provider == nil {
				params.logInfo("tracer is nil, skipping shutdown")
				return nil
			}
			params.logInfo("shutting down tracer")
			return params.Client.Shutdown(ctx)
		},
	})
}

func (p TracerLifecycleParams) logInfo(msg string) {
	if p.Logger != nil {
		p.Logger.Info(msg, nil)
	}
}
