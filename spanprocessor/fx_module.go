package spanprocessor

import (
	"github.com/aalemi-dev/sentryotel/observability"
	"github.com/aalemi-dev/sentryotel/reporting"
	"github.com/aalemi-dev/sentryotel/scopestore"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
)

// FXModule provides the span processor.
//
// The module provides:
// 1. *Processor (concrete type) for direct use
// 2. sdktrace.SpanProcessor in the "span_processors" value group, which
//    tracer.FXModule registers on the TracerProvider
//
// Dependencies required by this module:
// - A reporting.Reporter (reporting.FXModule provides one)
// - Optionally a *scopestore.Store, a Logger and an observability.Observer
//
// Usage:
//
//	app := fx.New(
//	    reporting.FXModule,
//	    scopestore.FXModule,
//	    spanprocessor.FXModule,
//	    tracer.FXModule,
//	)
var FXModule = fx.Module("spanprocessor",
	fx.Provide(
		NewProcessorWithDI,
		fx.Annotate(
			func(p *Processor) sdktrace.SpanProcessor { return p },
			fx.ResultTags(`group:"span_processors"`),
		),
	),
)

// ProcessorParams groups the dependencies needed to create a Processor.
type ProcessorParams struct {
	fx.In

	Reporter reporting.Reporter
	Store    *scopestore.Store      `optional:"true"` // Defaults to scopestore.Default()
	Logger   Logger                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewProcessorWithDI creates a Processor from injected dependencies.
func NewProcessorWithDI(params ProcessorParams) *Processor {
	p := NewProcessor(params.Store, params.Reporter)

	if params.Logger != nil {
		p.logger = params.Logger
	}

	if params.Observer != nil {
		p.observer = params.Observer
	}

	return p
}
