package spanprocessor

import (
	"github.com/aalemi-dev/sentryotel/observability"
	"github.com/aalemi-dev/sentryotel/reporting"
	"github.com/aalemi-dev/sentryotel/scopestore"
	"github.com/getsentry/sentry-go"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var _ sdktrace.SpanProcessor = (*Processor)(nil)

// Processor records, for every started span, the Sentry scopes that belong to it.
//
// It is safe for concurrent use: the only shared state is the store, which
// synchronises internally.
type Processor struct {
	// store receives one scopes association per started span
	store *scopestore.Store

	// reporter answers whether Sentry is enabled and creates root scopes
	reporter reporting.Reporter

	// logger provides optional logging for skipped spans and store failures
	logger Logger

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer
}

// NewProcessor creates a Processor that records scopes in store.
// A nil store selects scopestore.Default().
//
// Example:
//
//	store, _ := scopestore.New(scopestore.Config{})
//	reporter := reporting.NewReporter(sentry.CurrentHub())
//	processor := spanprocessor.NewProcessor(store, reporter)
//	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(processor))
func NewProcessor(store *scopestore.Store, reporter reporting.Reporter) *Processor {
	if store == nil {
		store = scopestore.Default()
	}
	return &Processor{
		store:    store,
		reporter: reporter,
	}
}

// New creates a Processor on the process-wide store and sentry.CurrentHub().
func New() *Processor {
	return NewProcessor(scopestore.Default(), reporting.NewReporter(sentry.CurrentHub()))
}

// WithLogger attaches a logger to the processor.
// This method uses the builder pattern and returns the processor for method chaining.
func (p *Processor) WithLogger(logger Logger) *Processor {
	p.logger = logger
	return p
}

// WithObserver attaches an observer to the processor for tracking operations.
// This method uses the builder pattern and returns the processor for method chaining.
func (p *Processor) WithObserver(observer observability.Observer) *Processor {
	p.observer = observer
	return p
}

// Store returns the store the processor records scopes in.
func (p *Processor) Store() *scopestore.Store {
	return p.store
}

func (p *Processor) logDebug(msg string, fields map[string]interface{}) {
	if p.logger != nil {
		p.logger.Debug(msg, nil, fields)
	}
}

func (p *Processor) logError(msg string, err error, fields map[string]interface{}) {
	if p.logger != nil {
		p.logger.Error(msg, err, fields)
	}
}
