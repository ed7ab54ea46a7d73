package spanprocessor

import (
	"context"
	"testing"

	"github.com/aalemi-dev/sentryotel/reporting"
	"github.com/aalemi-dev/sentryotel/scopestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type processorGroup struct {
	fx.In

	Processors []sdktrace.SpanProcessor `group:"span_processors"`
}

func TestFXModule_ProvidesProcessor(t *testing.T) {
	t.Parallel()
	var (
		processor *Processor
		store     *scopestore.Store
		group     processorGroup
	)

	app := fxtest.New(t,
		scopestore.FXModule,
		FXModule,
		fx.Provide(func() reporting.Reporter { return newEnabledReporter(t) }),
		fx.Populate(&processor, &store, &group),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, processor)
	assert.Same(t, store, processor.Store())
	require.Len(t, group.Processors, 1)
	assert.Same(t, processor, group.Processors[0])
}

func TestFXModule_WithoutStoreUsesDefault(t *testing.T) {
	t.Parallel()
	var processor *Processor

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() reporting.Reporter { return newDisabledReporter() }),
		fx.Populate(&processor),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.Same(t, scopestore.Default(), processor.Store())
}

func TestNewProcessorWithDI_WiresOptionalDependencies(t *testing.T) {
	t.Parallel()
	log, logs := newObservedLogger()
	obs := &TestObserver{}

	p := NewProcessorWithDI(ProcessorParams{
		Reporter: newDisabledReporter(),
		Store:    newTestStore(t),
		Logger:   log,
		Observer: obs,
	})

	p.OnStart(context.Background(), invalidSpan{})

	assert.Equal(t, 1, logs.Len())
	assert.Len(t, obs.GetOperationsByType("skip"), 1)
}
