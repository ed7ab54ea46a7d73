package tracer

import (
	"context"
	"testing"

	"github.com/aalemi-dev/sentryotel/scopestore"
	"github.com/aalemi-dev/sentryotel/spanprocessor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewClient_NoExport(t *testing.T) {
	t.Parallel()
	cfg := Config{
		ServiceName:  "test-service",
		AppEnv:       "test",
		EnableExport: false,
	}

	client, err := NewClient(cfg)

	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.NotNil(t, client.provider)
	assert.Nil(t, client.scopes)
}

func TestNewClient_EmptyServiceName(t *testing.T) {
	t.Parallel()

	client, err := NewClient(Config{AppEnv: "test"})

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_EnableExport_NoCollector(t *testing.T) {
	t.Parallel()
	cfg := Config{
		ServiceName:  "test-service",
		AppEnv:       "production",
		EnableExport: true,
	}

	// The OTLP HTTP exporter connects lazily, so NewClient succeeds without a collector.
	client, err := NewClient(cfg)

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_EnableExport_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := Config{
		ServiceName:  "test-service",
		AppEnv:       "test",
		EnableExport: true,
	}

	client, err := newClientWithContext(ctx, cfg)

	require.Error(t, err)
	assert.Nil(t, client)
	assert.Contains(t, err.Error(), "failed to initialize OTLP exporter")
}

func TestNewClient_TakesScopesLookupFromProcessor(t *testing.T) {
	t.Parallel()
	store, err := scopestore.New(scopestore.Config{})
	require.NoError(t, err)

	processor := spanprocessor.NewProcessor(store, newTestReporter(t, nil))
	client, err := NewClient(Config{ServiceName: "test"}, tracetest.NewSpanRecorder(), nil, processor)

	require.NoError(t, err)
	assert.Same(t, store, client.scopes)
}

func TestWithScopesLookup_Overrides(t *testing.T) {
	t.Parallel()
	store, err := scopestore.New(scopestore.Config{})
	require.NoError(t, err)

	client, err := NewClient(Config{ServiceName: "test"})
	require.NoError(t, err)

	assert.Same(t, client, client.WithScopesLookup(store))
	assert.Same(t, store, client.scopes)
}

func TestShutdown(t *testing.T) {
	t.Parallel()
	client := newTestClient(t)

	assert.NoError(t, client.Shutdown(context.Background()))
	assert.NoError(t, (&TracerClient{}).Shutdown(context.Background()))
}
