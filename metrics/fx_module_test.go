package metrics

import (
	"testing"

	"github.com/aalemi-dev/sentryotel/logger"
	"github.com/aalemi-dev/sentryotel/observability"
	"github.com/aalemi-dev/sentryotel/scopestore"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFXModule_ProvidesObserver(t *testing.T) {
	t.Parallel()
	var (
		m   *Metrics
		obs observability.Observer
	)

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config { return Config{Address: Ptr(""), ServiceName: "fx-test"} }),
		fx.Populate(&m, &obs),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, m)
	assert.IsType(t, &OperationObserver{}, obs)
}

func TestFXModule_FeedsScopeStore(t *testing.T) {
	t.Parallel()
	var (
		store *scopestore.Store
		o     *OperationObserver
	)

	app := fxtest.New(t,
		FXModule,
		scopestore.FXModule,
		fx.Provide(func() Config { return Config{Address: Ptr("")} }),
		fx.Populate(&store, &o),
	)

	app.RequireStart()
	defer app.RequireStop()

	store.GetScopes(scopestore.Key{TraceID: trace.TraceID{1}, SpanID: trace.SpanID{1}})

	assert.Equal(t, 1.0, testutil.ToFloat64(o.operations.WithLabelValues("scopestore", "lookup", "miss")))
}

func TestRegisterMetricsLifecycle_StartsAndStops(t *testing.T) {
	t.Parallel()
	m := NewMetrics(Config{Address: Ptr("127.0.0.1:0")})
	core, logs := observer.New(zapcore.InfoLevel)

	app := fxtest.New(t,
		fx.Provide(func() *Metrics { return m }),
		fx.Provide(func() Logger { return &logger.LoggerClient{Zap: zap.New(core)} }),
		fx.Invoke(RegisterMetricsLifecycle),
	)

	app.RequireStart()
	app.RequireStop()

	assert.Equal(t, 1, logs.FilterMessage("Shutting down metrics server").Len())
}

func TestRegisterMetricsLifecycle_ServerDisabled(t *testing.T) {
	t.Parallel()
	m := NewMetrics(Config{Address: Ptr("")})

	app := fxtest.New(t,
		fx.Provide(func() *Metrics { return m }),
		fx.Invoke(RegisterMetricsLifecycle),
	)

	app.RequireStart()
	app.RequireStop()
}
