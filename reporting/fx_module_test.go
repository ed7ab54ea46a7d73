package reporting

import (
	"testing"

	"github.com/aalemi-dev/sentryotel/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Not parallel: FXModule calls sentry.Init, which rebinds the process hub.
func TestFXModule_ProvidesReporter(t *testing.T) {
	var (
		concrete *SentryReporter
		iface    Reporter
	)

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config { return Config{Environment: "test"} }),
		fx.Populate(&concrete, &iface),
	)

	app.RequireStart()
	defer app.RequireStop()

	assert.Same(t, concrete, iface)
	assert.True(t, iface.IsEnabled(), "sentry.Init binds a client even without a DSN")
}

func TestFXModule_InvalidConfigFailsStart(t *testing.T) {
	t.Parallel()

	app := fx.New(
		FXModule,
		fx.Provide(func() Config { return Config{SampleRate: 2} }),
		fx.NopLogger,
	)

	require.Error(t, app.Err())
	assert.Contains(t, app.Err().Error(), "sample rate")
}

func TestRegisterReportingLifecycle_FlushesOnStop(t *testing.T) {
	t.Parallel()
	reporter := NewReporter(newEnabledHub(t))
	core, logs := observer.New(zapcore.DebugLevel)

	app := fxtest.New(t,
		fx.Provide(func() *SentryReporter { return reporter }),
		fx.Provide(func() Logger { return &logger.LoggerClient{Zap: zap.New(core)} }),
		fx.Invoke(RegisterReportingLifecycle),
	)

	app.RequireStart()
	app.RequireStop()

	assert.Equal(t, 0, logs.Len(), "a flush with nothing buffered must not warn")
}
