package scopestore

import (
	"testing"

	"github.com/aalemi-dev/sentryotel/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestFXModule_ProvidesStore(t *testing.T) {
	t.Parallel()
	var store *Store

	app := fxtest.New(t,
		FXModule,
		fx.Populate(&store),
	)

	app.RequireStart()
	defer app.RequireStop()

	require.NotNil(t, store)
	assert.NotSame(t, Default(), store)
	assert.Equal(t, 0, store.Len())
}

func TestFXModule_UsesConfigAndObserver(t *testing.T) {
	t.Parallel()
	obs := &TestObserver{}
	var store *Store

	app := fxtest.New(t,
		FXModule,
		fx.Provide(func() Config { return Config{MaxPinnedSpans: 1} }),
		fx.Provide(func() observability.Observer { return obs }),
		fx.Populate(&store),
	)

	app.RequireStart()
	defer app.RequireStop()

	first, second := newScopes(), newScopes()
	store.StoreScopes(testKey(1), first)
	store.StoreScopes(testKey(2), second)

	assert.Equal(t, 1, store.Pinned())
	assert.Len(t, obs.GetOperationsByType("store_scopes"), 2)
}

func TestNewWithDI_InvalidConfig(t *testing.T) {
	t.Parallel()

	store, err := NewWithDI(StoreParams{Config: Config{MaxPinnedSpans: -1}})

	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Nil(t, store)
}
