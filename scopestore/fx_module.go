package scopestore

import (
	"github.com/aalemi-dev/sentryotel/observability"
	"go.uber.org/fx"
)

// FXModule provides a *Store built from an optional scopestore.Config.
//
// Usage:
//
//	app := fx.New(
//	    scopestore.FXModule,
//	    fx.Provide(func() scopestore.Config {
//	        return scopestore.Config{MaxPinnedSpans: 50_000}
//	    }),
//	)
var FXModule = fx.Module("scopestore",
	fx.Provide(NewWithDI),
)

// StoreParams groups the dependencies needed to create a Store.
type StoreParams struct {
	fx.In

	Config   Config                 `optional:"true"`
	Observer observability.Observer `optional:"true"`
}

// NewWithDI creates a Store from injected dependencies.
func NewWithDI(params StoreParams) (*Store, error) {
	store, err := New(params.Config)
	if err != nil {
		return nil, err
	}

	if params.Observer != nil {
		store.observer = params.Observer
	}

	return store, nil
}
