package scopestore

import (
	"fmt"
	"sync"
	"weak"

	"github.com/aalemi-dev/sentryotel/observability"
	"github.com/aalemi-dev/sentryotel/reporting"
	"github.com/getsentry/sentry-go"
	lru "github.com/hashicorp/golang-lru/v2"
)

// entry is the value held for one span. Both references are weak; the entry
// is deleted by the cleanup registered on the scopes it points to.
type entry struct {
	scopes weak.Pointer[reporting.Scopes]
	hub    weak.Pointer[sentry.Hub]
}

// Store is a concurrency-safe, weakly-held map from span identity to the
// scopes (and transitional hub) associated with the span.
type Store struct {
	mu      sync.RWMutex
	entries map[Key]entry

	// pins holds the scopes of in-flight spans strongly.
	pins *lru.Cache[Key, *reporting.Scopes]

	// observer provides optional observability hooks for tracking operations
	observer observability.Observer
}

// reclaimToken identifies the association a cleanup was registered for, so a
// cleanup for overwritten scopes leaves the newer association alone.
type reclaimToken struct {
	key    Key
	scopes weak.Pointer[reporting.Scopes]
}

var (
	defaultStore     *Store
	defaultStoreOnce sync.Once
)

// New creates an empty Store.
//
// Example:
//
//	store, err := scopestore.New(scopestore.Config{})
//	if err != nil {
//	    return err
//	}
//	processor := spanprocessor.NewProcessor(store, reporter)
func New(cfg Config) (*Store, error) {
	if cfg.MaxPinnedSpans < 0 {
		return nil, fmt.Errorf("%w: MaxPinnedSpans must not be negative, got %d", ErrInvalidConfig, cfg.MaxPinnedSpans)
	}
	if cfg.MaxPinnedSpans == 0 {
		cfg.MaxPinnedSpans = DefaultMaxPinnedSpans
	}

	pins, err := lru.New[Key, *reporting.Scopes](cfg.MaxPinnedSpans)
	if err != nil {
		return nil, fmt.Errorf("failed to create pin cache: %w", err)
	}

	return &Store{
		entries: make(map[Key]entry),
		pins:    pins,
	}, nil
}

// Default returns the process-wide Store, creating it with the default
// configuration on first use.
func Default() *Store {
	defaultStoreOnce.Do(func() {
		store, err := New(Config{})
		if err != nil {
			// The default configuration is always valid.
			panic(err)
		}
		defaultStore = store
	})
	return defaultStore
}

// WithObserver attaches an observer to the store for tracking operations.
// It returns the store for method chaining and must be called before the
// store is shared between goroutines.
func (s *Store) WithObserver(observer observability.Observer) *Store {
	s.observer = observer
	return s
}
