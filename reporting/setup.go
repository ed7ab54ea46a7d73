package reporting

import (
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// SentryReporter implements Reporter on top of a sentry-go hub.
type SentryReporter struct {
	// hub is the root hub new root scopes are forked from.
	hub *sentry.Hub

	flushTimeout time.Duration
}

// NewReporter creates a SentryReporter over hub. A nil hub selects
// sentry.CurrentHub(), the hub sentry.Init binds its client to.
func NewReporter(hub *sentry.Hub) *SentryReporter {
	if hub == nil {
		hub = sentry.CurrentHub()
	}
	return &SentryReporter{hub: hub, flushTimeout: DefaultFlushTimeout}
}

// NewClient initialises the Sentry SDK from cfg and returns a reporter bound to
// the process hub.
//
// Example:
//
//	reporter, err := reporting.NewClient(reporting.Config{
//	    DSN:         "https://public@o0.ingest.sentry.io/0",
//	    Environment: "staging",
//	})
//	if err != nil {
//	    return err
//	}
//	defer reporter.Flush()
func NewClient(cfg Config) (*SentryReporter, error) {
	if cfg.SampleRate < 0 || cfg.SampleRate > 1 {
		return nil, fmt.Errorf("%w: sample rate %v is outside [0, 1]", ErrInvalidConfig, cfg.SampleRate)
	}
	if cfg.FlushTimeout < 0 {
		return nil, fmt.Errorf("%w: negative flush timeout", ErrInvalidConfig)
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.DSN,
		Environment: cfg.Environment,
		Release:     cfg.Release,
		Debug:       cfg.Debug,
		SampleRate:  cfg.SampleRate,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInitFailed, err)
	}

	r := NewReporter(sentry.CurrentHub())
	if cfg.FlushTimeout > 0 {
		r.flushTimeout = cfg.FlushTimeout
	}
	return r, nil
}

// IsEnabled reports whether a client is bound to the root hub.
func (r *SentryReporter) IsEnabled() bool {
	return r.hub.Client() != nil
}

// ForkedRootScopes clones the root hub into a new root Scopes container.
func (r *SentryReporter) ForkedRootScopes(creator string) *Scopes {
	return NewScopes(r.hub.Clone(), creator)
}

// CurrentHub returns the root hub.
func (r *SentryReporter) CurrentHub() *sentry.Hub {
	return r.hub
}

// Flush waits up to the configured timeout for buffered events to be sent.
// It returns false if the timeout was reached first.
func (r *SentryReporter) Flush() bool {
	return r.hub.Flush(r.flushTimeout)
}
