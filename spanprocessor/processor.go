package spanprocessor

import (
	"context"
	"fmt"
	"time"

	"github.com/aalemi-dev/sentryotel/logger"
	"github.com/aalemi-dev/sentryotel/reporting"
	"github.com/aalemi-dev/sentryotel/scopestore"
	"go.opentelemetry.io/otel/attribute"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

// startedSpan is the part of a span OnStart works with.
type startedSpan interface {
	SpanContext() trace.SpanContext
	SetAttributes(kv ...attribute.KeyValue)
}

// OnStart forks or creates the scopes for s and stores them under its identity.
func (p *Processor) OnStart(parent context.Context, s sdktrace.ReadWriteSpan) {
	p.start(parent, s)
}

// OnEnd logs the end of s and unpins its scopes. The association stays
// readable until the scopes are no longer referenced.
func (p *Processor) OnEnd(s sdktrace.ReadOnlySpan) {
	begin := time.Now()
	sc := s.SpanContext()

	p.logDebug("span ended", logger.SpanFields(sc))
	p.store.Release(scopestore.KeyFromSpanContext(sc))

	p.observeOperation("end", sc, "", begin, nil)
}

// Shutdown does nothing; the processor holds no resources of its own.
func (p *Processor) Shutdown(context.Context) error {
	return nil
}

// ForceFlush does nothing; the processor does not buffer spans.
func (p *Processor) ForceFlush(context.Context) error {
	return nil
}

// IsStartRequired reports that OnStart must be called for every span.
func (p *Processor) IsStartRequired() bool {
	return true
}

// IsEndRequired reports that OnEnd must be called for every span.
func (p *Processor) IsEndRequired() bool {
	return true
}

func (p *Processor) start(parent context.Context, s startedSpan) {
	begin := time.Now()
	sc := s.SpanContext()

	if reason, ok := p.ensurePrerequisites(sc); !ok {
		p.observeOperation("skip", sc, reason, begin, nil)
		return
	}

	psc := trace.SpanContextFromContext(parent)
	if psc.IsValid() {
		s.SetAttributes(IsRemoteParentKey.Bool(psc.IsRemote()))
	}

	origin := "root"
	var scopes *reporting.Scopes
	if parentScopes, ok := p.parentScopes(parent, psc); ok {
		scopes = parentScopes.Fork(ScopesCreator)
		origin = "forked"
	} else {
		scopes = p.reporter.ForkedRootScopes(ScopesCreator)
	}

	if err := p.correlate(scopestore.KeyFromSpanContext(sc), scopes); err != nil {
		p.logError("Not forwarding OpenTelemetry span to Sentry as its scopes could not be stored.", err, logger.SpanFields(sc))
		p.observeOperation("skip", sc, SkipStoreFailure, begin, err)
		return
	}

	p.observeOperation("start", sc, origin, begin, nil)
}

// ensurePrerequisites reports whether a span can be correlated, and the skip
// reason when it cannot. Each failure logs one debug entry.
func (p *Processor) ensurePrerequisites(sc trace.SpanContext) (string, bool) {
	if !p.reporter.IsEnabled() {
		p.logDebug("Not forwarding OpenTelemetry span to Sentry as Sentry has not yet been initialized.", logger.SpanFields(sc))
		return SkipNotEnabled, false
	}

	if !sc.IsValid() {
		p.logDebug("Not forwarding OpenTelemetry span to Sentry as the span is invalid.", nil)
		return SkipInvalidSpan, false
	}

	return "", true
}

// parentScopes returns the scopes a new span forks from. Scopes carried by
// ctx win; otherwise a local parent span's scopes are looked up in the store,
// which covers parents started without putting their scopes on the context.
func (p *Processor) parentScopes(ctx context.Context, psc trace.SpanContext) (*reporting.Scopes, bool) {
	if scopes, ok := reporting.ScopesFromContext(ctx); ok {
		return scopes, true
	}
	if !psc.IsValid() || psc.IsRemote() {
		return nil, false
	}
	return p.store.GetScopes(scopestore.KeyFromSpanContext(psc))
}

// correlate stores the scopes and the process hub for key. A panic from the
// store is returned as an error wrapping ErrStoreFailure, after undoing a
// scopes association that was already written.
func (p *Processor) correlate(key scopestore.Key, scopes *reporting.Scopes) (err error) {
	stored := false
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrStoreFailure, r)
			if stored {
				p.discard(key, scopes)
			}
		}
	}()

	p.store.StoreScopes(key, scopes)
	stored = true
	// TODO: drop the hub association once no caller resolves spans via GetHub.
	p.store.StoreHub(key, p.reporter.CurrentHub())
	return nil
}

// discard removes a partially stored association. A second panic is dropped;
// the caller is already reporting the first.
func (p *Processor) discard(key scopestore.Key, scopes *reporting.Scopes) {
	defer func() { _ = recover() }()
	p.store.Discard(key, scopes)
}
