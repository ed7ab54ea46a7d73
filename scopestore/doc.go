// Package scopestore keeps the association between a span and the Sentry
// scopes forked for it.
//
// The store is keyed by span identity (trace id + span id) and holds its
// values weakly: an entry does not keep its scopes alive, and once the scopes
// become unreachable the garbage collector runs a cleanup that deletes the
// entry. Nothing has to remove entries explicitly, and entries may still be
// looked up after the span has ended for as long as anything (a context, a
// child span's scopes) holds on to the scopes.
//
// While a span is in flight its scopes are also pinned strongly, so a lookup
// succeeds for the whole lifetime of the span even if nothing else references
// the scopes. Pins are dropped by Release (the span processor calls it when
// the span ends) or by eviction from a bounded LRU when more than
// Config.MaxPinnedSpans spans are in flight, which bounds the memory held by
// spans that are never ended.
//
// # Usage
//
//	store, err := scopestore.New(scopestore.Config{MaxPinnedSpans: 50_000})
//	if err != nil {
//		return err
//	}
//
//	key := scopestore.KeyFromSpanContext(span.SpanContext())
//	store.StoreScopes(key, scopes)
//
//	if scopes, ok := store.GetScopes(key); ok {
//		scopes.Hub().CaptureException(err)
//	}
//
// All methods are safe for concurrent use. Default returns a process-wide
// Store for callers that cannot have one injected.
package scopestore
