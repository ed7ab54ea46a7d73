package scopestore

import (
	"runtime"
	"time"
	"weak"

	"github.com/aalemi-dev/sentryotel/reporting"
	"github.com/getsentry/sentry-go"
)

// StoreScopes associates scopes with key, replacing any previous association.
// The scopes are pinned until Release is called for key or the pin is evicted.
// A nil scopes is ignored.
func (s *Store) StoreScopes(key Key, scopes *reporting.Scopes) {
	if scopes == nil {
		return
	}
	start := time.Now()

	ref := weak.Make(scopes)

	// The entry and the pin change together, so the pinned scopes are always
	// the ones the entry points to.
	s.mu.Lock()
	e := s.entries[key]
	e.scopes = ref
	s.entries[key] = e
	runtime.AddCleanup(scopes, s.reclaim, reclaimToken{key: key, scopes: ref})
	s.pins.Add(key, scopes)
	size := len(s.entries)
	s.mu.Unlock()

	s.observeOperation("store_scopes", key, "", start, size, nil)
}

// StoreHub associates the legacy hub with key. The association shares the
// lifetime of the key's scopes, so it is only recorded when key currently has
// scopes; StoreHub reports whether it was recorded.
func (s *Store) StoreHub(key Key, hub *sentry.Hub) bool {
	if hub == nil {
		return false
	}
	start := time.Now()

	s.mu.Lock()
	e, ok := s.entries[key]
	stored := ok && e.scopes.Value() != nil
	if stored {
		e.hub = weak.Make(hub)
		s.entries[key] = e
	}
	size := len(s.entries)
	s.mu.Unlock()

	result := "stored"
	if !stored {
		result = "no_scopes"
	}
	s.observeOperation("store_hub", key, result, start, size, nil)
	return stored
}

// GetScopes returns the scopes associated with key. The boolean is false if
// there is no association or it has already been reclaimed.
func (s *Store) GetScopes(key Key) (*reporting.Scopes, bool) {
	start := time.Now()

	s.mu.RLock()
	e, ok := s.entries[key]
	size := len(s.entries)
	s.mu.RUnlock()

	var scopes *reporting.Scopes
	if ok {
		scopes = e.scopes.Value()
	}

	result := "hit"
	if scopes == nil {
		result = "miss"
	}
	s.observeOperation("lookup", key, result, start, size, nil)
	return scopes, scopes != nil
}

// GetHub returns the legacy hub associated with key, if the association and
// the key's scopes are both still live.
func (s *Store) GetHub(key Key) (*sentry.Hub, bool) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()

	if !ok || e.scopes.Value() == nil {
		return nil, false
	}
	hub := e.hub.Value()
	return hub, hub != nil
}

// Release drops the pin on key's scopes. The association itself remains
// readable until the scopes are collected.
func (s *Store) Release(key Key) {
	s.mu.Lock()
	s.pins.Remove(key)
	s.mu.Unlock()
}

// Discard removes key's association and pin if key is still associated with
// scopes. It undoes a StoreScopes whose caller could not finish correlating
// the span; an association that has since been overwritten is left alone.
func (s *Store) Discard(key Key, scopes *reporting.Scopes) {
	if scopes == nil {
		return
	}
	start := time.Now()

	s.mu.Lock()
	e, ok := s.entries[key]
	removed := ok && e.scopes.Value() == scopes
	if removed {
		delete(s.entries, key)
		s.pins.Remove(key)
	}
	size := len(s.entries)
	s.mu.Unlock()

	if removed {
		s.observeOperation("discard", key, "", start, size, nil)
	}
}

// Len returns the number of associations not yet reclaimed. Associations
// whose scopes were collected but whose cleanup has not run yet are counted.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Pinned returns the number of spans whose scopes are currently pinned.
func (s *Store) Pinned() int {
	return s.pins.Len()
}

// reclaim runs after the scopes referenced by token became unreachable.
// It deletes the entry unless it was overwritten with newer scopes.
func (s *Store) reclaim(token reclaimToken) {
	start := time.Now()

	s.mu.Lock()
	e, ok := s.entries[token.key]
	removed := ok && e.scopes == token.scopes
	if removed {
		delete(s.entries, token.key)
	}
	size := len(s.entries)
	s.mu.Unlock()

	if removed {
		s.observeOperation("reclaim", token.key, "", start, size, nil)
	}
}
