package reporting

import "github.com/getsentry/sentry-go"

// Scopes is a container of Sentry scope state bound to one unit of work.
// It is safe for concurrent use to the extent *sentry.Hub is.
type Scopes struct {
	hub     *sentry.Hub
	creator string
	parent  *Scopes
}

// NewScopes wraps hub in a root Scopes container created by creator.
func NewScopes(hub *sentry.Hub, creator string) *Scopes {
	return &Scopes{hub: hub, creator: creator}
}

// Hub returns the hub that holds this container's scope state.
func (s *Scopes) Hub() *sentry.Hub {
	return s.hub
}

// Creator names the component that created or forked this container.
func (s *Scopes) Creator() string {
	return s.creator
}

// Parent returns the container this one was forked from, or nil for roots.
func (s *Scopes) Parent() *Scopes {
	return s.parent
}

// Fork returns a child container whose hub is a clone of this one's.
// The receiver is not modified.
func (s *Scopes) Fork(creator string) *Scopes {
	return &Scopes{
		hub:     s.hub.Clone(),
		creator: creator,
		parent:  s,
	}
}
