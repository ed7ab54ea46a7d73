package reporting

import (
	"context"

	"github.com/getsentry/sentry-go"
)

// scopesContextKey is the context key Scopes are stored under.
type scopesContextKey struct{}

// ContextWithScopes returns a copy of ctx carrying scopes. The scopes' hub is
// also bound with sentry.SetHubOnContext for sentry-go integrations.
func ContextWithScopes(ctx context.Context, scopes *Scopes) context.Context {
	if scopes == nil {
		return ctx
	}
	ctx = context.WithValue(ctx, scopesContextKey{}, scopes)
	return sentry.SetHubOnContext(ctx, scopes.Hub())
}

// ScopesFromContext returns the Scopes carried by ctx, if any.
func ScopesFromContext(ctx context.Context) (*Scopes, bool) {
	if ctx == nil {
		return nil, false
	}
	scopes, ok := ctx.Value(scopesContextKey{}).(*Scopes)
	return scopes, ok && scopes != nil
}
