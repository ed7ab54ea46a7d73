// Package reporting is the error-reporting side of the bridge: it models the
// Sentry "scopes" that carry tags, breadcrumbs and the active transaction for
// events reported while a span is running.
//
// A Scopes value wraps a *sentry.Hub together with the name of the component
// that created it and the Scopes it was forked from. Forking clones the hub,
// so changes made on a child never leak into its parent.
//
// # Scopes in a context
//
// ContextWithScopes stores Scopes in a context.Context and also binds the
// underlying hub with sentry.SetHubOnContext, so code using
// sentry.GetHubFromContext keeps working:
//
//	ctx = reporting.ContextWithScopes(ctx, scopes)
//	...
//	if scopes, ok := reporting.ScopesFromContext(ctx); ok {
//		scopes.Hub().CaptureException(err)
//	}
//
// # Reporter
//
// The span processor needs three things from the reporting system, captured by
// the Reporter interface: whether it is enabled, a way to create fresh root
// scopes, and the process hub. SentryReporter implements it over sentry-go:
//
//	reporter, err := reporting.NewClient(reporting.Config{
//		DSN:         os.Getenv("SENTRY_DSN"),
//		Environment: "production",
//	})
package reporting
