package reporting

import "github.com/getsentry/sentry-go"

//go:generate mockgen -destination=../spanprocessor/mock_reporter_test.go -package=spanprocessor . Reporter

// Reporter is the view of the reporting system the span processor depends on.
//
// This interface is implemented by the concrete *SentryReporter type.
type Reporter interface {
	// IsEnabled reports whether the reporting system has been initialised.
	// Spans started while it is disabled are not correlated.
	IsEnabled() bool

	// ForkedRootScopes creates a fresh root Scopes container, forked from the
	// process-wide root so it starts with whatever global state is configured.
	ForkedRootScopes(creator string) *Scopes

	// CurrentHub returns the process hub. It is kept alongside the scopes for
	// callers still looking spans up by hub.
	CurrentHub() *sentry.Hub
}
