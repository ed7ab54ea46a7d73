package spanprocessor

import "go.opentelemetry.io/otel/attribute"

// ScopesCreator names the scopes the processor forks or creates.
const ScopesCreator = "spanprocessor"

// IsRemoteParentKey is the span attribute recording whether the parent span
// was propagated from another process.
const IsRemoteParentKey = attribute.Key("sentry.is_remote_parent")

// Skip reasons reported as the SubResource of "skip" operations.
const (
	SkipNotEnabled   = "not_enabled"
	SkipInvalidSpan  = "invalid_span"
	SkipStoreFailure = "store_failure"
)

// Logger is the subset of logger.Logger the processor writes to.
type Logger interface {
	// Debug logs a debug-level message.
	Debug(msg string, err error, fields ...map[string]interface{})

	// Error logs an error message with details of the error.
	Error(msg string, err error, fields ...map[string]interface{})
}
