package reporting

import "errors"

var (
	// ErrInvalidConfig is returned when a Config value is out of range.
	ErrInvalidConfig = errors.New("invalid reporting config")

	// ErrInitFailed is returned when the Sentry SDK rejects its options,
	// usually because the DSN cannot be parsed.
	ErrInitFailed = errors.New("sentry initialization failed")
)
