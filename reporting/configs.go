package reporting

import "time"

// DefaultFlushTimeout bounds how long shutdown waits for buffered events.
const DefaultFlushTimeout = 2 * time.Second

// Config holds the settings used to initialise the Sentry SDK.
type Config struct {
	// DSN is the Sentry project DSN. An empty DSN initialises the SDK with a
	// transport that drops every event, which is convenient in development.
	DSN string `yaml:"dsn" envconfig:"SENTRY_DSN"`

	// Environment is reported with every event ("production", "staging", ...).
	Environment string `yaml:"environment" envconfig:"SENTRY_ENVIRONMENT"`

	// Release identifies the deployed version of the service.
	Release string `yaml:"release" envconfig:"SENTRY_RELEASE"`

	// Debug turns on the SDK's own debug output.
	Debug bool `yaml:"debug" envconfig:"SENTRY_DEBUG"`

	// SampleRate is the fraction of error events sent, in [0, 1].
	// Zero means "send everything", matching the SDK default.
	SampleRate float64 `yaml:"sample_rate" envconfig:"SENTRY_SAMPLE_RATE"`

	// FlushTimeout bounds the flush performed on shutdown.
	// Default: DefaultFlushTimeout
	FlushTimeout time.Duration `yaml:"flush_timeout" envconfig:"SENTRY_FLUSH_TIMEOUT"`
}
