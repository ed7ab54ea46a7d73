package logger

// Log level names accepted by Config.Level.
const (
	// Debug enables every entry, including the per-span skip diagnostics
	// emitted by the span processor.
	Debug = "debug"

	// Info is the default level.
	Info = "info"

	// Warning suppresses debug and info entries.
	Warning = "warning"

	// Error only lets error entries through.
	Error = "error"
)

// Config defines the configuration structure for the logger.
type Config struct {
	// Level determines the minimum log level that will be output.
	// Valid values are "debug", "info", "warning" and "error"; anything else
	// falls back to "info".
	//
	// This setting can be configured via:
	//   - YAML configuration with the "level" key
	//   - Environment variable LOGGER_LEVEL
	Level string `yaml:"level" envconfig:"LOGGER_LEVEL"`

	// EnableTracing adds "trace_id" and "span_id" fields to entries written
	// through the ...WithContext methods when the context carries a valid span.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOGGER_ENABLE_TRACING"`

	// ServiceName populates the "service" field of every entry.
	ServiceName string `yaml:"service_name" envconfig:"LOGGER_SERVICE_NAME"`

	// Component, when set, names the logger (zap's "logger" field) so entries
	// from the span processor and the store can be told apart.
	Component string `yaml:"component" envconfig:"LOGGER_COMPONENT"`

	// CallerSkip controls the number of stack frames to skip when reporting the caller.
	// If not set or set to 0, defaults to 1, which points at the code calling
	// the LoggerClient methods directly.
	CallerSkip int `yaml:"caller_skip" envconfig:"LOGGER_CALLER_SKIP"`
}
