package metrics

// Defaults used when the corresponding Config field is left empty.
const (
	DefaultAddress   = ":9090"
	DefaultNamespace = "sentryotel"
)

// Config defines how the Prometheus metrics are registered and exposed.
type Config struct {
	// Address is where the /metrics HTTP server listens.
	//
	// Example values:
	//   - ":9090"          → Listen on all interfaces, port 9090
	//   - "127.0.0.1:9090" → Listen only on localhost
	//   - nil (or omitted) → Use DefaultAddress
	//
	// To disable the server and only keep the registry, use Ptr("").
	Address *string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName is added as a constant "service" label to every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// Namespace prefixes every metric name. Defaults to DefaultNamespace.
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// RuntimeMetrics registers the Go runtime, process and build info
	// collectors next to the operation metrics. Useful to correlate store
	// size with heap and GC activity.
	RuntimeMetrics bool `yaml:"runtime_metrics" envconfig:"METRICS_RUNTIME"`
}

// Ptr returns a pointer to the given string value.
//
// Example:
//
//	cfg := metrics.Config{Address: metrics.Ptr("")} // registry only, no server
func Ptr(s string) *string {
	return &s
}

// Logger is the subset of logger.Logger used for server lifecycle messages.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, err error, fields ...map[string]interface{})

	// Error logs an error message with details of the error.
	Error(msg string, err error, fields ...map[string]interface{})
}
