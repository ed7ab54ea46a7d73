package tracer

// Config defines the configuration for the OpenTelemetry tracer.
// It controls service identification, environment settings, and whether
// traces should be exported to an observability backend.
type Config struct {
	// ServiceName specifies the name of the service using this tracer.
	// It is recorded as the service.name resource attribute on every span.
	//
	// Example values: "user-service", "payment-processor", "notification-worker"
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv indicates the deployment environment where the service is running.
	// It sets the "deployment.environment" and "environment" resource attributes.
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport controls whether traces are exported over OTLP HTTP.
	// When false spans are still created, propagated and correlated with
	// Sentry scopes; they are just not sent anywhere.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}

// Logger is the subset of logger.Logger used for lifecycle messages.
type Logger interface {
	// Info logs an informational message.
	Info(msg string, err error, fields ...map[string]interface{})
}
