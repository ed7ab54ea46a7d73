package tracer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// instrumentationName names the tracer the client starts spans with.
const instrumentationName = "github.com/aalemi-dev/sentryotel/tracer"

// TracerClient wraps an OpenTelemetry TracerProvider whose spans are
// correlated with Sentry scopes by the registered span processors.
//
// The TracerClient is safe for concurrent use. It implements the Tracer interface.
type TracerClient struct {
	provider *trace.TracerProvider
	tracer   oteltrace.Tracer

	// scopes resolves the scopes of a started span so StartSpan can put them
	// on the returned context. Nil disables scope propagation.
	scopes ScopesLookup

	propagator propagation.TextMapPropagator
}

// NewClient creates a TracerClient whose provider runs the given span processors.
//
// If trace export is enabled an OTLP HTTP exporter is added after the
// processors. The first processor that records scopes in a store (for example
// *spanprocessor.Processor) becomes the scopes lookup used by StartSpan; use
// WithScopesLookup to override it.
//
// The provider and the W3C propagator are also installed as the OpenTelemetry
// globals.
//
// Example:
//
//	processor := spanprocessor.New()
//	tracerClient, err := tracer.NewClient(tracer.Config{
//	    ServiceName: "user-service",
//	    AppEnv:      "production",
//	}, processor)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ctx, span := tracerClient.StartSpan(context.Background(), "process-request")
//	defer span.End()
func NewClient(cfg Config, processors ...trace.SpanProcessor) (*TracerClient, error) {
	return newClientWithContext(context.Background(), cfg, processors...)
}

func newClientWithContext(ctx context.Context, cfg Config, processors ...trace.SpanProcessor) (*TracerClient, error) {
	options := make([]trace.TracerProviderOption, 0, len(processors)+2)
	client := &TracerClient{
		propagator: propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}),
	}

	for _, p := range processors {
		if p == nil {
			continue
		}
		options = append(options, trace.WithSpanProcessor(p))
		if owner, ok := p.(storeOwner); ok && client.scopes == nil {
			client.scopes = owner.Store()
		}
	}

	if cfg.EnableExport {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		exporter, err := otlptrace.New(ctx, otlptracehttp.NewClient())
		if err != nil {
			return nil, fmt.Errorf("failed to initialize OTLP exporter: %w", err)
		}
		options = append(options, trace.WithBatcher(exporter))
	}

	options = append(options, trace.WithResource(resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName(cfg.ServiceName),
		semconv.DeploymentEnvironment(cfg.AppEnv),
		attribute.String("environment", cfg.AppEnv),
	)))

	client.provider = trace.NewTracerProvider(options...)
	client.tracer = client.provider.Tracer(instrumentationName)

	otel.SetTracerProvider(client.provider)
	otel.SetTextMapPropagator(client.propagator)

	return client, nil
}

// WithScopesLookup sets where StartSpan resolves span scopes from.
// This method uses the builder pattern and returns the client for method chaining.
func (t *TracerClient) WithScopesLookup(lookup ScopesLookup) *TracerClient {
	t.scopes = lookup
	return t
}

// Shutdown flushes and stops the provider and its span processors.
func (t *TracerClient) Shutdown(ctx context.Context) error {
	if t.provider == nil {
		return nil
	}
	return t.provider.Shutdown(ctx)
}
