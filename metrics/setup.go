package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the Prometheus registry the operation metrics are registered
// in and, unless disabled, the HTTP server that exposes it.
type Metrics struct {
	// Server serves Registry on /metrics. Nil when Config.Address is "".
	Server *http.Server

	// Registry holds every metric registered through this instance.
	Registry *prometheus.Registry

	// registerer wraps Registry with the constant service label.
	registerer prometheus.Registerer

	namespace string
}

// NewMetrics creates the registry and, unless disabled, the HTTP server.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "checkout"})
//	observer := metrics.NewOperationObserver(m)
//	processor := spanprocessor.New().WithObserver(observer)
//	go m.Server.ListenAndServe()
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		Registry: registry,
		registerer: prometheus.WrapRegistererWith(
			prometheus.Labels{"service": cfg.ServiceName},
			registry,
		),
		namespace: cfg.Namespace,
	}
	if m.namespace == "" {
		m.namespace = DefaultNamespace
	}

	if cfg.RuntimeMetrics {
		m.registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry}))
		m.Server = &http.Server{Addr: addr, Handler: mux}
	}

	return m
}

// Registerer returns the service-labelled registerer so applications can add
// their own collectors to the same endpoint.
func (m *Metrics) Registerer() prometheus.Registerer {
	return m.registerer
}
