// Package metrics exposes the span processor and scope store operations as
// Prometheus metrics.
//
// NewOperationObserver implements observability.Observer on top of a
// Prometheus registry. Attach it with WithObserver, or include FXModule so
// that the scopestore and spanprocessor modules pick it up as their optional
// observer.
//
//	m := metrics.NewMetrics(metrics.Config{ServiceName: "checkout"})
//	observer := metrics.NewOperationObserver(m)
//
//	store, _ := scopestore.New(scopestore.Config{})
//	store.WithObserver(observer)
//	processor := spanprocessor.NewProcessor(store, reporter).WithObserver(observer)
//
//	go m.Server.ListenAndServe() // http://localhost:9090/metrics
//
// Useful queries:
//
//	# spans skipped because Sentry is not initialised
//	sentryotel_operations_total{component="spanprocessor",operation="skip",outcome="not_enabled"}
//
//	# associations reclaimed by the garbage collector
//	rate(sentryotel_operations_total{component="scopestore",operation="reclaim"}[5m])
//
// Every metric carries a constant "service" label from Config.ServiceName.
// Config.RuntimeMetrics adds the Go runtime and process collectors to the
// same registry.
package metrics
