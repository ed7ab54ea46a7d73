// Package observability defines the hook the sentryotel packages use to report
// what they do, without tying them to a metrics or tracing backend.
//
// The span processor reports every span it starts or skips and every span end;
// the scope store reports writes, lookups and reclamations. An application
// plugs in an Observer (for example metrics.NewObserver) to turn those events
// into counters, or leaves it unset.
//
// Reporting packages call the observer through a nil-safe helper:
//
//	func (s *Store) observeOperation(operation string, key Key, err error) {
//	    if s.observer != nil {
//	        s.observer.ObserveOperation(observability.OperationContext{
//	            Component: "scopestore",
//	            Operation: operation,
//	            Resource:  key.SpanID.String(),
//	            Error:     err,
//	        })
//	    }
//	}
package observability
