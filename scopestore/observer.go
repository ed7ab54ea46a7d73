package scopestore

import (
	"time"

	"github.com/aalemi-dev/sentryotel/observability"
)

// observeOperation safely calls the observer if it's not nil. size is the
// entry count read under the lock by the operation being reported.
func (s *Store) observeOperation(operation string, key Key, subResource string, start time.Time, size int, err error) {
	if s.observer != nil {
		s.observer.ObserveOperation(observability.OperationContext{
			Component:   "scopestore",
			Operation:   operation,
			Resource:    key.SpanID.String(),
			SubResource: subResource,
			Duration:    time.Since(start),
			Error:       err,
			Size:        int64(size),
		})
	}
}
