package observability

import "time"

// Observer receives a notification for every operation performed by the
// span processor and the scope store.
//
// Implementations are called synchronously from span start/end hooks, on
// whichever goroutine started or ended the span, and must be safe for
// concurrent use. They must not block.
type Observer interface {
	// ObserveOperation is called when an operation completes.
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes one observed operation.
type OperationContext struct {
	// Component identifies the reporting package: "spanprocessor" or "scopestore".
	Component string

	// Operation describes what happened.
	// Examples:
	//   spanprocessor: "start", "skip", "end"
	//   scopestore:    "store_scopes", "store_hub", "lookup", "discard", "reclaim"
	Operation string

	// Resource identifies the span the operation concerns (its span id).
	Resource string

	// SubResource provides additional context (optional).
	// Examples:
	//   spanprocessor "skip": the skip reason ("not_enabled", "invalid_span")
	//   spanprocessor "start": "forked" or "root"
	//   scopestore "lookup": "hit" or "miss"
	SubResource string

	// Duration is how long the operation took.
	Duration time.Duration

	// Error is the error the operation ended with, if any.
	Error error

	// Size is an operation-specific count (optional).
	// For scopestore operations it is the number of live entries afterwards.
	Size int64

	// Metadata provides additional operation-specific information (optional).
	Metadata map[string]interface{}
}
