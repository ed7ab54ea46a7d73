package spanprocessor

import "errors"

// ErrStoreFailure wraps a panic raised while recording a span's scopes.
var ErrStoreFailure = errors.New("failed to store span scopes")
