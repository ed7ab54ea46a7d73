package scopestore

import "errors"

// ErrInvalidConfig is returned by New when the configuration is out of range.
var ErrInvalidConfig = errors.New("invalid scope store config")
