package health

import "errors"

// Sentinel errors for the health package.
var (
	ErrCheckFailed  = errors.New("health: check failed")
	ErrCheckTimeout = errors.New("health: check timeout")
)
