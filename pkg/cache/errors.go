package cache

import "errors"

// Sentinel errors for cache operations.
var (
	// ErrNotFound is returned when a key is not cached.
	ErrNotFound = errors.New("cache: entry not found")

	// ErrNilLoader is returned by GetOrLoad when no loader is given.
	ErrNilLoader = errors.New("cache: loader cannot be nil")
)
