package cache

// Option configures an LRU cache.
type Option func(*options)

type options struct {
	maxEntries int
}

func defaultOptions() *options {
	return &options{
		maxEntries: 256,
	}
}

// WithMaxEntries sets the number of entries kept before the least recently
// used one is evicted. Values below 1 mean unlimited.
// Default: 256.
func WithMaxEntries(n int) Option {
	return func(o *options) {
		o.maxEntries = n
	}
}
