// Package cache provides a bounded, concurrency-safe LRU cache.
//
// The cache is generic over the value type and keyed by string. It has no
// TTLs: values are expected to be immutable once loaded, so the only way an
// entry leaves the cache is eviction, Delete or Clear.
//
// # Usage
//
//	zones := cache.NewLRU[*time.Location](cache.WithMaxEntries(128))
//
//	loc, err := zones.GetOrLoad(ctx, "Asia/Shanghai", func(context.Context) (*time.Location, error) {
//	    return time.LoadLocation("Asia/Shanghai")
//	})
//
// GetOrLoad uses golang.org/x/sync/singleflight, so concurrent misses for the
// same key run the loader once. Loader errors are returned and not cached.
//
// # Errors
//
//   - [ErrNotFound] - key is not cached
//   - [ErrNilLoader] - GetOrLoad called without a loader
package cache
