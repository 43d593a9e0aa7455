package cache

import (
	"container/list"
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

type entry[V any] struct {
	value V
	key   string
}

// LRU is a bounded in-memory cache with least-recently-used eviction.
// Entries never expire on their own; the cache is meant for values that are
// immutable once computed, such as parsed time zones.
//
// A hash map gives O(1) lookups and a doubly-linked list gives O(1) eviction.
// The most recently used entries sit at the front of the list.
type LRU[V any] struct {
	items    map[string]*list.Element
	eviction *list.List
	group    singleflight.Group
	opts     *options
	mu       sync.Mutex
}

// NewLRU creates an empty cache.
//
//	zones := cache.NewLRU[*time.Location](cache.WithMaxEntries(128))
func NewLRU[V any](opts ...Option) *LRU[V] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	return &LRU[V]{
		items:    make(map[string]*list.Element),
		eviction: list.New(),
		opts:     o,
	}
}

// Get returns the cached value for key and marks it as recently used.
// Returns ErrNotFound when the key is absent.
func (c *LRU[V]) Get(key string) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key]
	if !ok {
		var zero V
		return zero, ErrNotFound
	}

	c.eviction.MoveToFront(elem)
	return elem.Value.(*entry[V]).value, nil
}

// Set stores value under key, evicting the least recently used entry when full.
func (c *LRU[V]) Set(key string, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		elem.Value.(*entry[V]).value = value
		c.eviction.MoveToFront(elem)
		return
	}

	if c.opts.maxEntries > 0 && len(c.items) >= c.opts.maxEntries {
		if oldest := c.eviction.Back(); oldest != nil {
			c.removeElement(oldest)
		}
	}

	c.items[key] = c.eviction.PushFront(&entry[V]{key: key, value: value})
}

// Delete removes key from the cache.
func (c *LRU[V]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key]; ok {
		c.removeElement(elem)
	}
}

// Clear removes every entry.
func (c *LRU[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.eviction.Init()
}

// Len returns the number of cached entries.
func (c *LRU[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// GetOrLoad returns the cached value for key, or calls load on a miss.
// Concurrent misses for the same key share a single load call.
// Failed loads are not cached.
func (c *LRU[V]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (V, error)) (V, error) {
	if load == nil {
		var zero V
		return zero, ErrNilLoader
	}

	if v, err := c.Get(key); err == nil {
		return v, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		val, err := load(ctx)
		if err != nil {
			return nil, err
		}
		c.Set(key, val)
		return val, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}

	return v.(V), nil
}

// removeElement drops elem from both indexes. Caller must hold the mutex.
func (c *LRU[V]) removeElement(elem *list.Element) {
	c.eviction.Remove(elem)
	delete(c.items, elem.Value.(*entry[V]).key)
}
