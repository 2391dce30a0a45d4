// Package memo is a small content-hash keyed cache for data derived from
// component values (formatted previews, summaries). Entries not touched for a
// number of frames are evicted by BeginFrame, so repeated draws of unchanged
// data stay cheap while stale entries do not accumulate.
package memo

import (
	"sync"

	"github.com/specialistvlad/componentui/internal/component"
)

// DefaultMaxAge is the number of frames an unused entry survives.
const DefaultMaxAge = 60

// Key identifies a cached item: the content hash plus a discriminator for
// different kinds of derived data computed from the same content.
type Key struct {
	Hash    component.CacheKey
	Variant string
}

type entry[V any] struct {
	value    V
	lastUsed uint64
}

// Cache memoizes values of type V.
type Cache[V any] struct {
	mu      sync.Mutex
	entries map[Key]*entry[V]
	frame   uint64
	maxAge  uint64

	hits, misses uint64
}

// New creates a cache evicting entries unused for maxAge frames. A
// non-positive maxAge uses DefaultMaxAge.
func New[V any](maxAge int) *Cache[V] {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	return &Cache[V]{
		entries: make(map[Key]*entry[V]),
		maxAge:  uint64(maxAge),
	}
}

// GetOrCompute returns the cached value for key, computing and storing it on
// a miss. A zero hash means the content has no identity and is never cached.
func (c *Cache[V]) GetOrCompute(key Key, compute func() V) V {
	if key.Hash == 0 {
		return compute()
	}

	c.mu.Lock()
	if e, ok := c.entries[key]; ok {
		e.lastUsed = c.frame
		c.hits++
		c.mu.Unlock()
		return e.value
	}
	c.misses++
	c.mu.Unlock()

	v := compute()

	c.mu.Lock()
	c.entries[key] = &entry[V]{value: v, lastUsed: c.frame}
	c.mu.Unlock()
	return v
}

// BeginFrame advances the frame counter and evicts stale entries.
func (c *Cache[V]) BeginFrame() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frame++
	for k, e := range c.entries {
		if c.frame-e.lastUsed > c.maxAge {
			delete(c.entries, k)
		}
	}
}

// Len returns the number of cached entries.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Stats returns hit and miss counters.
func (c *Cache[V]) Stats() (hits, misses uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
