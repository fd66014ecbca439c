// Package cache is the client-side query cache holding canonical copies of
// server data.
//
// Rules: an entry is loaded once per key and then served from memory. Known
// mutations (the caller holds the server's authoritative response) are
// applied with Patch. Unknown or external mutations are handled with
// Invalidate, which makes the next Fetch go back to the server.
package cache

import (
	"context"
	"sync"
)

// Loader fetches the value for a key.
type Loader[T any] func(ctx context.Context) (T, error)

// Cache is a keyed store of loaded values.
type Cache[T any] struct {
	mu      sync.RWMutex
	entries map[string]T
}

// New returns an empty cache.
func New[T any]() *Cache[T] {
	return &Cache[T]{entries: make(map[string]T)}
}

// Fetch returns the cached value for key, calling load on a miss. Failed
// loads are not stored.
func (c *Cache[T]) Fetch(ctx context.Context, key string, load Loader[T]) (T, error) {
	if v, ok := c.Get(key); ok {
		return v, nil
	}
	v, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	c.Set(key, v)
	return v, nil
}

// Get returns the cached value without loading.
func (c *Cache[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Set replaces the value for key.
func (c *Cache[T]) Set(key string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// Patch replaces a present entry with fn(entry). It reports false, and does
// nothing, when key is not cached. fn must not mutate its argument in place.
func (c *Cache[T]) Patch(key string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	if !ok {
		return false
	}
	c.entries[key] = fn(v)
	return true
}

// Invalidate drops key so the next Fetch reloads it.
func (c *Cache[T]) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
