// Package cache provides a simple in-memory TTL cache. Form templates are
// read from disk once and served from here until the TTL lapses, so
// template edits show up without a restart.
package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// InMemory is a thread-safe in-memory cache with TTL. Expired entries are
// evicted lazily on lookup; the keyspace is bounded by the template
// directory, so there is no background janitor.
type InMemory[T any] struct {
	mu    sync.Mutex
	items map[string]entry[T]
	ttl   time.Duration
}

// New creates a new in-memory cache with the given TTL.
func New[T any](ttl time.Duration) *InMemory[T] {
	return &InMemory[T]{
		items: make(map[string]entry[T]),
		ttl:   ttl,
	}
}

// Get retrieves a value from the cache. Returns false if not found or
// expired; expired entries are removed on the way out.
func (c *InMemory[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.items[key]
	if !ok {
		var zero T
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		delete(c.items, key)
		var zero T
		return zero, false
	}
	return e.value, true
}

// Set stores a value in the cache with the configured TTL.
func (c *InMemory[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = entry[T]{
		value:     value,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// Delete removes a value from the cache.
func (c *InMemory[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.items, key)
}
