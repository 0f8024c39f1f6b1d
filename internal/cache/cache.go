// Package cache provides the shared TTL store that fronts every expensive
// advisor computation. Entries expire lazily on read; nothing is swept in
// the background. The key universe is small and process-lived, so unbounded
// growth is an accepted limitation rather than a bug.
package cache

import (
	"sync"
	"time"
)

// DefaultTTL matches the upstream dashboard's five-minute window.
const DefaultTTL = 5 * time.Minute

type entry struct {
	value     any
	createdAt time.Time
}

// Cache is a key -> (value, timestamp) store with expiry-checked reads.
// Callers must treat returned values as read-only snapshots.
//
// Get-then-Set on a miss is deliberately not atomic: two concurrent misses
// may both recompute, which is harmless because every cached computation is
// idempotent and side-effect-free.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// Option configures a Cache.
type Option func(*Cache)

// WithTTL overrides the default entry lifetime.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithClock injects a time source, used by tests to control expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	c := &Cache{
		entries: make(map[string]entry),
		ttl:     DefaultTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the stored value if present and younger than the TTL.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.createdAt) >= c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores a value unconditionally, stamping the current time.
func (c *Cache) Set(key string, value any) {
	c.mu.Lock()
	c.entries[key] = entry{value: value, createdAt: c.now()}
	c.mu.Unlock()
}

// Len reports the number of entries held, expired or not.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
