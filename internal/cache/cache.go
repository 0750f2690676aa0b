// Package cache provides the shared TTL cache that bounds upstream call
// volume. Entries expire lazily on read; a failing backend degrades to an
// in-process map rather than surfacing errors to request handlers.
package cache

import (
	"log/slog"
	"sync/atomic"
	"time"

	"scoreboard-service/internal/logging"
)

// DefaultTTL applies to writes that do not override the expiration.
const DefaultTTL = 5 * time.Minute

// Entry is one cached value with its freshness bookkeeping.
type Entry[V any] struct {
	Value    V             `json:"value"`
	StoredAt time.Time     `json:"stored_at"`
	TTL      time.Duration `json:"ttl"`
}

// Backend is a swappable entry store. Implementations must be safe for
// concurrent use.
type Backend[V any] interface {
	Load(key string) (Entry[V], bool, error)
	Store(key string, e Entry[V]) error
	Delete(key string) error
	Clear() error
	Len() (int, error)
}

// Config controls cache construction.
type Config struct {
	// TTL is the default expiration for Set. Zero means DefaultTTL.
	TTL    time.Duration
	Logger *slog.Logger
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Cache is a key-value store with per-key expiration. Stored values are
// shared snapshots: callers must not mutate what Get returns.
type Cache[V any] struct {
	backend    Backend[V]
	local      *MemoryBackend[V]
	defaultTTL time.Duration
	logger     *slog.Logger
	now        func() time.Time
	degraded   atomic.Bool
}

// New builds a cache over the given backend. A nil backend uses the
// in-process map directly.
func New[V any](backend Backend[V], cfg Config) *Cache[V] {
	c := &Cache[V]{
		backend:    backend,
		local:      NewMemoryBackend[V](),
		defaultTTL: cfg.TTL,
		logger:     cfg.Logger,
		now:        cfg.Now,
	}
	if c.defaultTTL <= 0 {
		c.defaultTTL = DefaultTTL
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.backend == nil {
		c.backend = c.local
	}
	return c
}

// Set stores a value under the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetTTL(key, value, c.defaultTTL)
}

// SetTTL stores a value with a key-specific expiration.
func (c *Cache[V]) SetTTL(key string, value V, ttl time.Duration) {
	if ttl <= 0 {
		ttl = c.defaultTTL
	}
	entry := Entry[V]{Value: value, StoredAt: c.now(), TTL: ttl}
	if err := c.store().Store(key, entry); err != nil {
		c.degrade("cache write failed", key, err)
		_ = c.local.Store(key, entry)
	}
}

// Get returns the cached value if it is still fresh. Expired keys are
// evicted on read. Backend failures read as a miss.
func (c *Cache[V]) Get(key string) (V, bool) {
	var zero V
	entry, ok, err := c.store().Load(key)
	if err != nil {
		c.degrade("cache read failed", key, err)
		entry, ok, _ = c.local.Load(key)
	}
	if !ok {
		return zero, false
	}
	if c.now().Sub(entry.StoredAt) >= entry.TTL {
		c.Invalidate(key)
		return zero, false
	}
	return entry.Value, true
}

// Invalidate removes a key unconditionally.
func (c *Cache[V]) Invalidate(key string) {
	if err := c.store().Delete(key); err != nil {
		c.degrade("cache delete failed", key, err)
		_ = c.local.Delete(key)
	}
}

// Clear empties the store.
func (c *Cache[V]) Clear() {
	if err := c.store().Clear(); err != nil {
		c.degrade("cache clear failed", "", err)
		_ = c.local.Clear()
	}
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[V]) Len() int {
	n, err := c.store().Len()
	if err != nil {
		c.degrade("cache len failed", "", err)
		n, _ = c.local.Len()
	}
	return n
}

// store picks the live backend: the configured one, or the in-process map
// once the configured backend has failed.
func (c *Cache[V]) store() Backend[V] {
	if c.degraded.Load() {
		return c.local
	}
	return c.backend
}

func (c *Cache[V]) degrade(msg, key string, err error) {
	if c.degraded.Swap(true) {
		return
	}
	logging.Error(c.logger, msg+", falling back to in-process cache", err, "key", key)
}
