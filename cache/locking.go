package cache

import (
	"sync"

	"github.com/fernwood-systems/uaclassify/domain"
)

// Locking wraps a non-thread-safe Cache and protects every Get/Put with
// a mutex. LRU, S3Fifo, and Sieve already guard themselves internally
// and don't need this; Locking exists for caches that don't, or for
// composing an externally-supplied Cache implementation safely.
type Locking struct {
	mu    sync.Mutex
	inner Cache
}

// NewLocking wraps inner with a mutex.
func NewLocking(inner Cache) *Locking {
	return &Locking{inner: inner}
}

// Get implements Cache.
func (c *Locking) Get(key string) (domain.PartialResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inner.Get(key)
}

// Put implements Cache.
func (c *Locking) Put(key string, value domain.PartialResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inner.Put(key, value)
}
