package cache

import (
	"sync"

	"github.com/fernwood-systems/uaclassify/domain"
)

// Clearing is the simplest bounded cache: when full, it drops every
// entry and refills from scratch rather than evicting one at a time.
// Put holds a single mutex across the fullness check, the wipe and the
// insert, so Clearing is safe for concurrent use without Locking.
type Clearing struct {
	mu      sync.Mutex
	maxsize int
	entries map[string]domain.PartialResult
}

// NewClearing builds a Clearing cache holding at most maxsize entries
// before it wipes itself.
func NewClearing(maxsize int) *Clearing {
	if maxsize < 1 {
		maxsize = 1
	}
	return &Clearing{
		maxsize: maxsize,
		entries: make(map[string]domain.PartialResult, maxsize),
	}
}

// Get implements Cache.
func (c *Clearing) Get(key string) (domain.PartialResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put implements Cache.
func (c *Clearing) Put(key string, value domain.PartialResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists && len(c.entries) >= c.maxsize {
		c.entries = make(map[string]domain.PartialResult, c.maxsize)
	}
	c.entries[key] = value
}

// Len returns the number of entries currently cached.
func (c *Clearing) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
