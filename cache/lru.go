package cache

import (
	"container/list"
	"sync"

	"github.com/fernwood-systems/uaclassify/domain"
)

type lruEntry struct {
	key   string
	value domain.PartialResult
}

// LRU is a doubly-linked intrusive list plus a hash index, adapted from
// the teacher's L1Cache but stripped of TTL: this cache only ever evicts
// for capacity, never for age. On a get hit the node moves to the
// most-recently-used end; on put of a new key at capacity, the
// least-recently-used end is evicted before inserting at the MRU end.
//
// A single mutex guards both the index and the list, since get must
// mutate recency and so cannot be lock-free (spec 4.5).
type LRU struct {
	mu      sync.Mutex
	index   map[string]*list.Element
	order   *list.List
	maxsize int
}

// NewLRU builds an LRU cache holding at most maxsize entries.
func NewLRU(maxsize int) *LRU {
	if maxsize < 1 {
		maxsize = 1
	}
	return &LRU{
		index:   make(map[string]*list.Element, maxsize),
		order:   list.New(),
		maxsize: maxsize,
	}
}

// Get implements Cache.
func (c *LRU) Get(key string) (domain.PartialResult, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.index[key]
	if !ok {
		return domain.PartialResult{}, false
	}
	c.order.MoveToFront(el)
	return el.Value.(*lruEntry).value, true
}

// Put implements Cache.
func (c *LRU) Put(key string, value domain.PartialResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if el, ok := c.index[key]; ok {
		el.Value.(*lruEntry).value = value
		c.order.MoveToFront(el)
		return
	}

	if c.order.Len() >= c.maxsize {
		c.evictOldestLocked()
	}

	el := c.order.PushFront(&lruEntry{key: key, value: value})
	c.index[key] = el
}

func (c *LRU) evictOldestLocked() {
	oldest := c.order.Back()
	if oldest == nil {
		return
	}
	c.order.Remove(oldest)
	delete(c.index, oldest.Value.(*lruEntry).key)
}

// Len returns the number of entries currently cached.
func (c *LRU) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}
