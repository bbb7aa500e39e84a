package cache

import (
	"container/list"
	"sync"

	"github.com/fernwood-systems/uaclassify/domain"
)

type s3fifoEntry struct {
	key   string
	value domain.PartialResult
	freq  int8
}

type s3fifoSlot struct {
	live  *list.Element // element of small or main, holding *s3fifoEntry
	ghost *list.Element // element of ghost, holding the bare key string
}

// S3Fifo implements the quick-demotion / lazy-promotion cache of spec 4.6:
// new keys are admitted cheaply into a small probationary FIFO so
// one-hit-wonders never reach the protected main FIFO; survivors are
// promoted and get up to three "lives" via a saturating frequency
// counter. A ghost queue of bare keys lets a recently evicted key skip
// probation and land directly in main on re-entry.
//
// Both get and put take the cache's mutex, so get's freq increment is
// never lost and its index lookup never races a concurrent put.
type S3Fifo struct {
	mu sync.Mutex

	maxsize     int
	smallTarget int
	mainTarget  int

	small *list.List
	main  *list.List
	ghost *list.List

	index map[string]*s3fifoSlot
}

// NewS3Fifo builds an S3-FIFO cache holding at most maxsize entries.
func NewS3Fifo(maxsize int) *S3Fifo {
	if maxsize < 1 {
		maxsize = 1
	}
	smallTarget := maxsize / 10
	if smallTarget < 1 {
		smallTarget = 1
	}
	mainTarget := maxsize - smallTarget
	if mainTarget < 1 {
		mainTarget = 1
	}
	return &S3Fifo{
		maxsize:     maxsize,
		smallTarget: smallTarget,
		mainTarget:  mainTarget,
		small:       list.New(),
		main:        list.New(),
		ghost:       list.New(),
		index:       make(map[string]*s3fifoSlot, maxsize),
	}
}

// Get implements Cache.
func (c *S3Fifo) Get(key string) (domain.PartialResult, bool) {
	c.mu.Lock()
	slot, ok := c.index[key]
	if !ok || slot.live == nil {
		c.mu.Unlock()
		return domain.PartialResult{}, false
	}
	entry := slot.live.Value.(*s3fifoEntry)
	if entry.freq < 3 {
		entry.freq++
	}
	value := entry.value
	c.mu.Unlock()
	return value, true
}

// Put implements Cache.
func (c *S3Fifo) Put(key string, value domain.PartialResult) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if slot, ok := c.index[key]; ok && slot.live != nil {
		slot.live.Value.(*s3fifoEntry).value = value
		return
	}

	if c.small.Len()+c.main.Len() >= c.maxsize {
		if c.main.Len() < c.mainTarget {
			c.evictSmallLocked()
		}
		if c.small.Len()+c.main.Len() >= c.maxsize {
			c.evictMainLocked()
		}
	}

	entry := &s3fifoEntry{key: key, value: value, freq: 0}
	slot, wasGhost := c.index[key]
	if wasGhost && slot.ghost != nil {
		c.ghost.Remove(slot.ghost)
		el := c.main.PushFront(entry)
		c.index[key] = &s3fifoSlot{live: el}
		return
	}
	el := c.small.PushFront(entry)
	c.index[key] = &s3fifoSlot{live: el}
}

// evictMainLocked pops from the tail of main repeatedly; entries with
// freq > 0 are given another life at the front with freq decremented,
// until exactly one entry with freq == 0 is dropped.
func (c *S3Fifo) evictMainLocked() {
	for {
		tail := c.main.Back()
		if tail == nil {
			return
		}
		entry := tail.Value.(*s3fifoEntry)
		c.main.Remove(tail)
		if entry.freq > 0 {
			entry.freq--
			el := c.main.PushFront(entry)
			c.index[entry.key] = &s3fifoSlot{live: el}
			continue
		}
		delete(c.index, entry.key)
		return
	}
}

// evictSmallLocked pops from the tail of small repeatedly; a survivor
// (freq > 0) is promoted to main with freq reset, a one-hit-wonder
// (freq == 0) is demoted into the ghost queue. Stops after the first
// demotion, or when small drains.
func (c *S3Fifo) evictSmallLocked() {
	for {
		tail := c.small.Back()
		if tail == nil {
			return
		}
		entry := tail.Value.(*s3fifoEntry)
		c.small.Remove(tail)
		if entry.freq > 0 {
			entry.freq = 0
			el := c.main.PushFront(entry)
			c.index[entry.key] = &s3fifoSlot{live: el}
			continue
		}
		el := c.ghost.PushFront(entry.key)
		c.index[entry.key] = &s3fifoSlot{ghost: el}
		c.trimGhostLocked()
		return
	}
}

func (c *S3Fifo) trimGhostLocked() {
	for c.ghost.Len() > c.mainTarget {
		tail := c.ghost.Back()
		if tail == nil {
			return
		}
		key := tail.Value.(string)
		c.ghost.Remove(tail)
		if slot, ok := c.index[key]; ok && slot.ghost == tail {
			delete(c.index, key)
		}
	}
}

// Len returns the number of live entries currently cached.
func (c *S3Fifo) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.small.Len() + c.main.Len()
}
