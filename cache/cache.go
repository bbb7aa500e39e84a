// Package cache implements the bounded string-keyed caches of spec 4.4
// through 4.9: LRU, S3-FIFO, and SIEVE eviction policies, plus the
// Clearing cache, the Locking decorator and a thread-local variant. Every
// cache shares one Cache contract so a resolver.Caching can be built over
// any of them interchangeably.
package cache

import "github.com/fernwood-systems/uaclassify/domain"

// Cache is a bounded mapping from a user-agent string to a PartialResult.
// Keys are plain strings; the cache is never told which domains a caller
// requested — that bookkeeping belongs to the resolver composing it.
type Cache interface {
	// Get returns the cached value for key and true if present. A hit may
	// have side effects on internal bookkeeping (recency, frequency,
	// visited bits) but never changes the stored value.
	Get(key string) (domain.PartialResult, bool)

	// Put inserts or overwrites key's value. If key is already present the
	// existing slot is updated in place and nothing is evicted. Otherwise,
	// if the cache is at capacity, entries are evicted per policy before
	// the new entry is inserted: exactly one for LRU, S3Fifo and Sieve,
	// every entry for Clearing.
	Put(key string, value domain.PartialResult)
}
