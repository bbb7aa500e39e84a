package resolver

import (
	"github.com/fernwood-systems/uaclassify/cache"
	"github.com/fernwood-systems/uaclassify/domain"
)

// Caching composes a Cache with an inner Resolver (spec 4.8). It never
// updates a cached PartialResult in place — PartialResult is immutable —
// it always constructs a fresh merged value and writes that back.
//
// The cached value for a given ua is monotone: its Domains only grow
// over its lifetime. Two concurrent calls for the same ua may both miss,
// both resolve, and both write; the last writer wins, and correctness
// holds regardless because every write is a superset of whatever state
// preceded it.
type Caching struct {
	inner Resolver
	cache cache.Cache
}

// NewCaching builds a Caching resolver over inner, backed by c.
func NewCaching(inner Resolver, c cache.Cache) *Caching {
	return &Caching{inner: inner, cache: c}
}

// Resolve implements Resolver.
func (r *Caching) Resolve(ua string, requested domain.Domain) (domain.PartialResult, error) {
	entry, hit := r.cache.Get(ua)
	if hit && requested&^entry.Domains == 0 {
		return entry, nil
	}

	needed := requested
	if hit {
		needed = requested &^ entry.Domains
	}

	fresh, err := r.inner.Resolve(ua, needed)
	if err != nil {
		return domain.PartialResult{}, err
	}

	merged := fresh
	if hit {
		merged = entry.Merge(fresh)
	}
	r.cache.Put(ua, merged)
	return merged, nil
}
