package monitoring

import (
	"sync/atomic"

	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/resolver"
)

// Noop is a resolver that never matches anything: every call succeeds
// with every requested domain marked resolved but every field nil.
// Wrapping a Caching resolver's inner resolver in a Counting(Noop{})
// turns cache hit/miss counting into a pure measurement of the cache
// policy, independent of match cost — the technique this package's
// hit-rate benchmarking is built on.
type Noop struct{}

// Resolve implements resolver.Resolver.
func (Noop) Resolve(ua string, requested domain.Domain) (domain.PartialResult, error) {
	return domain.PartialResult{Domains: requested, String: ua}, nil
}

// Counting wraps a Resolver and atomically counts every call made to it.
// Composing Counting(Noop{}) as the inner resolver of a Caching resolver
// turns the counter into a miss counter: the inner resolver only runs on
// a cache miss, so Count() after replaying a corpus is exactly the
// number of misses incurred.
type Counting struct {
	inner resolver.Resolver
	count atomic.Int64
}

// NewCounting wraps inner, counting every call made to it.
func NewCounting(inner resolver.Resolver) *Counting {
	return &Counting{inner: inner}
}

// Resolve implements resolver.Resolver.
func (c *Counting) Resolve(ua string, requested domain.Domain) (domain.PartialResult, error) {
	c.count.Add(1)
	return c.inner.Resolve(ua, requested)
}

// Count returns the number of calls made to the wrapped resolver so far.
func (c *Counting) Count() int64 {
	return c.count.Load()
}

// HitRate computes a cache hit rate given the total number of requests
// replayed and the number of misses recorded by a Counting(Noop{})
// inner resolver.
func HitRate(total, misses int64) float64 {
	if total == 0 {
		return 0
	}
	return float64(total-misses) / float64(total)
}
