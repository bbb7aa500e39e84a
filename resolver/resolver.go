// Package resolver implements the composable resolver stack of spec 4.2,
// 4.3, and 4.8: a Resolver maps a (user-agent string, requested domains)
// pair to a PartialResult that resolves *at least* the requested domains.
// Three implementations share this one contract — Linear (the reference
// semantics every other resolver must match), Prefiltered (delegates
// membership testing to an external regex-set engine for speed), and the
// Caching decorator (merges cached partial answers with fresh
// resolver output).
package resolver

import "github.com/fernwood-systems/uaclassify/domain"

// Resolver parses a user-agent string, resolving at least every domain
// bit set in requested. A Resolver may resolve more than requested but
// must never resolve less — callers rely on this to safely discard
// extra-resolved fields.
type Resolver interface {
	Resolve(ua string, requested domain.Domain) (domain.PartialResult, error)
}

// Func adapts a plain function to the Resolver interface, mirroring the
// original parser's convenience of treating any (str, Domain) -> Partial
// callable as a Resolver (e.g. in tests).
type Func func(ua string, requested domain.Domain) (domain.PartialResult, error)

// Resolve implements Resolver.
func (f Func) Resolve(ua string, requested domain.Domain) (domain.PartialResult, error) {
	return f(ua, requested)
}
