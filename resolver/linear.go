package resolver

import "github.com/fernwood-systems/uaclassify/domain"

// Linear resolves by trying each domain's matchers in declared order and
// taking the first hit, exactly as spec 4.2 describes. It is the
// reference implementation: every other Resolver must agree with it on
// every input (spec 8, property 5).
//
// Complexity is O(total patterns) per call.
type Linear struct {
	matchers domain.Matchers
}

// NewLinear builds a Linear resolver over matchers. The three matcher
// lists are held read-only and shared across concurrent calls.
func NewLinear(matchers domain.Matchers) *Linear {
	return &Linear{matchers: matchers}
}

// Resolve implements Resolver.
func (l *Linear) Resolve(ua string, requested domain.Domain) (domain.PartialResult, error) {
	result := domain.PartialResult{Domains: requested, String: ua}

	if requested.Has(domain.UserAgent) {
		v, ok, err := firstMatch(l.matchers.UserAgent, ua)
		if err != nil {
			return domain.PartialResult{}, err
		}
		if ok {
			result.UserAgent = &v
		}
	}
	if requested.Has(domain.OS) {
		v, ok, err := firstMatch(l.matchers.OS, ua)
		if err != nil {
			return domain.PartialResult{}, err
		}
		if ok {
			result.OS = &v
		}
	}
	if requested.Has(domain.Device) {
		v, ok, err := firstMatch(l.matchers.Device, ua)
		if err != nil {
			return domain.PartialResult{}, err
		}
		if ok {
			result.Device = &v
		}
	}

	return result, nil
}

// firstMatch returns the first matcher in matchers whose Apply succeeds
// on ua, or ok=false if none does.
func firstMatch[T any](matchers []domain.Matcher[T], ua string) (T, bool, error) {
	for _, m := range matchers {
		v, ok, err := m.Apply(ua)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if ok {
			return v, true, nil
		}
	}
	var zero T
	return zero, false, nil
}
