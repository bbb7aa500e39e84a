package resolver

import (
	"github.com/coregx/coregex"

	"github.com/fernwood-systems/uaclassify/domain"
)

// Prefiltered wraps a Linear resolver and narrows candidate matchers with
// coregex before ever touching the stdlib-regexp-backed matcher, mirroring
// the original parser's re2-filtered resolver: re2.Filter finds candidate
// indices cheaply, then the real matcher is invoked only on those
// candidates to extract captures.
//
// coregex v1.0 has no capture-group support and no case-insensitive flag,
// so it is used purely as an is-match prefilter; every field extraction
// still goes through the matcher package's stdlib regexp. A matcher whose
// pattern coregex cannot compile, or that needs case-insensitive matching,
// is simply never prefiltered and is tried on every call — correctness
// never depends on the prefilter, only speed does.
type Prefiltered struct {
	linear *Linear

	userAgent []candidate[domain.UserAgent]
	os        []candidate[domain.OS]
	device    []candidate[domain.Device]
}

type candidate[T any] struct {
	matcher domain.Matcher[T]
	prefilt *coregex.Regex // nil if unavailable; matcher always tried then
}

// NewPrefiltered builds a Prefiltered resolver over matchers, compiling a
// coregex prefilter for every pattern coregex can accept.
func NewPrefiltered(matchers domain.Matchers) *Prefiltered {
	return &Prefiltered{
		linear:    NewLinear(matchers),
		userAgent: buildCandidates(matchers.UserAgent),
		os:        buildCandidates(matchers.OS),
		device:    buildCandidates(matchers.Device),
	}
}

func buildCandidates[T any](matchers []domain.Matcher[T]) []candidate[T] {
	out := make([]candidate[T], len(matchers))
	for i, m := range matchers {
		out[i] = candidate[T]{matcher: m}
		if m.Flags()&domain.FlagCaseInsensitive != 0 {
			continue
		}
		re, err := coregex.Compile(m.Pattern())
		if err != nil {
			continue
		}
		out[i].prefilt = re
	}
	return out
}

// Resolve implements Resolver. It agrees with Linear on every input (spec
// 8, property 5): the prefilter only skips matchers coregex can prove
// won't match, never ones it isn't sure about.
func (p *Prefiltered) Resolve(ua string, requested domain.Domain) (domain.PartialResult, error) {
	result := domain.PartialResult{Domains: requested, String: ua}

	if requested.Has(domain.UserAgent) {
		v, ok, err := firstCandidateMatch(p.userAgent, ua)
		if err != nil {
			return domain.PartialResult{}, err
		}
		if ok {
			result.UserAgent = &v
		}
	}
	if requested.Has(domain.OS) {
		v, ok, err := firstCandidateMatch(p.os, ua)
		if err != nil {
			return domain.PartialResult{}, err
		}
		if ok {
			result.OS = &v
		}
	}
	if requested.Has(domain.Device) {
		v, ok, err := firstCandidateMatch(p.device, ua)
		if err != nil {
			return domain.PartialResult{}, err
		}
		if ok {
			result.Device = &v
		}
	}

	return result, nil
}

func firstCandidateMatch[T any](candidates []candidate[T], ua string) (T, bool, error) {
	for _, c := range candidates {
		if c.prefilt != nil && !c.prefilt.MatchString(ua) {
			continue
		}
		v, ok, err := c.matcher.Apply(ua)
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
