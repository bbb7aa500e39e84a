// Package uaclassify is the top-level convenience layer over the
// resolver stack: a Parser wraps any resolver.Resolver and exposes the
// parse/parse_user_agent/parse_os/parse_device helpers, plus a
// lazily-initialized process-wide default.
package uaclassify

import (
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/fernwood-systems/uaclassify/cache"
	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/resolver"
	"github.com/fernwood-systems/uaclassify/ruleset"
)

// Parser resolves user-agent strings through an underlying Resolver. A
// Parser may resolve more domains than requested, but it must never
// resolve fewer — callers depend on this to discard extra fields safely.
type Parser struct {
	resolver resolver.Resolver
}

// New wraps r in a Parser.
func New(r resolver.Resolver) *Parser {
	return &Parser{resolver: r}
}

// FromMatchers builds the default production stack over matchers: a
// Linear resolver wrapped in a Caching resolver backed by a
// Locking-protected LRU(200), matching the reference configuration used
// when no faster prefilter engine is wired in.
func FromMatchers(matchers domain.Matchers) *Parser {
	return New(resolver.NewCaching(
		resolver.NewLinear(matchers),
		cache.NewLocking(cache.NewLRU(200)),
	))
}

// Call resolves ua, returning a PartialResult with at least every domain
// bit set in requested resolved.
func (p *Parser) Call(ua string, requested domain.Domain) (domain.PartialResult, error) {
	return p.resolver.Resolve(ua, requested)
}

// Parse resolves every domain and falls back to default values
// (Family "Other") for any that failed to match.
func (p *Parser) Parse(ua string) (domain.DefaultedResult, error) {
	partial, err := p.Call(ua, domain.All)
	if err != nil {
		return domain.DefaultedResult{}, err
	}
	result, err := partial.Complete()
	if err != nil {
		return domain.DefaultedResult{}, err
	}
	return result.WithDefaults(), nil
}

// ParseUserAgent resolves only the UserAgent domain.
func (p *Parser) ParseUserAgent(ua string) (*domain.UserAgent, error) {
	partial, err := p.Call(ua, domain.UserAgent)
	if err != nil {
		return nil, err
	}
	return partial.UserAgent, nil
}

// ParseOS resolves only the OS domain.
func (p *Parser) ParseOS(ua string) (*domain.OS, error) {
	partial, err := p.Call(ua, domain.OS)
	if err != nil {
		return nil, err
	}
	return partial.OS, nil
}

// ParseDevice resolves only the Device domain.
func (p *Parser) ParseDevice(ua string) (*domain.Device, error) {
	partial, err := p.Call(ua, domain.Device)
	if err != nil {
		return nil, err
	}
	return partial.Device, nil
}

var (
	defaultMu     sync.Mutex
	defaultParser *Parser
	defaultInit   singleflight.Group
)

// Default returns the process-wide default Parser, built from the
// built-in rule set on first access. Concurrent first-callers share one
// initialization via singleflight, so the embedded rule set is only
// parsed once regardless of how many goroutines race to call Default.
//
// Callers who need deterministic caching behavior, a different rule
// set, or a different resolver stack should build their own Parser with
// New or FromMatchers instead of relying on this default.
func Default() (*Parser, error) {
	defaultMu.Lock()
	if defaultParser != nil {
		p := defaultParser
		defaultMu.Unlock()
		return p, nil
	}
	defaultMu.Unlock()

	v, err, _ := defaultInit.Do("default-parser", func() (any, error) {
		// A caller that saw no default above may reach Do only after an
		// earlier initialization finished; reuse that instance.
		defaultMu.Lock()
		if defaultParser != nil {
			p := defaultParser
			defaultMu.Unlock()
			return p, nil
		}
		defaultMu.Unlock()

		matchers, err := ruleset.LoadBuiltins()
		if err != nil {
			return nil, err
		}
		p := FromMatchers(matchers)

		defaultMu.Lock()
		defaultParser = p
		defaultMu.Unlock()

		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Parser), nil
}

// SetDefault replaces the process-wide default Parser. Intended for
// tests and for applications that want to install a custom stack before
// any code path calls Default.
func SetDefault(p *Parser) {
	defaultMu.Lock()
	defaultParser = p
	defaultMu.Unlock()
}
