package uaclassify

import (
	"sync"
	"testing"

	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/matcher"
	"github.com/fernwood-systems/uaclassify/resolver"
)

func linearResolverFor(t *testing.T) resolver.Resolver {
	t.Helper()
	return resolver.NewLinear(domain.Matchers{
		UserAgent: []domain.Matcher[domain.UserAgent]{matcher.NewUserAgent(`(a)`)},
		OS:        []domain.Matcher[domain.OS]{matcher.NewOS(`(a)`)},
		Device:    []domain.Matcher[domain.Device]{matcher.NewDevice(`(a)`, false)},
	})
}

func TestParserParseFallsBackToDefaults(t *testing.T) {
	p := New(resolver.NewLinear(domain.Matchers{}))
	got, err := p.Parse("anything")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UserAgent.Family != "Other" || got.OS.Family != "Other" || got.Device.Family != "Other" {
		t.Errorf("expected every domain defaulted to Other, got %+v", got)
	}
}

func TestParserParseUserAgent(t *testing.T) {
	p := New(linearResolverFor(t))
	ua, err := p.ParseUserAgent("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ua == nil || ua.Family != "a" {
		t.Errorf("expected resolved UserAgent, got %v", ua)
	}
}

func TestFromMatchersBuildsCachingLinearStack(t *testing.T) {
	p := FromMatchers(domain.Matchers{
		UserAgent: []domain.Matcher[domain.UserAgent]{matcher.NewUserAgent(`(a)`)},
	})
	ua, err := p.ParseUserAgent("a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ua == nil || ua.Family != "a" {
		t.Errorf("expected resolved UserAgent, got %v", ua)
	}
}

func TestDefaultConcurrentFirstCallersShareOneInstance(t *testing.T) {
	SetDefault(nil) // force re-initialization for this test

	var wg sync.WaitGroup
	results := make([]*Parser, 20)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, err := Default()
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results[i] = p
		}(i)
	}
	wg.Wait()

	first := results[0]
	if first == nil {
		t.Fatal("expected a non-nil default parser")
	}
	for _, p := range results {
		if p != first {
			t.Error("expected every concurrent caller to observe the same default instance")
		}
	}
}

func TestSetDefaultReplacesInstance(t *testing.T) {
	custom := New(linearResolverFor(t))
	SetDefault(custom)
	got, err := Default()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != custom {
		t.Error("expected Default to return the custom instance set via SetDefault")
	}
}
