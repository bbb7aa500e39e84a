package resolver

import (
	"testing"

	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/matcher"
)

func sampleMatchers() domain.Matchers {
	return domain.Matchers{
		UserAgent: []domain.Matcher[domain.UserAgent]{
			matcher.NewUserAgent(`Chrome/(\d+)\.(\d+)\.(\d+)`, matcher.WithFamily("Chrome")),
			matcher.NewUserAgent(`Firefox/(\d+)\.(\d+)`, matcher.WithFamily("Firefox")),
			matcher.NewUserAgent(`(Mozilla)/(\d+)\.(\d+)`),
		},
		OS: []domain.Matcher[domain.OS]{
			matcher.NewOS(`Windows NT (\d+)\.(\d+)`, matcher.WithOSFamily("Windows")),
			matcher.NewOS(`(Linux)`),
		},
		Device: []domain.Matcher[domain.Device]{
			matcher.NewDevice(`(iPhone)`, true),
			matcher.NewDevice(`(Pixel) (\d+)`, false),
		},
	}
}

// TestPrefilteredAgreesWithLinear implements spec 8 property 5: Linear and
// Prefiltered must agree on every input.
func TestPrefilteredAgreesWithLinear(t *testing.T) {
	matchers := sampleMatchers()
	linear := NewLinear(matchers)
	prefiltered := NewPrefiltered(matchers)

	inputs := []string{
		"Mozilla/5.0 Chrome/90.1.2 Windows NT 10.0 (iPhone)",
		"Mozilla/5.0 Firefox/88.0 Linux Pixel 8",
		"Mozilla/5.0",
		"some completely unrelated string",
		"",
	}

	for _, ua := range inputs {
		want, err := linear.Resolve(ua, domain.All)
		if err != nil {
			t.Fatalf("linear.Resolve(%q): %v", ua, err)
		}
		got, err := prefiltered.Resolve(ua, domain.All)
		if err != nil {
			t.Fatalf("prefiltered.Resolve(%q): %v", ua, err)
		}
		if !partialEqual(want, got) {
			t.Errorf("disagreement on %q:\nlinear:      %+v\nprefiltered: %+v", ua, want, got)
		}
	}
}

func partialEqual(a, b domain.PartialResult) bool {
	if a.Domains != b.Domains {
		return false
	}
	switch {
	case (a.UserAgent == nil) != (b.UserAgent == nil):
		return false
	case a.UserAgent != nil && !a.UserAgent.Equal(*b.UserAgent):
		return false
	}
	switch {
	case (a.OS == nil) != (b.OS == nil):
		return false
	case a.OS != nil && !a.OS.Equal(*b.OS):
		return false
	}
	switch {
	case (a.Device == nil) != (b.Device == nil):
		return false
	case a.Device != nil && !a.Device.Equal(*b.Device):
		return false
	}
	return true
}
