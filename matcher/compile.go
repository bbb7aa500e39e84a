// Package matcher implements the three domain-specific rule matchers
// (UserAgent, OS, Device) described in spec 4.1: one compiled regex plus
// an optional per-field substitution template, applied to an input string
// via search-not-match semantics.
//
// Each matcher comes in two constructions, both satisfying
// domain.Matcher[T]: eager (the regex is compiled immediately, the classic
// choice when a rule set is built once at startup) and lazy (compiled on
// first Apply, useful when a large rule set is loaded but only a fraction
// of its patterns ever fire against real traffic). Compilation is
// idempotent and safe under concurrent first use either way.
package matcher

import (
	"regexp"
	"sync"
)

// regexSource owns the compile-once-use-many lifecycle shared by every
// matcher variant. It mirrors invalidation/patterns.go's
// compile-and-cache-on-first-use idiom, specialized to a single pattern
// per matcher instead of a shared cache keyed by pattern text.
type regexSource struct {
	pattern string
	flags   int // 1 compiles the pattern with the "(?i)" prefix

	once sync.Once
	re   *regexp.Regexp
	err  error
}

func newRegexSource(pattern string, caseInsensitive bool) *regexSource {
	src := &regexSource{pattern: pattern}
	if caseInsensitive {
		src.flags = 1
	}
	return src
}

// newEagerRegexSource compiles immediately and panics on an invalid
// pattern, matching the teacher's and the original parser's assumption
// that rule sets are validated once, well before serving traffic.
func newEagerRegexSource(pattern string, caseInsensitive bool) *regexSource {
	src := newRegexSource(pattern, caseInsensitive)
	src.compile()
	if src.err != nil {
		panic("matcher: invalid pattern " + pattern + ": " + src.err.Error())
	}
	return src
}

func (s *regexSource) compile() {
	s.once.Do(func() {
		pattern := s.pattern
		if s.flags == 1 {
			pattern = "(?i)" + pattern
		}
		s.re, s.err = regexp.Compile(pattern)
	})
}

// search runs the matcher's regex against ua and returns the submatch
// slice (as returned by regexp.Regexp.FindStringSubmatch) or nil if there
// was no match anywhere in ua. Compilation happens on first call for lazy
// matchers, and is a no-op (already done) for eager ones.
func (s *regexSource) search(ua string) []string {
	s.compile()
	if s.err != nil {
		// An invalid pattern on a lazy matcher surfaces as "never
		// matches" rather than a panic deep inside a hot path; only the
		// eager constructors reject an invalid pattern, by panicking.
		return nil
	}
	return s.re.FindStringSubmatch(ua)
}
