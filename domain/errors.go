package domain

import "fmt"

// MalformedRule is returned when an OS or Device matcher's regex matched
// an input but its family substitution template resolved to empty or
// undefined. A rule whose family can't be determined is ill-formed data,
// not a parsing failure, so it is surfaced as an error rather than folded
// into a "no match" result.
type MalformedRule struct {
	// Input is the string that triggered the match.
	Input string
	// Pattern is the source regex text of the offending rule.
	Pattern string
}

func (e *MalformedRule) Error() string {
	return fmt.Sprintf("unable to resolve family for rule %q on input %q", e.Pattern, e.Input)
}

// ErrIncompleteResult is returned by PartialResult.Complete when not every
// domain has been resolved yet.
var ErrIncompleteResult = fmt.Errorf("domain: Complete requires every domain to be resolved")
