package domain

// Flags carries matcher-level regex options. Only case-insensitivity is
// ever used, and only by Device matchers (spec 4.1).
type Flags uint8

// FlagCaseInsensitive marks a Device matcher's regex as case-insensitive.
const FlagCaseInsensitive Flags = 1 << iota

// Matcher is the capability a single rule exposes: apply it to a string
// and get back a typed record, or ok=false if the rule's regex didn't
// match. err is only ever non-nil for OS/Device matchers whose regex
// matched but whose family substitution template resolved to nothing
// (MalformedRule) — see spec 4.1 and 7.
//
// Both eager (regex compiled at construction) and lazy (compiled on first
// Apply) implementations satisfy this same contract; callers must not
// care which they hold.
type Matcher[T any] interface {
	Apply(ua string) (value T, ok bool, err error)
	// Pattern is the source regex text, exposed so a resolver can bulk
	// register patterns with an external regex-set engine.
	Pattern() string
	// Flags reports matcher-level regex options.
	Flags() Flags
}

// Matchers is the full, ordered rule set for all three domains. Order is
// semantically significant: for a given domain, the first matcher in its
// list whose Apply succeeds wins.
type Matchers struct {
	UserAgent []Matcher[UserAgent]
	OS        []Matcher[OS]
	Device    []Matcher[Device]
}
