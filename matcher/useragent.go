package matcher

import (
	"strings"

	"github.com/fernwood-systems/uaclassify/domain"
)

// UserAgent matches the browser domain: one regex plus an optional
// family template and literal overrides for major/minor/patch/patch_minor.
//
// Family substitution is bespoke (spec 4.1): if a template is given and
// contains "$1", the literal substring "$1" is replaced by capture group 1
// verbatim (no stripping; an absent or empty group 1 substitutes the
// empty string) — the stricter replace() used by OS/Device does not
// apply here.
type UserAgent struct {
	src *regexSource

	family     string
	major      *string
	minor      *string
	patch      *string
	patchMinor *string
}

// uaConfig collects the optional overrides set by UAOption values for a
// UserAgent matcher.
type uaConfig struct {
	family, major, minor, patch, patchMinor *string
}

// UAOption configures a UserAgent matcher.
type UAOption func(*uaConfig)

// WithFamily overrides the family substitution template.
func WithFamily(tmpl string) UAOption { return func(c *uaConfig) { c.family = &tmpl } }

// WithMajor overrides the major-version literal.
func WithMajor(tmpl string) UAOption { return func(c *uaConfig) { c.major = &tmpl } }

// WithMinor overrides the minor-version literal.
func WithMinor(tmpl string) UAOption { return func(c *uaConfig) { c.minor = &tmpl } }

// WithPatch overrides the patch-version literal.
func WithPatch(tmpl string) UAOption { return func(c *uaConfig) { c.patch = &tmpl } }

// WithPatchMinor overrides the patch-minor-version literal.
func WithPatchMinor(tmpl string) UAOption { return func(c *uaConfig) { c.patchMinor = &tmpl } }

func applyUAOptions(opts []UAOption) uaConfig {
	var c uaConfig
	for _, o := range opts {
		o(&c)
	}
	return c
}

// NewUserAgent builds an eager UserAgent matcher: the regex is compiled
// immediately, panicking on an invalid pattern.
func NewUserAgent(pattern string, opts ...UAOption) *UserAgent {
	return newUserAgent(newEagerRegexSource(pattern, false), opts)
}

// NewLazyUserAgent builds a UserAgent matcher whose regex is compiled on
// first Apply rather than at construction.
func NewLazyUserAgent(pattern string, opts ...UAOption) *UserAgent {
	return newUserAgent(newRegexSource(pattern, false), opts)
}

func newUserAgent(src *regexSource, opts []UAOption) *UserAgent {
	c := applyUAOptions(opts)
	family := "$1"
	if c.family != nil {
		family = *c.family
	}
	return &UserAgent{
		src:        src,
		family:     family,
		major:      c.major,
		minor:      c.minor,
		patch:      c.patch,
		patchMinor: c.patchMinor,
	}
}

// Apply implements domain.Matcher[domain.UserAgent]. It never returns a
// non-nil error: malformed-family detection only applies to OS and
// Device matchers (spec 4.1/4.7).
func (u *UserAgent) Apply(ua string) (domain.UserAgent, bool, error) {
	m := u.src.search(ua)
	if m == nil {
		return domain.UserAgent{}, false, nil
	}

	family := u.family
	if strings.Contains(family, "$1") {
		g1, _ := group(m, 1)
		family = strings.ReplaceAll(family, "$1", g1)
	}

	return domain.UserAgent{
		Family:     family,
		Major:      literalOrGroup(u.major, m, 2),
		Minor:      literalOrGroup(u.minor, m, 3),
		Patch:      literalOrGroup(u.patch, m, 4),
		PatchMinor: literalOrGroup(u.patchMinor, m, 5),
	}, true, nil
}

// literalOrGroup implements the UserAgent non-family field rule: a
// literal override always wins verbatim; absent a literal, fall back to
// the (possibly undefined) capture group.
func literalOrGroup(lit *string, m []string, idx int) *string {
	if lit != nil {
		v := *lit
		return &v
	}
	if v, ok := group(m, idx); ok {
		return &v
	}
	return nil
}

func (u *UserAgent) Pattern() string   { return u.src.pattern }
func (u *UserAgent) Flags() domain.Flags { return 0 }
