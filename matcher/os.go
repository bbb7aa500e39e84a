package matcher

import "github.com/fernwood-systems/uaclassify/domain"

// OS matches the operating system domain: one regex plus substitution
// templates for family/major/minor/patch/patch_minor, defaulting to
// "$1".."$5" respectively. Uses the stricter replace() substitution
// function (spec 4.1), unlike UserAgent's bespoke family handling.
type OS struct {
	src *regexSource

	family, major, minor, patch, patchMinor string
}

// OSOption configures an OS matcher's substitution templates.
type OSOption func(*osConfig)

type osConfig struct {
	family, major, minor, patch, patchMinor *string
}

func WithOSFamily(tmpl string) OSOption     { return func(c *osConfig) { c.family = &tmpl } }
func WithOSMajor(tmpl string) OSOption      { return func(c *osConfig) { c.major = &tmpl } }
func WithOSMinor(tmpl string) OSOption      { return func(c *osConfig) { c.minor = &tmpl } }
func WithOSPatch(tmpl string) OSOption      { return func(c *osConfig) { c.patch = &tmpl } }
func WithOSPatchMinor(tmpl string) OSOption { return func(c *osConfig) { c.patchMinor = &tmpl } }

// NewOS builds an eager OS matcher.
func NewOS(pattern string, opts ...OSOption) *OS {
	return newOS(newEagerRegexSource(pattern, false), opts)
}

// NewLazyOS builds an OS matcher whose regex compiles on first Apply.
func NewLazyOS(pattern string, opts ...OSOption) *OS {
	return newOS(newRegexSource(pattern, false), opts)
}

func newOS(src *regexSource, opts []OSOption) *OS {
	var c osConfig
	for _, o := range opts {
		o(&c)
	}
	return &OS{
		src:        src,
		family:     orDefault(c.family, "$1"),
		major:      orDefault(c.major, "$2"),
		minor:      orDefault(c.minor, "$3"),
		patch:      orDefault(c.patch, "$4"),
		patchMinor: orDefault(c.patchMinor, "$5"),
	}
}

func orDefault(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

// Apply implements domain.Matcher[domain.OS]. Returns a *domain.MalformedRule
// error if the regex matched but the family template resolved to nothing
// (spec 4.1/4.7): a matching rule that can't name its own family is
// ill-formed data, not a lookup failure.
func (o *OS) Apply(ua string) (domain.OS, bool, error) {
	m := o.src.search(ua)
	if m == nil {
		return domain.OS{}, false, nil
	}

	family, ok := replace(o.family, m)
	if !ok {
		return domain.OS{}, false, &domain.MalformedRule{Input: ua, Pattern: o.src.pattern}
	}

	return domain.OS{
		Family:     family,
		Major:      replacePtr(o.major, m),
		Minor:      replacePtr(o.minor, m),
		Patch:      replacePtr(o.patch, m),
		PatchMinor: replacePtr(o.patchMinor, m),
	}, true, nil
}

func replacePtr(tmpl string, m []string) *string {
	if v, ok := replace(tmpl, m); ok {
		return &v
	}
	return nil
}

func (o *OS) Pattern() string     { return o.src.pattern }
func (o *OS) Flags() domain.Flags { return 0 }
