package ruleset

import (
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/matcher"
)

// LoadYAML decodes a uap-core-shaped YAML document from r and converts it
// to eagerly-compiled domain.Matchers.
func LoadYAML(r io.Reader) (domain.Matchers, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return domain.Matchers{}, err
	}
	return ToMatchers(doc), nil
}

// LoadJSON decodes a uap-core-shaped JSON document from r and converts it
// to eagerly-compiled domain.Matchers.
func LoadJSON(r io.Reader) (domain.Matchers, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return domain.Matchers{}, err
	}
	return ToMatchers(doc), nil
}

// ToMatchers converts a Document into domain.Matchers, compiling every
// pattern eagerly. Replacement fields left empty fall back to each
// matcher type's own default template ($1, $2, ...).
func ToMatchers(doc Document) domain.Matchers {
	return domain.Matchers{
		UserAgent: toUserAgentMatchers(doc.UserAgentParsers, matcher.NewUserAgent),
		OS:        toOSMatchers(doc.OSParsers, matcher.NewOS),
		Device:    toDeviceMatchers(doc.DeviceParsers, matcher.NewDevice),
	}
}

// ToLazyMatchers converts a Document into domain.Matchers whose patterns
// are compiled on first use rather than at load time, trading a small
// per-call sync.Once check for a near-instant startup on large rule
// sets (spec's lazy-matcher variant, grounded on original_source/lazy.py).
func ToLazyMatchers(doc Document) domain.Matchers {
	return domain.Matchers{
		UserAgent: toUserAgentMatchers(doc.UserAgentParsers, matcher.NewLazyUserAgent),
		OS:        toOSMatchers(doc.OSParsers, matcher.NewLazyOS),
		Device:    toDeviceMatchers(doc.DeviceParsers, matcher.NewLazyDevice),
	}
}

func toUserAgentMatchers(
	rules []UserAgentRule,
	build func(pattern string, opts ...matcher.UAOption) *matcher.UserAgent,
) []domain.Matcher[domain.UserAgent] {
	out := make([]domain.Matcher[domain.UserAgent], 0, len(rules))
	for _, rule := range rules {
		var opts []matcher.UAOption
		if rule.FamilyReplacement != "" {
			opts = append(opts, matcher.WithFamily(rule.FamilyReplacement))
		}
		if rule.V1Replacement != "" {
			opts = append(opts, matcher.WithMajor(rule.V1Replacement))
		}
		if rule.V2Replacement != "" {
			opts = append(opts, matcher.WithMinor(rule.V2Replacement))
		}
		if rule.V3Replacement != "" {
			opts = append(opts, matcher.WithPatch(rule.V3Replacement))
		}
		if rule.V4Replacement != "" {
			opts = append(opts, matcher.WithPatchMinor(rule.V4Replacement))
		}
		out = append(out, build(rule.Regex, opts...))
	}
	return out
}

func toOSMatchers(
	rules []OSRule,
	build func(pattern string, opts ...matcher.OSOption) *matcher.OS,
) []domain.Matcher[domain.OS] {
	out := make([]domain.Matcher[domain.OS], 0, len(rules))
	for _, rule := range rules {
		var opts []matcher.OSOption
		if rule.OSReplacement != "" {
			opts = append(opts, matcher.WithOSFamily(rule.OSReplacement))
		}
		if rule.OSV1Replacement != "" {
			opts = append(opts, matcher.WithOSMajor(rule.OSV1Replacement))
		}
		if rule.OSV2Replacement != "" {
			opts = append(opts, matcher.WithOSMinor(rule.OSV2Replacement))
		}
		if rule.OSV3Replacement != "" {
			opts = append(opts, matcher.WithOSPatch(rule.OSV3Replacement))
		}
		if rule.OSV4Replacement != "" {
			opts = append(opts, matcher.WithOSPatchMinor(rule.OSV4Replacement))
		}
		out = append(out, build(rule.Regex, opts...))
	}
	return out
}

func toDeviceMatchers(
	rules []DeviceRule,
	build func(pattern string, caseInsensitive bool, opts ...matcher.DeviceOption) *matcher.Device,
) []domain.Matcher[domain.Device] {
	out := make([]domain.Matcher[domain.Device], 0, len(rules))
	for _, rule := range rules {
		var opts []matcher.DeviceOption
		if rule.DeviceReplacement != "" {
			opts = append(opts, matcher.WithDeviceFamily(rule.DeviceReplacement))
		}
		if rule.BrandReplacement != "" {
			opts = append(opts, matcher.WithDeviceBrand(rule.BrandReplacement))
		}
		if rule.ModelReplacement != "" {
			opts = append(opts, matcher.WithDeviceModel(rule.ModelReplacement))
		}
		caseInsensitive := rule.RegexFlag == "i"
		out = append(out, build(rule.Regex, caseInsensitive, opts...))
	}
	return out
}
