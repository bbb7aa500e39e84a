// Package ruleset loads matcher definitions from YAML or JSON documents
// shaped like the uap-core regexes.yaml format (spec 6) and converts them
// into domain.Matchers, plus embeds a small built-in rule set.
package ruleset

// Document is the top-level shape of a rule file: three ordered lists,
// one per domain, matching uap-core's regexes.yaml keys.
type Document struct {
	UserAgentParsers []UserAgentRule `yaml:"user_agent_parsers" json:"user_agent_parsers"`
	OSParsers        []OSRule        `yaml:"os_parsers" json:"os_parsers"`
	DeviceParsers    []DeviceRule    `yaml:"device_parsers" json:"device_parsers"`
}

// UserAgentRule is one entry of user_agent_parsers.
type UserAgentRule struct {
	Regex             string `yaml:"regex" json:"regex"`
	FamilyReplacement string `yaml:"family_replacement,omitempty" json:"family_replacement,omitempty"`
	V1Replacement     string `yaml:"v1_replacement,omitempty" json:"v1_replacement,omitempty"`
	V2Replacement     string `yaml:"v2_replacement,omitempty" json:"v2_replacement,omitempty"`
	V3Replacement     string `yaml:"v3_replacement,omitempty" json:"v3_replacement,omitempty"`
	V4Replacement     string `yaml:"v4_replacement,omitempty" json:"v4_replacement,omitempty"`
}

// OSRule is one entry of os_parsers.
type OSRule struct {
	Regex           string `yaml:"regex" json:"regex"`
	OSReplacement   string `yaml:"os_replacement,omitempty" json:"os_replacement,omitempty"`
	OSV1Replacement string `yaml:"os_v1_replacement,omitempty" json:"os_v1_replacement,omitempty"`
	OSV2Replacement string `yaml:"os_v2_replacement,omitempty" json:"os_v2_replacement,omitempty"`
	OSV3Replacement string `yaml:"os_v3_replacement,omitempty" json:"os_v3_replacement,omitempty"`
	OSV4Replacement string `yaml:"os_v4_replacement,omitempty" json:"os_v4_replacement,omitempty"`
}

// DeviceRule is one entry of device_parsers.
type DeviceRule struct {
	Regex             string `yaml:"regex" json:"regex"`
	RegexFlag         string `yaml:"regex_flag,omitempty" json:"regex_flag,omitempty"`
	DeviceReplacement string `yaml:"device_replacement,omitempty" json:"device_replacement,omitempty"`
	BrandReplacement  string `yaml:"brand_replacement,omitempty" json:"brand_replacement,omitempty"`
	ModelReplacement  string `yaml:"model_replacement,omitempty" json:"model_replacement,omitempty"`
}
