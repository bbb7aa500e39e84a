// Package gen renders a ruleset.Document into Go source defining a
// package-level domain.Matchers literal, an ahead-of-time alternative to
// parsing YAML at process start. The generated code uses the eager
// matcher constructors, so its regexes still compile when the generated
// package is initialized.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"

	"github.com/fernwood-systems/uaclassify/ruleset"
)

// Options configures the generated file.
type Options struct {
	// Package is the generated file's package name.
	Package string
	// VarName is the exported identifier the matchers table is bound to.
	VarName string
}

var tmpl = template.Must(template.New("matchers").Funcs(template.FuncMap{
	"useragentOpts": useragentOpts,
	"osOpts":        osOpts,
	"deviceOpts":    deviceOpts,
	"deviceCaseInsensitive": func(r ruleset.DeviceRule) string {
		if r.RegexFlag == "i" {
			return "true"
		}
		return "false"
	},
}).Parse(`// Code generated by uaclassify/gen. DO NOT EDIT.

package {{.Opts.Package}}

import (
	"github.com/fernwood-systems/uaclassify/domain"
	"github.com/fernwood-systems/uaclassify/matcher"
)

// {{.Opts.VarName}} is a matcher table generated from a ruleset
// document.
var {{.Opts.VarName}} = domain.Matchers{
	UserAgent: []domain.Matcher[domain.UserAgent]{
{{- range .Doc.UserAgentParsers}}
		matcher.NewUserAgent({{printf "%q" .Regex}}{{range useragentOpts .}}, {{.}}{{end}}),
{{- end}}
	},
	OS: []domain.Matcher[domain.OS]{
{{- range .Doc.OSParsers}}
		matcher.NewOS({{printf "%q" .Regex}}{{range osOpts .}}, {{.}}{{end}}),
{{- end}}
	},
	Device: []domain.Matcher[domain.Device]{
{{- range .Doc.DeviceParsers}}
		matcher.NewDevice({{printf "%q" .Regex}}, {{deviceCaseInsensitive .}}{{range deviceOpts .}}, {{.}}{{end}}),
{{- end}}
	},
}
`))

// Generate renders doc as gofmt-formatted Go source defining a
// domain.Matchers literal per opts.
func Generate(doc ruleset.Document, opts Options) ([]byte, error) {
	if opts.Package == "" {
		opts.Package = "matchers"
	}
	if opts.VarName == "" {
		opts.VarName = "Matchers"
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, struct {
		Doc  ruleset.Document
		Opts Options
	}{doc, opts}); err != nil {
		return nil, fmt.Errorf("gen: executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("gen: formatting generated source: %w", err)
	}
	return formatted, nil
}

func useragentOpts(r ruleset.UserAgentRule) []string {
	var opts []string
	if r.FamilyReplacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithFamily(%q)", r.FamilyReplacement))
	}
	if r.V1Replacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithMajor(%q)", r.V1Replacement))
	}
	if r.V2Replacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithMinor(%q)", r.V2Replacement))
	}
	if r.V3Replacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithPatch(%q)", r.V3Replacement))
	}
	if r.V4Replacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithPatchMinor(%q)", r.V4Replacement))
	}
	return opts
}

func osOpts(r ruleset.OSRule) []string {
	var opts []string
	if r.OSReplacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithOSFamily(%q)", r.OSReplacement))
	}
	if r.OSV1Replacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithOSMajor(%q)", r.OSV1Replacement))
	}
	if r.OSV2Replacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithOSMinor(%q)", r.OSV2Replacement))
	}
	if r.OSV3Replacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithOSPatch(%q)", r.OSV3Replacement))
	}
	if r.OSV4Replacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithOSPatchMinor(%q)", r.OSV4Replacement))
	}
	return opts
}

func deviceOpts(r ruleset.DeviceRule) []string {
	var opts []string
	if r.DeviceReplacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithDeviceFamily(%q)", r.DeviceReplacement))
	}
	if r.BrandReplacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithDeviceBrand(%q)", r.BrandReplacement))
	}
	if r.ModelReplacement != "" {
		opts = append(opts, fmt.Sprintf("matcher.WithDeviceModel(%q)", r.ModelReplacement))
	}
	return opts
}
