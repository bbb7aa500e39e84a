package gen

import (
	"strings"
	"testing"

	"github.com/fernwood-systems/uaclassify/ruleset"
)

func TestGenerateProducesValidGoSource(t *testing.T) {
	doc := ruleset.Document{
		UserAgentParsers: []ruleset.UserAgentRule{
			{Regex: `Foo/(\d+)\.(\d+)`, FamilyReplacement: "Foo Browser"},
		},
		OSParsers: []ruleset.OSRule{
			{Regex: `BarOS (\d+)`, OSReplacement: "BarOS"},
		},
		DeviceParsers: []ruleset.DeviceRule{
			{Regex: `(Baz) Phone`, RegexFlag: "i", DeviceReplacement: "Baz Phone"},
		},
	}

	src, err := Generate(doc, Options{Package: "builtinmatchers", VarName: "Matchers"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := string(src)
	if !strings.Contains(out, "package builtinmatchers") {
		t.Errorf("expected generated package clause, got:\n%s", out)
	}
	if !strings.Contains(out, `matcher.NewUserAgent("Foo/(\\d+)\\.(\\d+)", matcher.WithFamily("Foo Browser"))`) {
		t.Errorf("expected generated UserAgent constructor call, got:\n%s", out)
	}
	if !strings.Contains(out, `matcher.NewDevice("(Baz) Phone", true, matcher.WithDeviceFamily("Baz Phone"))`) {
		t.Errorf("expected generated Device constructor call with case-insensitive flag, got:\n%s", out)
	}
}

func TestGenerateDefaultsOptions(t *testing.T) {
	src, err := Generate(ruleset.Document{}, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := string(src)
	if !strings.Contains(out, "package matchers") {
		t.Errorf("expected default package name, got:\n%s", out)
	}
	if !strings.Contains(out, "var Matchers = domain.Matchers{") {
		t.Errorf("expected default var name, got:\n%s", out)
	}
}
