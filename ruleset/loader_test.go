package ruleset

import (
	"strings"
	"testing"
)

const sampleYAML = `
user_agent_parsers:
  - regex: 'Foo/(\d+)\.(\d+)'
    family_replacement: 'Foo Browser'
os_parsers:
  - regex: 'BarOS (\d+)'
    os_replacement: 'BarOS'
device_parsers:
  - regex: '(Baz) Phone'
    regex_flag: 'i'
`

func TestLoadYAMLProducesWorkingMatchers(t *testing.T) {
	matchers, err := LoadYAML(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(matchers.UserAgent) != 1 || len(matchers.OS) != 1 || len(matchers.Device) != 1 {
		t.Fatalf("expected one matcher per domain, got %+v", matchers)
	}

	ua, ok, err := matchers.UserAgent[0].Apply("Foo/1.2")
	if err != nil || !ok {
		t.Fatalf("expected UA match, ok=%v err=%v", ok, err)
	}
	if ua.Family != "Foo Browser" {
		t.Errorf("Family: got %q, want %q", ua.Family, "Foo Browser")
	}

	os, ok, err := matchers.OS[0].Apply("BarOS 9")
	if err != nil || !ok {
		t.Fatalf("expected OS match, ok=%v err=%v", ok, err)
	}
	if os.Family != "BarOS" {
		t.Errorf("Family: got %q, want %q", os.Family, "BarOS")
	}

	dev, ok, err := matchers.Device[0].Apply("baz PHONE")
	if err != nil || !ok {
		t.Fatalf("expected case-insensitive device match, ok=%v err=%v", ok, err)
	}
	if dev.Family != "baz" {
		t.Errorf("Family: got %q, want %q", dev.Family, "baz")
	}
}

func TestLoadYAMLInvalidDocumentErrors(t *testing.T) {
	_, err := LoadYAML(strings.NewReader("not: [valid"))
	if err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestToLazyMatchersDefersCompilation(t *testing.T) {
	var doc Document
	doc.UserAgentParsers = []UserAgentRule{{Regex: `Foo/(\d+)`}}
	matchers := ToLazyMatchers(doc)
	if len(matchers.UserAgent) != 1 {
		t.Fatalf("expected one UA matcher, got %d", len(matchers.UserAgent))
	}
	if _, ok, err := matchers.UserAgent[0].Apply("Foo/3"); err != nil || !ok {
		t.Fatalf("expected lazy matcher to compile and match, ok=%v err=%v", ok, err)
	}
}
