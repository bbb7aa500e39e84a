package matcher

import "testing"

func TestOSApplyDefaultTemplates(t *testing.T) {
	m := NewOS(`(Windows NT) (\d+)\.(\d+)`, WithOSFamily("Windows"))
	os, ok, err := m.Apply("Mozilla Windows NT 10.0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected match")
	}
	if os.Family != "Windows" {
		t.Errorf("Family: got %q, want %q", os.Family, "Windows")
	}
	if os.Major == nil || *os.Major != "10" {
		t.Errorf("Major: got %v, want 10", os.Major)
	}
	if os.Minor == nil || *os.Minor != "0" {
		t.Errorf("Minor: got %v, want 0", os.Minor)
	}
	if os.Patch != nil {
		t.Errorf("Patch: expected nil (no group 4), got %v", os.Patch)
	}
}

func TestOSApplyMalformedRule(t *testing.T) {
	// family template references a group that will never be present.
	m := NewOS(`static-os`, WithOSFamily("$9"))
	_, ok, err := m.Apply("static-os")
	if ok {
		t.Fatal("expected no successful match")
	}
	if err == nil {
		t.Fatal("expected MalformedRule error")
	}
}

func TestOSApplyNoMatch(t *testing.T) {
	m := NewOS(`(Linux)`)
	_, ok, err := m.Apply("Windows")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatal("expected no match")
	}
}

func TestOSFamilyStripsWhitespace(t *testing.T) {
	m := NewOS(`(OS X) (\d+)`, WithOSFamily("  $1  "))
	os, ok, _ := m.Apply("OS X 11")
	if !ok {
		t.Fatal("expected match")
	}
	if os.Family != "OS X" {
		t.Errorf("Family: got %q, want trimmed %q", os.Family, "OS X")
	}
}
