package domain

import "testing"

func TestNewBlacklistEntry_Normalizes(t *testing.T) {
	entry, err := NewBlacklistEntry("  EN.Wikipedia.ORG  ")

	if err != nil {
		t.Fatalf("NewBlacklistEntry returned error: %v", err)
	}
	if entry.Host != "en.wikipedia.org" {
		t.Errorf("host = %q", entry.Host)
	}
	if entry.AddedAt.IsZero() {
		t.Error("AddedAt should be set")
	}
}

func TestNewBlacklistEntry_RejectsEmpty(t *testing.T) {
	if _, err := NewBlacklistEntry("   "); err == nil {
		t.Error("empty host should be rejected")
	}
}

func TestNewBlacklistEntry_RejectsNonHostnames(t *testing.T) {
	for _, bad := range []string{"https://host", "host/path", "host:8080", "two words"} {
		if _, err := NewBlacklistEntry(bad); err == nil {
			t.Errorf("%q should be rejected", bad)
		}
	}
}

func TestRGBColor_Hex(t *testing.T) {
	c := RGBColor{R: 255, G: 10, B: 0}

	if got := c.Hex(); got != "#ff0a00" {
		t.Errorf("Hex() = %q", got)
	}
}
