package pkg

import (
	"os"
	"strings"
	"testing"
)

func TestName(t *testing.T) {
	expected := "jalg"
	if Name != expected {
		t.Errorf("Expected Name to be %q, got %q", expected, Name)
	}
}

func TestVersion(t *testing.T) {
	// Version is embedded from the VERSION file next to this package.
	buf, err := os.ReadFile("VERSION")
	if err != nil {
		t.Fatalf("Failed to read VERSION file: %v", err)
	}

	if content := strings.TrimSpace(string(buf)); Version() != content {
		t.Errorf("Expected Version to be %q, got %q", content, Version())
	}
}

func TestDirsUsePrefix(t *testing.T) {
	prefix := Prefix()
	if prefix == "" {
		t.Fatal("Prefix() returned empty string")
	}

	for name, dir := range map[string]string{
		"ConfigDir": ConfigDir(),
		"CacheDir":  CacheDir(),
	} {
		if !strings.HasSuffix(dir, prefix) {
			t.Errorf("%s() = %q, want suffix %q", name, dir, prefix)
		}
	}
}
