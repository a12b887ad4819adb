package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	oldVersion, oldCommit := Version, Commit
	t.Cleanup(func() { Version, Commit = oldVersion, oldCommit })

	Version, Commit = "v1.2.3", "none"
	if got := Short(); got != "v1.2.3" {
		t.Errorf("Short() = %q, want %q", got, "v1.2.3")
	}

	Commit = "a1b2c3d4e5f6"
	if got := Short(); got != "v1.2.3 (a1b2c3d)" {
		t.Errorf("Short() = %q, want %q", got, "v1.2.3 (a1b2c3d)")
	}
}

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version ") {
		t.Errorf("Template() = %q, want cobra name placeholder", tmpl)
	}
	if !strings.Contains(String(), "commit: ") {
		t.Errorf("String() = %q, missing commit", String())
	}
}
