package buildinfo

import "testing"

func TestTemplate(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.2.3", "abc123", "2025-01-01T00:00:00Z"

	got := Template()
	want := "{{.Name}} version v1.2.3\ncommit: abc123\nbuilt: 2025-01-01T00:00:00Z\n"
	if got != want {
		t.Errorf("Template() = %q, want %q", got, want)
	}
}

func TestResolveKeepsLdflags(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v9.9.9", "set", "set"

	Resolve()
	if Version != "v9.9.9" || Commit != "set" || Date != "set" {
		t.Errorf("Resolve() overwrote ldflags values: %s %s %s", Version, Commit, Date)
	}
}
