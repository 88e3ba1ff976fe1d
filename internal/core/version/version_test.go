package version

import "testing"

func TestInfo_Defaults(t *testing.T) {
	got := Info()
	if got.Service != "addressbook-api" || got.Version != "dev" || got.Commit != "none" || got.Date != "unknown" {
		t.Fatalf("unexpected build info %+v", got)
	}
}

func TestInfo_ReflectsLinkerVars(t *testing.T) {
	old := version
	version = "v9.9.9"
	t.Cleanup(func() { version = old })

	if got := Info().Version; got != "v9.9.9" {
		t.Fatalf("Version = %q", got)
	}
}
