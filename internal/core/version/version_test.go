package version

import "testing"

func TestInfoDefaults(t *testing.T) {
	bi := Info()
	if bi.Service != "netmatch-api" || bi.Version != "dev" || bi.Commit != "none" || bi.Date != "unknown" {
		t.Fatalf("Info() = %+v", bi)
	}
	if got := UserAgent(); got != "netmatch-api/dev" {
		t.Fatalf("UserAgent() = %q", got)
	}
}
