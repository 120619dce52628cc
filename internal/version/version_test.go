package version

import (
	"runtime/debug"
	"testing"
)

func TestResolveLinkerValuesWin(t *testing.T) {
	bi := &debug.BuildInfo{
		Main: debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
		},
	}

	got := resolve("v1.2.3", "abc123", bi)

	if got.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", got.Version)
	}
	if got.Commit != "abc123" {
		t.Errorf("Commit = %q, want abc123", got.Commit)
	}
}

func TestResolveFromBuildInfo(t *testing.T) {
	bi := &debug.BuildInfo{
		GoVersion: "go1.24.1",
		Main:      debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
		},
	}

	got := resolve("", "", bi)

	want := BuildInfo{Version: "0.4.0", Commit: "0123456", Dirty: true, GoVersion: "go1.24.1"}
	if got != want {
		t.Errorf("resolve() = %+v, want %+v", got, want)
	}
}

func TestResolveFallbacks(t *testing.T) {
	got := resolve("", "", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})

	if got.Version != devVersion {
		t.Errorf("Version = %q, want %q", got.Version, devVersion)
	}
	if got.Commit != "unknown" {
		t.Errorf("Commit = %q, want unknown", got.Commit)
	}

	if got := resolve("", "", nil); got.Version != devVersion || got.GoVersion == "" {
		t.Errorf("resolve(nil) = %+v", got)
	}
}
