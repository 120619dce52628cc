// Package version reports the build identity of the signup binary.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set at link time:
//
//	go build -ldflags="-X github.com/muurk/signup/internal/version.Version=v1.2.3 \
//	                   -X github.com/muurk/signup/internal/version.Commit=abc123"
var (
	Version = ""
	Commit  = ""
)

// devVersion is reported when neither ldflags nor module info name a version
const devVersion = "dev"

// BuildInfo is the resolved build identity
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	Commit    string `json:"commit" yaml:"commit"`
	Dirty     bool   `json:"dirty,omitempty" yaml:"dirty,omitempty"`
	GoVersion string `json:"goVersion" yaml:"goVersion"`
}

func init() {
	info := resolve(Version, Commit, readBuildInfo())
	Version = info.Version
	Commit = info.Commit
}

func readBuildInfo() *debug.BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}
	return info
}

// resolve fills empty linker values from module and VCS build metadata
func resolve(version, commit string, bi *debug.BuildInfo) BuildInfo {
	out := BuildInfo{
		Version:   version,
		Commit:    commit,
		GoVersion: runtime.Version(),
	}

	if bi != nil {
		// go install module@vX.Y.Z records the tag here
		if out.Version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
			out.Version = bi.Main.Version
		}

		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if out.Commit == "" {
					out.Commit = shortRevision(s.Value)
				}
			case "vcs.modified":
				out.Dirty = s.Value == "true"
			}
		}
		if bi.GoVersion != "" {
			out.GoVersion = bi.GoVersion
		}
	}

	if out.Version == "" {
		out.Version = devVersion
	}
	if out.Commit == "" {
		out.Commit = "unknown"
	}
	out.Version = strings.TrimPrefix(out.Version, "v")
	return out
}

func shortRevision(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}

// Get returns the build identity of the running binary
func Get() BuildInfo {
	return resolve(Version, Commit, readBuildInfo())
}

// Full returns "VERSION (commit: COMMIT)", with a -dirty suffix on the
// commit for builds from a modified tree
func Full() string {
	info := Get()
	commit := info.Commit
	if info.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s (commit: %s)", info.Version, commit)
}
