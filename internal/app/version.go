package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set with -ldflags, for example
// -X github.com/heartmarshall/kalculo-backend/internal/app.Version=1.2.0.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion describes the running binary for startup logs and /health.
// Without ldflags the commit and time come from the VCS stamp of the build.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromBuildSettings(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

func fromBuildSettings(settings []debug.BuildSetting, commit, built string) (string, string) {
	dirty := false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" {
				commit = s.Value
			}
		case "vcs.time":
			if built == "unknown" {
				built = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && commit != "unknown" {
		commit += "-dirty"
	}
	return commit, built
}
