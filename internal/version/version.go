package version

import (
	"runtime"
	"runtime/debug"
)

// Build metadata, overridden at link time:
//
//	go build -ldflags "-X rentalhub/internal/version.Version=1.2.0 -X rentalhub/internal/version.Commit=$(git rev-parse --short HEAD)"
var (
	Version   = "0.1.0"
	Commit    = ""
	BuildTime = ""
)

type Info struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildTime string `json:"buildTime"`
	GoVersion string `json:"goVersion"`
}

// Get falls back to the VCS stamp embedded by the go tool when Commit or
// BuildTime were not set at link time.
func Get() Info {
	info := Info{
		Version:   Version,
		Commit:    Commit,
		BuildTime: BuildTime,
		GoVersion: runtime.Version(),
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		for _, s := range bi.Settings {
			switch s.Key {
			case "vcs.revision":
				if info.Commit == "" {
					info.Commit = s.Value
				}
			case "vcs.time":
				if info.BuildTime == "" {
					info.BuildTime = s.Value
				}
			}
		}
	}
	return info
}
