package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

var (
	// These variables are set at build time using -ldflags.
	Version   = "dev"
	GitCommit = ""
)

// Info represents version information.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"`
	GoVersion string `json:"go_version"`
	IsRelease bool   `json:"is_release"`
}

// Get returns version information for this build.
func Get() Info {
	info := Info{
		Version:   Version,
		GitCommit: GitCommit,
		GoVersion: runtime.Version(),
		IsRelease: Version != "dev" && !strings.Contains(Version, "dirty"),
	}

	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if info.GitCommit == "" {
			for _, setting := range buildInfo.Settings {
				if setting.Key == "vcs.revision" {
					info.GitCommit = setting.Value
					break
				}
			}
		}
	}

	return info
}

// ShortCommit returns the first 8 characters of the git commit hash.
func (i Info) ShortCommit() string {
	if len(i.GitCommit) > 8 {
		return i.GitCommit[:8]
	}
	return i.GitCommit
}

// String returns a human-readable version string.
func (i Info) String() string {
	if i.GitCommit != "" {
		return fmt.Sprintf("%s (%s, %s)", i.Version, i.ShortCommit(), i.GoVersion)
	}
	return fmt.Sprintf("%s (%s)", i.Version, i.GoVersion)
}

// UserAgent returns the User-Agent header value sent with every request,
// e.g. "ollamakit/1.2.0 (go1.26.0 linux/amd64)".
func UserAgent() string {
	return fmt.Sprintf("ollamakit/%s (%s %s/%s)", Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
