package handler

import (
	"net/http"
	"os"
	"runtime"
	"runtime/debug"
	"sync"
)

// VersionInfo describes the running build
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Set with -ldflags "-X .../internal/handler.Version=..."; unset values
// fall back to the VCS stamp the toolchain embeds.
var (
	Version   = ""
	BuildTime = ""
	GitCommit = ""
)

var buildInfo = sync.OnceValue(resolveVersionInfo)

// HandleVersion reports the build the server was compiled from
// @Summary Build version
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, buildInfo())
	}
}

func resolveVersionInfo() VersionInfo {
	info := VersionInfo{
		Version:   firstNonEmpty(Version, os.Getenv("VERSION"), "dev"),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.GitCommit = firstNonEmpty(info.GitCommit, s.Value)
		case "vcs.time":
			info.BuildTime = firstNonEmpty(info.BuildTime, s.Value)
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
