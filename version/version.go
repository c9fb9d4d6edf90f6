package version

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/lyraproj/semver/semver"
)

// ModulePath is the import path looked up in the build info.
const ModulePath = "github.com/kbukum/seqkit"

var (
	// These variables are set at build time using -ldflags
	Version   = "dev"
	GitCommit = ""
)

// Info represents version information.
type Info struct {
	Module    string `json:"module"`
	Version   string `json:"version"`
	GitCommit string `json:"git_commit,omitempty"`
	GoVersion string `json:"go_version,omitempty"`
	// Main is true when seqkit is the main module of the running binary.
	Main      bool `json:"main"`
	IsRelease bool `json:"is_release"`
	IsDirty   bool `json:"is_dirty"`
}

// Get returns the version of the seqkit module linked into the program.
func Get() Info {
	bi, ok := debug.ReadBuildInfo()
	return fromBuildInfo(bi, ok)
}

func fromBuildInfo(bi *debug.BuildInfo, ok bool) Info {
	info := Info{
		Module:    ModulePath,
		Version:   Version,
		GitCommit: GitCommit,
	}
	if ok && bi != nil {
		info.GoVersion = bi.GoVersion
		if mod := findModule(bi); mod != nil {
			info.Main = mod == &bi.Main
			if Version == "dev" && mod.Version != "" && mod.Version != "(devel)" {
				info.Version = mod.Version
			}
		}
		if info.Main {
			for _, setting := range bi.Settings {
				switch setting.Key {
				case "vcs.revision":
					if info.GitCommit == "" {
						info.GitCommit = setting.Value
						if len(info.GitCommit) > 7 {
							info.GitCommit = info.GitCommit[:7]
						}
					}
				case "vcs.modified":
					info.IsDirty = setting.Value == "true"
				}
			}
		}
	}
	info.IsRelease = !info.IsDirty && isStable(info.Version)
	return info
}

// isStable reports whether v is a semantic version without a pre-release
// part. Go pseudo-versions carry one, so they never count as releases.
func isStable(v string) bool {
	sv, err := semver.ParseVersion(strings.TrimPrefix(v, "v"))
	return err == nil && sv.IsStable()
}

// AtLeast reports whether i is a semantic version at or above min.
// Development builds report false.
func (i Info) AtLeast(min string) (bool, error) {
	want, err := semver.ParseVersion(strings.TrimPrefix(min, "v"))
	if err != nil {
		return false, err
	}
	have, err := semver.ParseVersion(strings.TrimPrefix(i.Version, "v"))
	if err != nil {
		return false, nil
	}
	return have.CompareTo(want) >= 0, nil
}

// findModule returns the seqkit entry of bi, following replace directives.
func findModule(bi *debug.BuildInfo) *debug.Module {
	if bi.Main.Path == ModulePath {
		return &bi.Main
	}
	for _, dep := range bi.Deps {
		if dep == nil || dep.Path != ModulePath {
			continue
		}
		if dep.Replace != nil && dep.Replace.Version != "" {
			return dep.Replace
		}
		return dep
	}
	return nil
}

// Short returns a compact version string, e.g. "v1.2.0" or "dev-abc1234".
func Short() string {
	return Get().Short()
}

// Short returns a compact version string for i.
func (i Info) Short() string {
	if i.Version == "dev" && i.GitCommit != "" {
		return i.Version + "-" + i.GitCommit
	}
	return i.Version
}

// String returns a human-readable description, e.g. "seqkit v1.2.0 (abc1234, go1.26.0)".
func (i Info) String() string {
	s := "seqkit " + i.Short()
	var extra []string
	if i.GitCommit != "" && i.Version != "dev" {
		extra = append(extra, i.GitCommit)
	}
	if i.IsDirty {
		extra = append(extra, "dirty")
	}
	if i.GoVersion != "" {
		extra = append(extra, i.GoVersion)
	}
	if len(extra) > 0 {
		s += fmt.Sprintf(" (%s)", strings.Join(extra, ", "))
	}
	return s
}
