package benchmark

import (
	"runtime"
	"runtime/debug"
	"strings"
)

// Build describes the binary that produced a Run.
type Build struct {
	GoVersion string `json:"go_version"`
	GOOS      string `json:"goos"`
	GOARCH    string `json:"goarch"`
	Compiler  string `json:"compiler"`
	Revision  string `json:"revision,omitempty"`
	Flags     string `json:"flags,omitempty"`
}

var readBuildInfo = debug.ReadBuildInfo

// CurrentBuild reports the toolchain, target and build settings of the
// running binary.
func CurrentBuild() Build {
	b := Build{
		GoVersion: runtime.Version(),
		GOOS:      runtime.GOOS,
		GOARCH:    runtime.GOARCH,
		Compiler:  runtime.Compiler,
	}

	info, ok := readBuildInfo()
	if !ok {
		return b
	}

	var flags []string
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.Revision = s.Value
		case "-gcflags", "-ldflags", "-tags", "-pgo", "CGO_ENABLED", "GOAMD64", "GOARM64":
			if s.Value != "" {
				flags = append(flags, s.Key+"="+s.Value)
			}
		}
	}
	b.Flags = strings.Join(flags, " ")
	return b
}

// String is the one-line form used in report headers.
func (b Build) String() string {
	return b.GoVersion + " " + b.GOOS + "/" + b.GOARCH + " (" + b.Compiler + ")"
}
