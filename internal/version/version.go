// Package version provides version information for the trellis CLI.
package version

import (
	"fmt"
	"runtime"
)

// Build-time variables set via ldflags.
var (
	// Version is the CLI version (set via ldflags).
	Version = "v0.0.0-dev"

	// GitCommit is the git commit hash.
	GitCommit = "unknown"

	// BuildDate is the build timestamp.
	BuildDate = "unknown"
)

// Info contains version information.
type Info struct {
	// Version is the CLI version (set via ldflags).
	Version string `json:"version"`

	// GitCommit is the git commit hash.
	GitCommit string `json:"gitCommit"`

	// BuildDate is the build timestamp.
	BuildDate string `json:"buildDate"`

	// GoVersion is the Go version used to build.
	GoVersion string `json:"goVersion"`

	// FrameworkConstraint is the trellis framework version range this CLI
	// generates code for.
	FrameworkConstraint string `json:"frameworkConstraint"`
}

// GetInfo returns the current version information.
func GetInfo() Info {
	return Info{
		Version:             Version,
		GitCommit:           GitCommit,
		BuildDate:           BuildDate,
		GoVersion:           runtime.Version(),
		FrameworkConstraint: FrameworkConstraint,
	}
}

// String returns a human-readable version string.
func (i Info) String() string {
	return fmt.Sprintf("trellis CLI:\n  Version:  %s\n  Build ID: %s/%s\n\ntrellis framework:\n  Supported: %s",
		i.Version, i.BuildDate, i.GitCommit, i.FrameworkConstraint)
}
