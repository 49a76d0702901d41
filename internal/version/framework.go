package version

import (
	"fmt"

	"github.com/Masterminds/semver/v3"

	"github.com/trelliskit/cli/internal/errors"
)

// FrameworkConstraint is the semver range of trellis framework releases whose
// generated code this CLI understands. Projects outside the range get a
// version error unless the check is skipped.
const FrameworkConstraint = ">= 2.0.0, < 3.0.0"

// FrameworkCompatible reports whether a project's framework version falls
// inside the supported range.
func FrameworkCompatible(projectVersion string) (bool, error) {
	constraint, err := semver.NewConstraint(FrameworkConstraint)
	if err != nil {
		return false, fmt.Errorf("parsing framework constraint: %w", err)
	}

	v, err := semver.NewVersion(projectVersion)
	if err != nil {
		return false, fmt.Errorf("parsing framework version %q: %w", projectVersion, err)
	}

	return constraint.Check(v), nil
}

// CheckFramework validates a project's framework version against the
// supported range. An unparsable or out-of-range version yields a version
// error; the caller decides whether the check is skippable.
func CheckFramework(projectVersion string) error {
	compatible, err := FrameworkCompatible(projectVersion)
	if err != nil {
		return errors.NewVersionError(
			fmt.Sprintf("cannot parse framework version %q", projectVersion),
			map[string]string{"version": projectVersion},
			"set a valid semver version in the trellis field of trellis.yaml")
	}
	if !compatible {
		return errors.NewVersionError(
			fmt.Sprintf("framework version %s is outside the supported range %s", projectVersion, FrameworkConstraint),
			map[string]string{
				"version":   projectVersion,
				"supported": FrameworkConstraint,
			},
			"upgrade the project or use a matching CLI release, or set skipVersionCheck in ~/.trellis/config.yaml")
	}
	return nil
}
