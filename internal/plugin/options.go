package plugin

import (
	"fmt"
	"os"

	"github.com/trelliskit/cli/internal/errors"
)

// GenerateOptions are the inputs collected before generation starts.
type GenerateOptions struct {
	// Name is the raw plugin name as supplied by the user.
	Name string
	// CustomEntityName seeds the entity feature's name prompt when set.
	CustomEntityName string
	// PluginDir is the directory the generated files land in. It must not
	// exist yet.
	PluginDir string
}

// Validate checks the collected inputs. Failures are validation errors that
// interactive callers recover from by re-prompting.
func (o GenerateOptions) Validate() error {
	if !ValidName(o.Name) {
		return errors.NewValidationError(
			fmt.Sprintf("plugin name %q is not valid", o.Name),
			"", "name",
			"use lowercase letters, digits and dashes, starting with a letter, e.g. \"reviews\"")
	}
	if Normalize(o.Name) == "" {
		return errors.NewValidationError(
			fmt.Sprintf("plugin name %q must contain more than the plugin suffix", o.Name),
			"", "name",
			"name the plugin after what it does, e.g. \"reviews\"")
	}
	if o.PluginDir != "" {
		if _, err := os.Stat(o.PluginDir); err == nil {
			return errors.NewValidationError(
				fmt.Sprintf("directory %s already exists", o.PluginDir),
				o.PluginDir, "directory",
				"choose a target directory that does not exist yet")
		}
	}
	return nil
}
