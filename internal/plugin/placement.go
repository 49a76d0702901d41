package plugin

import (
	"os"
	"path/filepath"

	"github.com/trelliskit/cli/internal/manifest"
)

// DefaultDir computes the suggested target directory for a plugin. The
// suggestion is editable at the prompt; only the chosen path is validated.
//
// Inside a directory named "plugins" the plugin lands directly there. At a
// project root, identified by its manifest file, it lands under
// src/plugins. Anywhere else it lands in the working directory.
func DefaultDir(cwd string, ctx NameContext) string {
	if filepath.Base(cwd) == "plugins" {
		return filepath.Join(cwd, ctx.Base)
	}
	if _, err := os.Stat(filepath.Join(cwd, manifest.Filename)); err == nil {
		return filepath.Join(cwd, "src", "plugins", ctx.Base)
	}
	return filepath.Join(cwd, ctx.Base)
}
