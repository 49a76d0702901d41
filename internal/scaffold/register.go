package scaffold

import (
	"fmt"
	"path"
	"path/filepath"

	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/manifest"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/plugin"
)

// RegisterInConfig appends the plugin's registration expression to the
// application config's Plugins list and imports the plugin package. It
// returns the path of the patched config file.
//
// The plugin files are already on disk at this point; a failure here is
// surfaced as fatal without rolling them back.
func RegisterInConfig(ref *plugin.Reference) (string, error) {
	root, err := manifest.FindRoot(ref.Dir)
	if err != nil {
		return "", errors.NewStructuralError(
			fmt.Sprintf("no %s found above the plugin directory", manifest.Filename),
			ref.Dir, "",
			"generate plugins inside a trellis project so they can be registered")
	}

	m, err := manifest.LoadDir(root)
	if err != nil {
		return "", errors.NewStructuralError(
			fmt.Sprintf("reading project manifest: %v", err),
			filepath.Join(root, manifest.Filename), "",
			"fix the manifest before registering plugins")
	}

	if ref.ImportPath == "" {
		return "", errors.NewStructuralError(
			"plugin package has no import path",
			ref.Dir, "",
			"the plugin directory must live inside a Go module (a go.mod above it)")
	}

	configPath := filepath.Join(root, m.ConfigPath())
	proj := ref.Project()
	file, err := proj.Load(configPath)
	if err != nil {
		return "", errors.NewStructuralError(
			fmt.Sprintf("reading application config: %v", err),
			configPath, "",
			"the project's application config could not be parsed")
	}

	// The import carries an alias when the package name differs from the
	// final path segment (kebab directory names with dashes).
	alias := ""
	if path.Base(ref.ImportPath) != ref.Names.Package {
		alias = ref.Names.Package
	}
	file.AddImport(ref.ImportPath, alias)

	entry := fmt.Sprintf("%s.%s{}.Init(%s.InitOptions{})",
		ref.Names.Package, ref.Name(), ref.Names.Package)
	if err := file.AppendToListField("Config", "Plugins", entry); err != nil {
		return "", errors.NewStructuralError(
			fmt.Sprintf("application config has no trellis.Config with a Plugins list: %v", err),
			configPath, "Plugins",
			"declare `var Config = trellis.Config{Plugins: trellis.Plugins{}}` in the config file")
	}

	if err := proj.Flush(); err != nil {
		return "", fmt.Errorf("writing application config: %w", err)
	}

	output.Debug("registered plugin in config",
		"plugin", ref.Name(),
		"config", configPath,
		"import", ref.ImportPath)
	return configPath, nil
}
