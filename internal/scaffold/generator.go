// Package scaffold instantiates the plugin skeleton and registers the
// result in the application config.
package scaffold

import (
	"fmt"
	"path/filepath"

	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/plugin"
	"github.com/trelliskit/cli/internal/source"
	"github.com/trelliskit/cli/internal/templates"
)

// Generate instantiates the plugin skeleton for opts and writes the three
// plugin files into opts.PluginDir. Every transformation happens in memory
// first; nothing lands on disk unless all of them succeed.
func Generate(opts plugin.GenerateOptions) (*plugin.Reference, error) {
	names := plugin.NewNameContext(opts.Name)

	output.Debug("generating plugin",
		"name", names.Kebab,
		"type", names.Pascal,
		"dir", opts.PluginDir)

	proj := source.NewProject()
	staged := make(map[string]*source.File, 3)
	for _, name := range templates.Skeletons() {
		content, err := templates.Skeleton(name)
		if err != nil {
			return nil, structural(fmt.Sprintf("plugin skeleton %s is missing", name), name)
		}
		f, err := proj.AddTemplate(filepath.Join(opts.PluginDir, name), content)
		if err != nil {
			return nil, structural(fmt.Sprintf("plugin skeleton %s does not parse", name), name)
		}
		staged[name] = f
	}

	pluginFile := staged[templates.SkeletonPlugin]
	constFile := staged[templates.SkeletonConstants]

	if _, err := pluginFile.TypeDecl(templates.ScaffoldTypeName); err != nil {
		return nil, structural(
			fmt.Sprintf("plugin skeleton declares no %s type", templates.ScaffoldTypeName),
			templates.SkeletonPlugin)
	}
	proj.RenameIdent(templates.ScaffoldTypeName, names.Pascal)

	if _, err := constFile.ValueDecl(templates.ScaffoldOptionsName); err != nil {
		return nil, structural(
			fmt.Sprintf("plugin skeleton declares no %s variable", templates.ScaffoldOptionsName),
			templates.SkeletonConstants)
	}
	proj.RenameIdent(templates.ScaffoldOptionsName, names.OptionsConst)
	token := fmt.Sprintf("trellis.NewToken(%q)", names.OptionsConst)
	if err := constFile.SetInitializer(names.OptionsConst, token); err != nil {
		return nil, structural(err.Error(), templates.SkeletonConstants)
	}

	if err := constFile.SetStringValue(templates.ScaffoldLoggerCtx, names.Pascal); err != nil {
		return nil, structural(
			fmt.Sprintf("plugin skeleton declares no %s constant", templates.ScaffoldLoggerCtx),
			templates.SkeletonConstants)
	}

	for _, f := range staged {
		f.SetPackageName(names.Package)
	}
	pluginFile.MoveTo(filepath.Join(opts.PluginDir, names.FileBase+"_plugin.go"))

	if err := proj.Flush(); err != nil {
		return nil, fmt.Errorf("writing plugin files: %w", err)
	}

	// A plugin generated outside any Go module has no import path; the
	// config patch rejects the reference then.
	importPath, err := DeriveImportPath(opts.PluginDir)
	if err != nil {
		output.Debug("no import path for plugin", "dir", opts.PluginDir, "err", err)
		importPath = ""
	}

	return plugin.NewReference(names, opts.PluginDir, importPath, proj, pluginFile)
}

func structural(message, location string) error {
	return errors.NewStructuralError(message, location, "",
		"the bundled plugin templates look corrupted or incompatible; reinstall the CLI")
}
