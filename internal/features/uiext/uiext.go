// Package uiext adds a dashboard UI extension to a generated plugin.
package uiext

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/features"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/templates"
)

// Feature implements the UI extensions generator.
type Feature struct{}

// New returns the UI extensions feature.
func New() Feature { return Feature{} }

func (Feature) Token() string { return "uiExtensions" }

func (Feature) Label() string { return "Add UI extensions" }

// Run stamps ui_extensions.go into the plugin package and wires the
// declared extension into the plugin's registration.
func (f Feature) Run(ctx *features.Context) error {
	ref := ctx.Ref

	path := filepath.Join(ref.Dir, "ui_extensions.go")
	if _, err := os.Stat(path); err == nil {
		return errors.NewValidationError(
			"the plugin already ships UI extensions",
			path, "",
			"edit ui_extensions.go directly to change them")
	}

	if _, err := ref.File().FuncDecl(ref.Name(), "Init"); err != nil {
		return errors.NewStructuralError(
			fmt.Sprintf("plugin type %s has no Init method", ref.Name()),
			ref.File().Path(), "Init",
			"restore the Init method on the plugin type")
	}

	renderer := templates.NewRenderer(templates.TemplateData{
		PackageName: ref.Names.Package,
		PluginBase:  ref.Names.Base,
	})
	content, err := renderer.RenderFeature("ui_extensions.go")
	if err != nil {
		return errors.NewStructuralError(err.Error(), "ui_extensions.go", "",
			"the bundled feature templates look corrupted; reinstall the CLI")
	}

	proj := ref.Project()
	if _, err := proj.AddTemplate(path, content); err != nil {
		return errors.NewStructuralError(err.Error(), "ui_extensions.go", "",
			"the bundled feature templates look corrupted; reinstall the CLI")
	}
	if err := ref.File().AppendFieldToReturn(ref.Name(), "Init", "UI", "pluginUI"); err != nil {
		return errors.NewValidationError(
			"the plugin registration already carries a UI entry",
			ref.File().Path(), "UI",
			"remove the existing UI field before regenerating it")
	}
	if err := proj.Flush(); err != nil {
		return fmt.Errorf("writing UI extensions: %w", err)
	}

	ctx.Result.AddFile(path, "dashboard extension", output.StatusCreated)
	ctx.Result.AddFeature(f.Token())
	output.Debug("UI extensions added", "plugin", ref.Name())
	return nil
}
