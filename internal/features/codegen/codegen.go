// Package codegen writes the framework code generator's config file into a
// generated plugin.
package codegen

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/features"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/prompt"
	"github.com/trelliskit/cli/internal/templates"
)

// Feature implements the codegen config generator.
type Feature struct{}

// New returns the codegen feature.
func New() Feature { return Feature{} }

func (Feature) Token() string { return "codegen" }

func (Feature) Label() string { return "Set up code generation" }

// Run writes codegen.yaml into the plugin directory. When the file already
// exists and differs, a YAML-aware diff is shown and the user decides
// whether to overwrite.
func (f Feature) Run(ctx *features.Context) error {
	ref := ctx.Ref

	renderer := templates.NewRenderer(templates.TemplateData{
		PackageName: ref.Names.Package,
		PluginBase:  ref.Names.Base,
	})
	proposed, err := renderer.RenderFeature("codegen.yaml")
	if err != nil {
		return errors.NewStructuralError(err.Error(), "codegen.yaml", "",
			"the bundled feature templates look corrupted; reinstall the CLI")
	}

	path := filepath.Join(ref.Dir, "codegen.yaml")
	current, err := os.ReadFile(path)
	if err == nil {
		return f.replaceExisting(ctx, path, current, proposed)
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	return f.write(ctx, path, proposed, output.StatusCreated)
}

func (f Feature) replaceExisting(ctx *features.Context, path string, current, proposed []byte) error {
	if bytes.Equal(current, proposed) {
		output.Info("codegen config is already up to date", "path", path)
		ctx.Result.AddFile(path, "codegen config", output.StatusUnchanged)
		return nil
	}

	diff, err := output.DiffYAML("current", "proposed", current, proposed, output.IsTTY())
	switch {
	case err != nil:
		output.Warn("cannot diff existing codegen config", "path", path, "err", err)
	case diff == "":
		output.Info("codegen config differs only in formatting", "path", path)
	default:
		output.Print(output.IndentDiff(diff, "  "))
	}

	choice, err := prompt.Select("codegen.yaml already exists. Overwrite?", []prompt.SelectOption{
		{Label: "Keep the current file", Value: "keep"},
		{Label: "Overwrite with the generated config", Value: "overwrite"},
	})
	if err != nil {
		// Without a terminal an existing file is never overwritten.
		if stderrors.Is(err, prompt.ErrNonInteractive) {
			choice = "keep"
		} else {
			return err
		}
	}

	if choice == "keep" {
		output.Info("keeping existing codegen config", "path", path)
		ctx.Result.AddFile(path, "codegen config", output.StatusSkipped)
		return nil
	}
	return f.write(ctx, path, proposed, output.StatusPatched)
}

func (f Feature) write(ctx *features.Context, path string, content []byte, status string) error {
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	ctx.Result.AddFile(path, "codegen config", status)
	ctx.Result.AddFeature(f.Token())
	output.Debug("codegen config written", "path", path)
	return nil
}
