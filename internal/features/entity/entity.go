// Package entity adds a custom entity to a generated plugin.
package entity

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/trelliskit/cli/internal/casing"
	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/features"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/templates"
)

// Feature implements the entity generator.
type Feature struct{}

// New returns the entity feature.
func New() Feature { return Feature{} }

func (Feature) Token() string { return "entity" }

func (Feature) Label() string { return "Add a custom entity" }

// Run prompts for an entity name, stamps entity_<name>.go into the plugin
// package and appends the entity to the plugin's entity list.
func (f Feature) Run(ctx *features.Context) error {
	ref := ctx.Ref

	name, err := features.AskName(features.NameRequest{
		Label:   "Entity name",
		Default: defaultName(ctx),
		Taken: func(s string) error {
			path := targetPath(ref.Dir, s)
			if _, err := os.Stat(path); err == nil {
				return errors.NewValidationError(
					fmt.Sprintf("%s already exists", filepath.Base(path)),
					path, "name",
					"pick a different entity name")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	typeName := casing.Pascal(name)
	path := targetPath(ref.Dir, name)

	renderer := templates.NewRenderer(templates.TemplateData{
		PackageName: ref.Names.Package,
		EntityType:  typeName,
	})
	content, err := renderer.RenderFeature("entity.go")
	if err != nil {
		return templateError(err)
	}

	proj := ref.Project()
	if _, err := proj.AddTemplate(path, content); err != nil {
		return templateError(err)
	}
	if err := ref.File().AppendToListVar("pluginEntities", typeName+"{}"); err != nil {
		return errors.NewStructuralError(
			fmt.Sprintf("plugin file has no pluginEntities list: %v", err),
			ref.File().Path(), "pluginEntities",
			"restore the pluginEntities slice in the plugin file")
	}
	if err := proj.Flush(); err != nil {
		return fmt.Errorf("writing entity: %w", err)
	}

	ctx.Result.AddFile(path, "entity "+typeName, output.StatusCreated)
	ctx.Result.AddFeature(f.Token())
	output.Debug("entity added", "entity", typeName, "plugin", ref.Name())
	return nil
}

func defaultName(ctx *features.Context) string {
	if ctx.EntityNameSeed != "" {
		return casing.Pascal(ctx.EntityNameSeed)
	}
	return casing.Pascal(ctx.Ref.Names.Base)
}

func targetPath(dir, name string) string {
	return filepath.Join(dir, "entity_"+features.Snake(name)+".go")
}

func templateError(err error) error {
	return errors.NewStructuralError(err.Error(), "entity.go", "",
		"the bundled feature templates look corrupted; reinstall the CLI")
}
