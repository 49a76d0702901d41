// Package service adds a service with its provider registration to a
// generated plugin.
package service

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trelliskit/cli/internal/casing"
	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/features"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/templates"
)

// Feature implements the service generator.
type Feature struct{}

// New returns the service feature.
func New() Feature { return Feature{} }

func (Feature) Token() string { return "service" }

func (Feature) Label() string { return "Add a service" }

// Run prompts for a service name, stamps service_<name>.go into the plugin
// package and appends a provider entry to the plugin's service list.
func (f Feature) Run(ctx *features.Context) error {
	ref := ctx.Ref

	name, err := features.AskName(features.NameRequest{
		Label:   "Service name",
		Default: casing.Pascal(ref.Names.Base) + "Service",
		Taken: func(s string) error {
			typeName, path := typeAndPath(ref.Dir, s)
			if typeName == "" {
				return errors.NewValidationError(
					fmt.Sprintf("service name %q must contain more than the Service suffix", s),
					"", "name",
					`name the service after what it does, e.g. "Review"`)
			}
			if _, err := os.Stat(path); err == nil {
				return errors.NewValidationError(
					fmt.Sprintf("%s already exists", filepath.Base(path)),
					path, "name",
					"pick a different service name")
			}
			return nil
		},
	})
	if err != nil {
		return err
	}

	typeName, path := typeAndPath(ref.Dir, name)

	renderer := templates.NewRenderer(templates.TemplateData{
		PackageName: ref.Names.Package,
		ServiceType: typeName,
	})
	content, err := renderer.RenderFeature("service.go")
	if err != nil {
		return templateError(err)
	}

	proj := ref.Project()
	if _, err := proj.AddTemplate(path, content); err != nil {
		return templateError(err)
	}
	provide := fmt.Sprintf("trellis.Provide(New%s)", typeName)
	if err := ref.File().AppendToListVar("pluginServices", provide); err != nil {
		return errors.NewStructuralError(
			fmt.Sprintf("plugin file has no pluginServices list: %v", err),
			ref.File().Path(), "pluginServices",
			"restore the pluginServices slice in the plugin file")
	}
	if err := proj.Flush(); err != nil {
		return fmt.Errorf("writing service: %w", err)
	}

	ctx.Result.AddFile(path, "service "+typeName, output.StatusCreated)
	ctx.Result.AddFeature(f.Token())
	output.Debug("service added", "service", typeName, "plugin", ref.Name())
	return nil
}

// typeAndPath derives the service type name and target file from a raw
// name. One trailing Service suffix collapses, so "ReviewService" and
// "review" agree on ReviewService in service_review.go. A name that is
// nothing but the suffix yields an empty type name.
func typeAndPath(dir, name string) (string, string) {
	base := strings.TrimSuffix(casing.Pascal(name), "Service")
	if base == "" {
		return "", ""
	}
	return base + "Service", filepath.Join(dir, "service_"+features.Snake(base)+".go")
}

func templateError(err error) error {
	return errors.NewStructuralError(err.Error(), "service.go", "",
		"the bundled feature templates look corrupted; reinstall the CLI")
}
