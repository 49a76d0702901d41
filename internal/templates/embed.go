// Package templates provides the embedded plugin skeleton sources and
// feature templates.
package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

//go:embed plugin/*
var pluginFS embed.FS

//go:embed features/*
var featuresFS embed.FS

// Identifiers declared by the plugin skeleton sources. The scaffolder
// locates declarations by these names before renaming or rewriting them;
// a skeleton missing one of them is corrupted.
const (
	ScaffoldTypeName    = "ScaffoldPlugin"
	ScaffoldOptionsName = "SCAFFOLD_PLUGIN_OPTIONS"
	ScaffoldLoggerCtx   = "loggerCtx"
	ScaffoldPackage     = "scaffold"
)

// Logical names of the plugin skeleton sources.
const (
	SkeletonPlugin    = "plugin.go"
	SkeletonTypes     = "types.go"
	SkeletonConstants = "constants.go"
)

// Skeletons returns the logical names of the plugin skeleton sources in
// staging order.
func Skeletons() []string {
	return []string{SkeletonPlugin, SkeletonTypes, SkeletonConstants}
}

// Skeleton returns the raw content of one plugin skeleton source. The
// content is plain Go source, consumed by the parser rather than rendered
// as a template.
func Skeleton(name string) ([]byte, error) {
	content, err := pluginFS.ReadFile("plugin/" + name + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading skeleton %s: %w", name, err)
	}
	return content, nil
}

// Feature returns the raw content of one feature template, identified by
// its target file name (for example "entity.go").
func Feature(name string) ([]byte, error) {
	content, err := featuresFS.ReadFile("features/" + name + ".tmpl")
	if err != nil {
		return nil, fmt.Errorf("reading feature template %s: %w", name, err)
	}
	return content, nil
}

// Features returns the target file names of all feature templates.
func Features() ([]string, error) {
	var files []string

	err := fs.WalkDir(featuresFS, "features", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := strings.TrimPrefix(path, "features/")
		files = append(files, strings.TrimSuffix(name, ".tmpl"))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("listing feature templates: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
