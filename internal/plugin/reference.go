package plugin

import (
	"go/ast"

	"github.com/trelliskit/cli/internal/source"
)

// Reference is the handle to a generated plugin that the config patch and
// every feature generator receive. It wraps the plugin's type declaration
// inside its source file, so the name it reports is always the one actually
// declared.
type Reference struct {
	// Names carries every derived spelling of the plugin name.
	Names NameContext
	// Dir is the plugin's directory on disk.
	Dir string
	// ImportPath is the Go import path of the generated package.
	ImportPath string

	project *source.Project
	file    *source.File
	decl    *ast.TypeSpec
}

// NewReference wraps the plugin type declaration in the given file. The
// declaration must exist; generation is expected to have renamed it before
// the reference is taken.
func NewReference(names NameContext, dir, importPath string, project *source.Project, file *source.File) (*Reference, error) {
	decl, err := file.TypeDecl(names.Pascal)
	if err != nil {
		return nil, err
	}
	return &Reference{
		Names:      names,
		Dir:        dir,
		ImportPath: importPath,
		project:    project,
		file:       file,
		decl:       decl,
	}, nil
}

// Name returns the declared plugin type name.
func (r *Reference) Name() string {
	return r.decl.Name.Name
}

// File returns the plugin definition source file.
func (r *Reference) File() *source.File {
	return r.file
}

// Project returns the source model the plugin file belongs to. Feature
// generators stage their additions through it so a whole feature persists
// in one flush.
func (r *Reference) Project() *source.Project {
	return r.project
}
