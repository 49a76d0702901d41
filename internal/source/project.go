// Package source maintains an in-memory model of Go source files as parsed
// syntax trees. Files are loaded or staged, mutated through typed operations,
// and persisted in a single flush so a failing edit never leaves a partial
// write on disk.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/printer"
	"go/token"
	"os"
	"path/filepath"
)

// ErrDeclarationNotFound is returned when a named declaration is absent from
// a file. Callers decide whether that is fatal.
var ErrDeclarationNotFound = errors.New("declaration not found")

// Project owns a set of source files for the duration of one command
// invocation. It is not safe for concurrent use and is never shared.
type Project struct {
	fset  *token.FileSet
	files []*File
}

// NewProject creates an empty project.
func NewProject() *Project {
	return &Project{fset: token.NewFileSet()}
}

// Load parses an on-disk file into the project.
func (p *Project) Load(path string) (*File, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return p.add(path, src, false)
}

// AddTemplate parses template bytes into the project at a staging path. The
// file is marked dirty so it is written out on the next flush.
func (p *Project) AddTemplate(path string, src []byte) (*File, error) {
	return p.add(path, src, true)
}

func (p *Project) add(path string, src []byte, dirty bool) (*File, error) {
	parsed, err := parser.ParseFile(p.fset, path, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	f := &File{
		path:    path,
		ast:     parsed,
		project: p,
		dirty:   dirty,
	}
	p.files = append(p.files, f)
	return f, nil
}

// File returns the project file at the given path.
func (p *Project) File(path string) (*File, bool) {
	for _, f := range p.files {
		if f.path == path {
			return f, true
		}
	}
	return nil, false
}

// Files returns all files held by the project.
func (p *Project) Files() []*File {
	return p.files
}

// RenameIdent renames every identifier with the given name across all files
// in the project and returns the number of occurrences changed. Template
// placeholder names are unique within their file set, so a plain name match
// is sufficient.
func (p *Project) RenameIdent(oldName, newName string) int {
	count := 0
	for _, f := range p.files {
		n := f.renameIdent(oldName, newName)
		if n > 0 {
			f.dirty = true
			count += n
		}
	}
	return count
}

// Flush persists every dirty file. All files are rendered in memory first,
// so a render failure aborts before anything reaches disk.
func (p *Project) Flush() error {
	type pending struct {
		path    string
		content []byte
	}

	var writes []pending
	for _, f := range p.files {
		if !f.dirty {
			continue
		}
		content, err := f.render()
		if err != nil {
			return fmt.Errorf("rendering %s: %w", f.path, err)
		}
		writes = append(writes, pending{path: f.path, content: content})
	}

	for _, w := range writes {
		if err := os.MkdirAll(filepath.Dir(w.path), 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", w.path, err)
		}
		if err := os.WriteFile(w.path, w.content, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", w.path, err)
		}
	}

	for _, f := range p.files {
		f.dirty = false
	}
	return nil
}

// ExprString renders a single expression back to source text.
func (p *Project) ExprString(expr ast.Expr) string {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, p.fset, expr); err != nil {
		return ""
	}
	return buf.String()
}

// render pretty-prints the syntax tree and normalizes it through gofmt.
func (f *File) render() ([]byte, error) {
	var buf bytes.Buffer
	if err := printer.Fprint(&buf, f.project.fset, f.ast); err != nil {
		return nil, err
	}
	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

// parseExpr parses a single expression used as an injected initializer or
// list element.
func parseExpr(src string) (ast.Expr, error) {
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return nil, fmt.Errorf("parsing expression %q: %w", src, err)
	}
	return expr, nil
}
