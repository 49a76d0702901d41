package source

import (
	"fmt"
	"go/ast"
	"go/token"
	"path"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"
)

// File is one Go source file held by a Project. Mutations mark the file
// dirty; nothing reaches disk until the project flushes.
type File struct {
	path    string
	ast     *ast.File
	project *Project
	dirty   bool
}

// Path returns the path the file will be written to.
func (f *File) Path() string {
	return f.path
}

// MoveTo changes the output path without touching the tree.
func (f *File) MoveTo(path string) {
	if f.path == path {
		return
	}
	f.path = path
	f.dirty = true
}

// PackageName returns the file's package clause name.
func (f *File) PackageName() string {
	return f.ast.Name.Name
}

// SetPackageName rewrites the package clause.
func (f *File) SetPackageName(name string) {
	if f.ast.Name.Name == name {
		return
	}
	f.ast.Name.Name = name
	f.dirty = true
}

// TypeDecl locates a type declaration by name.
func (f *File) TypeDecl(name string) (*ast.TypeSpec, error) {
	for _, decl := range f.ast.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.TYPE {
			continue
		}
		for _, spec := range gen.Specs {
			ts, ok := spec.(*ast.TypeSpec)
			if ok && ts.Name.Name == name {
				return ts, nil
			}
		}
	}
	return nil, fmt.Errorf("type %s in %s: %w", name, f.path, ErrDeclarationNotFound)
}

// ValueDecl locates a var or const declaration by name.
func (f *File) ValueDecl(name string) (*ast.ValueSpec, error) {
	for _, decl := range f.ast.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || (gen.Tok != token.VAR && gen.Tok != token.CONST) {
			continue
		}
		for _, spec := range gen.Specs {
			vs, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}
			for _, ident := range vs.Names {
				if ident.Name == name {
					return vs, nil
				}
			}
		}
	}
	return nil, fmt.Errorf("value %s in %s: %w", name, f.path, ErrDeclarationNotFound)
}

// SetInitializer replaces the initializer of a single-name var or const with
// the given expression.
func (f *File) SetInitializer(name, exprSrc string) error {
	vs, err := f.ValueDecl(name)
	if err != nil {
		return err
	}
	expr, err := parseExpr(exprSrc)
	if err != nil {
		return err
	}
	if len(vs.Values) == 0 {
		vs.Values = []ast.Expr{expr}
	} else {
		vs.Values[0] = expr
	}
	f.dirty = true
	return nil
}

// SetStringValue replaces the initializer of a var or const with a quoted
// string literal.
func (f *File) SetStringValue(name, value string) error {
	return f.SetInitializer(name, strconv.Quote(value))
}

// AddImport adds an import for the given path, aliased when alias is
// non-empty. Adding an import that is already present is a no-op.
func (f *File) AddImport(path, alias string) {
	if astutil.AddNamedImport(f.project.fset, f.ast, alias, path) {
		f.dirty = true
	}
}

// HasImport reports whether the file already imports the given path.
func (f *File) HasImport(path string) bool {
	for _, imp := range f.ast.Imports {
		if p, err := strconv.Unquote(imp.Path.Value); err == nil && p == path {
			return true
		}
	}
	return false
}

// ImportPathFor resolves a package identifier to the import path it names
// in this file. An alias wins over the path's final segment; an aliased
// import never matches by segment.
func (f *File) ImportPathFor(ident string) (string, bool) {
	for _, imp := range f.ast.Imports {
		p, err := strconv.Unquote(imp.Path.Value)
		if err != nil {
			continue
		}
		if imp.Name != nil {
			if imp.Name.Name == ident {
				return p, true
			}
			continue
		}
		if path.Base(p) == ident {
			return p, true
		}
	}
	return "", false
}

// AppendToListVar appends an element to the composite literal initializing
// the named var.
func (f *File) AppendToListVar(varName, exprSrc string) error {
	vs, err := f.ValueDecl(varName)
	if err != nil {
		return err
	}
	if len(vs.Values) == 0 {
		return fmt.Errorf("var %s in %s has no initializer", varName, f.path)
	}
	lit, ok := vs.Values[0].(*ast.CompositeLit)
	if !ok {
		return fmt.Errorf("var %s in %s is not initialized with a composite literal", varName, f.path)
	}
	return f.appendElement(lit, exprSrc)
}

// AppendToListField appends an element to the composite literal held in a
// named field of the var's composite literal initializer. This is how a
// plugin registration lands in the config's plugin list.
func (f *File) AppendToListField(varName, fieldName, exprSrc string) error {
	lit, err := f.fieldLiteral(varName, fieldName)
	if err != nil {
		return err
	}
	return f.appendElement(lit, exprSrc)
}

// ListField returns the elements of the composite literal held in a named
// field of the var's initializer. The slice aliases the tree; callers must
// not mutate it.
func (f *File) ListField(varName, fieldName string) ([]ast.Expr, error) {
	lit, err := f.fieldLiteral(varName, fieldName)
	if err != nil {
		return nil, err
	}
	return lit.Elts, nil
}

// fieldLiteral digs the composite literal out of a named field of the
// var's composite literal initializer.
func (f *File) fieldLiteral(varName, fieldName string) (*ast.CompositeLit, error) {
	vs, err := f.ValueDecl(varName)
	if err != nil {
		return nil, err
	}
	if len(vs.Values) == 0 {
		return nil, fmt.Errorf("var %s in %s has no initializer", varName, f.path)
	}
	outer, ok := vs.Values[0].(*ast.CompositeLit)
	if !ok {
		return nil, fmt.Errorf("var %s in %s is not initialized with a composite literal", varName, f.path)
	}
	for _, elt := range outer.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		key, ok := kv.Key.(*ast.Ident)
		if !ok || key.Name != fieldName {
			continue
		}
		inner, ok := kv.Value.(*ast.CompositeLit)
		if !ok {
			return nil, fmt.Errorf("field %s of %s in %s is not a composite literal", fieldName, varName, f.path)
		}
		return inner, nil
	}
	return nil, fmt.Errorf("field %s of %s in %s: %w", fieldName, varName, f.path, ErrDeclarationNotFound)
}

// AppendFieldToReturn adds a key/value field to the composite literal
// returned by a method. recvType selects the receiver type, which may be
// empty for plain functions.
func (f *File) AppendFieldToReturn(recvType, funcName, key, exprSrc string) error {
	fn, err := f.FuncDecl(recvType, funcName)
	if err != nil {
		return err
	}
	lit, err := returnLiteral(fn)
	if err != nil {
		return fmt.Errorf("%s in %s: %w", funcName, f.path, err)
	}
	for _, elt := range lit.Elts {
		kv, ok := elt.(*ast.KeyValueExpr)
		if !ok {
			continue
		}
		if ident, ok := kv.Key.(*ast.Ident); ok && ident.Name == key {
			return fmt.Errorf("%s in %s already has field %s", funcName, f.path, key)
		}
	}
	expr, err := parseExpr(exprSrc)
	if err != nil {
		return err
	}
	lit.Elts = append(lit.Elts, &ast.KeyValueExpr{
		Key:   ast.NewIdent(key),
		Value: expr,
	})
	f.dirty = true
	return nil
}

// FuncDecl locates a function or method declaration. recvType selects the
// receiver type and may be empty for plain functions.
func (f *File) FuncDecl(recvType, name string) (*ast.FuncDecl, error) {
	for _, decl := range f.ast.Decls {
		fn, ok := decl.(*ast.FuncDecl)
		if !ok || fn.Name.Name != name {
			continue
		}
		if receiverType(fn) == recvType {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("func %s in %s: %w", name, f.path, ErrDeclarationNotFound)
}

func (f *File) appendElement(lit *ast.CompositeLit, exprSrc string) error {
	expr, err := parseExpr(exprSrc)
	if err != nil {
		return err
	}
	lit.Elts = append(lit.Elts, expr)
	f.dirty = true
	return nil
}

func (f *File) renameIdent(oldName, newName string) int {
	count := 0
	ast.Inspect(f.ast, func(n ast.Node) bool {
		if ident, ok := n.(*ast.Ident); ok && ident.Name == oldName {
			ident.Name = newName
			count++
		}
		return true
	})
	return count
}

func receiverType(fn *ast.FuncDecl) string {
	if fn.Recv == nil || len(fn.Recv.List) == 0 {
		return ""
	}
	switch t := fn.Recv.List[0].Type.(type) {
	case *ast.Ident:
		return t.Name
	case *ast.StarExpr:
		if ident, ok := t.X.(*ast.Ident); ok {
			return ident.Name
		}
	}
	return ""
}

// returnLiteral digs the composite literal out of the sole return statement.
func returnLiteral(fn *ast.FuncDecl) (*ast.CompositeLit, error) {
	if fn.Body == nil {
		return nil, fmt.Errorf("function has no body")
	}
	for _, stmt := range fn.Body.List {
		ret, ok := stmt.(*ast.ReturnStmt)
		if !ok || len(ret.Results) == 0 {
			continue
		}
		if lit, ok := ret.Results[0].(*ast.CompositeLit); ok {
			return lit, nil
		}
	}
	return nil, fmt.Errorf("no composite literal return found")
}
