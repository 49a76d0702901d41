package scaffold

import (
	"fmt"
	"go/ast"
	"path/filepath"

	"github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/manifest"
	"github.com/trelliskit/cli/internal/source"
)

// Registration is one entry of the application config's Plugins list.
type Registration struct {
	// Plugin is the plugin type name, e.g. "ReviewsPlugin".
	Plugin string `json:"plugin"`
	// Package is the package identifier the entry references the plugin
	// through, e.g. "reviews".
	Package string `json:"package"`
	// ImportPath is the plugin package's import path, empty when the
	// identifier cannot be resolved against the config file's imports.
	ImportPath string `json:"importPath,omitempty"`
	// Expr is the registration expression as written in the config.
	Expr string `json:"expr"`
}

// ListRegistrations reads the application config of the project enclosing
// startDir and returns its plugin registrations in declaration order,
// along with the config file's path.
func ListRegistrations(startDir string) (string, []Registration, error) {
	root, err := manifest.FindRoot(startDir)
	if err != nil {
		return "", nil, errors.NewStructuralError(
			fmt.Sprintf("no %s found above the working directory", manifest.Filename),
			startDir, "",
			"run inside a trellis project")
	}

	m, err := manifest.LoadDir(root)
	if err != nil {
		return "", nil, errors.NewStructuralError(
			fmt.Sprintf("reading project manifest: %v", err),
			filepath.Join(root, manifest.Filename), "",
			"fix the manifest before listing plugins")
	}

	configPath := filepath.Join(root, m.ConfigPath())
	proj := source.NewProject()
	file, err := proj.Load(configPath)
	if err != nil {
		return "", nil, errors.NewStructuralError(
			fmt.Sprintf("reading application config: %v", err),
			configPath, "",
			"the project's application config could not be parsed")
	}

	entries, err := file.ListField("Config", "Plugins")
	if err != nil {
		return "", nil, errors.NewStructuralError(
			fmt.Sprintf("application config has no trellis.Config with a Plugins list: %v", err),
			configPath, "Plugins",
			"declare `var Config = trellis.Config{Plugins: trellis.Plugins{}}` in the config file")
	}

	regs := make([]Registration, 0, len(entries))
	for _, entry := range entries {
		reg := Registration{Expr: proj.ExprString(entry)}
		if pkg, typeName, ok := registrationTarget(entry); ok {
			reg.Package = pkg
			reg.Plugin = typeName
			reg.ImportPath, _ = file.ImportPathFor(pkg)
		}
		regs = append(regs, reg)
	}
	return configPath, regs, nil
}

// registrationTarget extracts the package identifier and plugin type name
// from a registration expression. Entries follow the generated shape
// <pkg>.<Type>{}.Init(...); the first composite literal with a qualified
// type that is not the options literal names the plugin.
func registrationTarget(expr ast.Expr) (pkg, typeName string, ok bool) {
	ast.Inspect(expr, func(n ast.Node) bool {
		if ok {
			return false
		}
		lit, isLit := n.(*ast.CompositeLit)
		if !isLit {
			return true
		}
		sel, isSel := lit.Type.(*ast.SelectorExpr)
		if !isSel {
			return true
		}
		if ident, isIdent := sel.X.(*ast.Ident); isIdent && sel.Sel.Name != "InitOptions" {
			pkg, typeName, ok = ident.Name, sel.Sel.Name, true
			return false
		}
		return true
	})
	return pkg, typeName, ok
}
