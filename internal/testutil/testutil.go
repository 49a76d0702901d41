// Package testutil provides shared helpers for CLI tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ProjectConfig is the application config NewProject lays down.
const ProjectConfig = `package app

import "github.com/trelliskit/trellis"

var Config = trellis.Config{
	Name:    "shop",
	Plugins: trellis.Plugins{},
}
`

// NewProject lays out a minimal trellis project in a fresh temp dir:
// manifest, go.mod and the application config at the conventional path.
// It returns the project root.
func NewProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	WriteFile(t, root, "trellis.yaml", "name: shop\nversion: 0.1.0\ntrellis: 2.1.0\n")
	WriteFile(t, root, "go.mod", "module example.com/shop\n\ngo 1.24\n")
	WriteFile(t, root, filepath.Join("src", "app", "config.go"), ProjectConfig)
	return root
}

// WriteFile creates a file (and its parent directories) under dir and
// returns its path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create parent dirs for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path, failing the test when it cannot
// be read.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}
	return string(data)
}
