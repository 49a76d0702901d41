// Package manifest reads and validates the trellis.yaml project manifest.
// The manifest marks a project root and pins the framework release the
// project is built against.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Filename is the manifest file name that marks a project root.
const Filename = "trellis.yaml"

// DefaultConfigPath is where the application config lives relative to the
// project root unless the manifest says otherwise.
const DefaultConfigPath = "src/app/config.go"

// ErrNoManifest is returned when no manifest can be found for a directory.
var ErrNoManifest = errors.New("no project manifest found")

// Manifest is the parsed trellis.yaml.
type Manifest struct {
	// Name is the project name.
	Name string `yaml:"name" json:"name"`

	// Version is the project's own version.
	Version string `yaml:"version,omitempty" json:"version,omitempty"`

	// Trellis is the framework release the project targets.
	Trellis string `yaml:"trellis" json:"trellis"`

	// Config overrides the application config file location, relative to
	// the project root.
	Config string `yaml:"config,omitempty" json:"config,omitempty"`
}

// ConfigPath returns the application config location relative to the
// project root.
func (m *Manifest) ConfigPath() string {
	if m.Config != "" {
		return m.Config
	}
	return DefaultConfigPath
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return &m, nil
}

// LoadDir loads the manifest directly under dir.
func LoadDir(dir string) (*Manifest, error) {
	return Load(filepath.Join(dir, Filename))
}

// ExistsIn reports whether a manifest file is present directly under dir.
func ExistsIn(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, Filename))
	return err == nil && !info.IsDir()
}

// FindRoot walks up from start looking for a manifest file and returns the
// directory holding it. Returns ErrNoManifest when the filesystem root is
// reached without finding one.
func FindRoot(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if ExistsIn(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("walking up from %s: %w", start, ErrNoManifest)
		}
		dir = parent
	}
}
