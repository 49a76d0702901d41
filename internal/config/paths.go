package config

import (
	"os"
	"path/filepath"
)

// Paths contains standard filesystem paths for trellis.
type Paths struct {
	// ConfigFile is the path to the config file (~/.trellis/config.yaml).
	ConfigFile string

	// HomeDir is the trellis home directory (~/.trellis).
	HomeDir string
}

// DefaultPaths returns the default paths for trellis.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	trellisHome := filepath.Join(homeDir, ".trellis")

	return &Paths{
		ConfigFile: filepath.Join(trellisHome, "config.yaml"),
		HomeDir:    trellisHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If TRELLIS_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("TRELLIS_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// GetHomeDir returns the trellis home directory path.
func GetHomeDir() (string, error) {
	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.HomeDir, nil
}

// EnsureHomeDir creates the trellis home directory if it doesn't exist.
func EnsureHomeDir() error {
	homeDir, err := GetHomeDir()
	if err != nil {
		return err
	}

	return os.MkdirAll(homeDir, 0o700)
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported, return as-is.
	return path, nil
}
