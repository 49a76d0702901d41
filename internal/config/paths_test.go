package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(paths.HomeDir, ".trellis"))
	assert.Equal(t, filepath.Join(paths.HomeDir, "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFileEnvOverride(t *testing.T) {
	t.Setenv("TRELLIS_CONFIG", "/tmp/custom.yaml")

	path, err := GetConfigFile()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.yaml", path)
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "absolute", in: "/etc/trellis", want: "/etc/trellis"},
		{name: "relative", in: "plugins/reviews", want: "plugins/reviews"},
		{name: "bare tilde", in: "~", want: home},
		{name: "tilde slash", in: "~/projects", want: filepath.Join(home, "projects")},
		{name: "tilde user", in: "~other/projects", want: "~other/projects"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
