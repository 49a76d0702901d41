package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.SkipVersionCheck)
	assert.Nil(t, cfg.Log.Timestamps)
}

func TestWithDefaults(t *testing.T) {
	cfg := (&Config{}).WithDefaults()
	assert.Equal(t, "info", cfg.Log.Level)

	cfg = (&Config{Log: LogConfig{Level: "debug"}}).WithDefaults()
	assert.Equal(t, "debug", cfg.Log.Level, "explicit values are preserved")
}

func TestLoaderLoadsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `skipVersionCheck: true
log:
  level: debug
  timestamps: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.SkipVersionCheck)
	assert.Equal(t, "debug", cfg.Log.Level)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestLoaderMissingFileIsNotAnError(t *testing.T) {
	dir := t.TempDir()

	cfg, err := NewLoader().LoadWithDefaults(filepath.Join(dir, "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoaderEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: warn\n"), 0o600))

	t.Setenv("TRELLIS_LOG_LEVEL", "error")

	cfg, err := NewLoader().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o600))

	exists, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}
