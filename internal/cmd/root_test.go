package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd(t *testing.T) {
	cmd := NewRootCmd()

	assert.Equal(t, "trellis", cmd.Use)
	assert.True(t, cmd.SilenceUsage)
	assert.True(t, cmd.SilenceErrors)

	for _, flag := range []string{"config", "log-level", "verbose", "timestamps"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing global flag %s", flag)
	}

	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "plugin")
	assert.Contains(t, names, "config")
	assert.Contains(t, names, "version")
}

func TestSkipVersionCheckReadsLoadedConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("TRELLIS_SKIP_VERSION_CHECK", "true")

	cmd := NewRootCmd()
	require.NoError(t, initializeGlobals(cmd))

	assert.True(t, SkipVersionCheck())
}
