package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	terrors "github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/testutil"
)

func TestPluginListInProject(t *testing.T) {
	project := testutil.NewProject(t)
	t.Chdir(project)

	require.NoError(t, runTrellis(t, "plugin", "new", "reviews",
		"--dir", filepath.Join(project, "src", "plugins", "reviews")))

	assert.NoError(t, runTrellis(t, "plugin", "list"))
	assert.NoError(t, runTrellis(t, "plugin", "list", "--output", "json"))
}

func TestPluginListEmptyProject(t *testing.T) {
	project := testutil.NewProject(t)
	t.Chdir(project)

	assert.NoError(t, runTrellis(t, "plugin", "list"))
}

func TestPluginListRejectsUnknownFormat(t *testing.T) {
	project := testutil.NewProject(t)
	t.Chdir(project)

	err := runTrellis(t, "plugin", "list", "--output", "yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, terrors.ErrValidation)
	assert.Contains(t, err.Error(), "yaml")
}

func TestPluginListOutsideProject(t *testing.T) {
	t.Chdir(t.TempDir())

	err := runTrellis(t, "plugin", "list")
	require.Error(t, err)
	assert.ErrorIs(t, err, terrors.ErrStructural)
}
