package plugin

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trelliskit/cli/internal/errors"
)

func TestGenerateOptionsValidate(t *testing.T) {
	opts := GenerateOptions{
		Name:      "reviews",
		PluginDir: filepath.Join(t.TempDir(), "reviews"),
	}
	assert.NoError(t, opts.Validate())
}

func TestGenerateOptionsRejectsBadName(t *testing.T) {
	opts := GenerateOptions{Name: "Reviews!"}

	err := opts.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestGenerateOptionsRejectsSuffixOnlyName(t *testing.T) {
	opts := GenerateOptions{Name: "plugin"}

	err := opts.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrValidation)
}

func TestGenerateOptionsRejectsExistingDirectory(t *testing.T) {
	opts := GenerateOptions{
		Name:      "reviews",
		PluginDir: t.TempDir(),
	}

	err := opts.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrValidation)

	var detail *errors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, "directory", detail.Field)
}
