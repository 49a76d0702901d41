package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd()

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
}

func TestVersionCmdExecute(t *testing.T) {
	cmd := NewVersionCmd()

	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	// output.Println writes straight to stdout, not cmd.SetOut(); this
	// only verifies the command executes without error.
	err := cmd.Execute()
	assert.NoError(t, err)
}
