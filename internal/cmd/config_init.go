package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/trelliskit/cli/internal/config"
	terrors "github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the Trellis CLI configuration.

Creates ~/.trellis/config.yaml with the default settings:
  log.level          Minimum log level (info)
  log.timestamps     Timestamps on log lines (false)
  skipVersionCheck   Skip the framework version check (false)

Examples:
  # Initialize configuration
  trellis config init

  # Overwrite existing configuration
  trellis config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return terrors.Wrap(terrors.ErrNotFound, "could not determine home directory")
	}

	// Check if config exists
	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return &terrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    terrors.ErrValidation,
		}
	}

	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return terrors.Wrap(terrors.ErrPermission, "could not create ~/.trellis directory")
	}

	if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return terrors.Wrap(terrors.ErrPermission, "could not write config.yaml")
	}

	output.Println("Configuration initialized at " + paths.ConfigFile)
	output.Println("")
	output.Println("Validate with: trellis config vet")

	return nil
}
