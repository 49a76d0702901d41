package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/trelliskit/cli/internal/config"
	terrors "github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the Trellis CLI configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Config values are within their accepted ranges

The config path is resolved using precedence:
  --config flag > TRELLIS_CONFIG env > ~/.trellis/config.yaml

Examples:
  # Validate default configuration
  trellis config vet

  # Validate custom config path
  trellis config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: GetConfigPath(),
	})
	if err != nil {
		return terrors.Wrap(terrors.ErrNotFound, "could not resolve config path")
	}

	configPath := pathResult.Value

	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &terrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'trellis config init' to create default configuration",
			Cause:    terrors.ErrNotFound,
		}
	}

	loaded, err := config.NewLoader().Load(configPath)
	if err != nil {
		return &terrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Cause:    terrors.ErrValidation,
		}
	}

	if err := config.NewValidator().Validate(loaded); err != nil {
		return &terrors.DetailError{
			Type:     "validation failed",
			Message:  err.Error(),
			Location: configPath,
			Hint:     "Fix the listed fields or regenerate with 'trellis config init --force'",
			Cause:    terrors.ErrValidation,
		}
	}

	output.Println("Configuration is valid: " + configPath)
	return nil
}
