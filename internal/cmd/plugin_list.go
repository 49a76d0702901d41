package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	terrors "github.com/trelliskit/cli/internal/errors"
	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/scaffold"
)

var pluginListOutput string

// NewPluginListCmd creates the plugin list command.
func NewPluginListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List registered plugins",
		Long: `List the plugins registered in the application config.

Reads the Plugins list of the enclosing project's application config and
shows one row per registration.

Examples:
  # List plugins as a table
  trellis plugin list

  # List plugins as JSON
  trellis plugin list --output json`,
		Args: cobra.NoArgs,
		RunE: runPluginList,
	}

	cmd.Flags().StringVarP(&pluginListOutput, "output", "o", "text",
		fmt.Sprintf("Output format (%s)", strings.Join(output.ValidFormats(), ", ")))

	return cmd
}

func runPluginList(cmd *cobra.Command, args []string) error {
	format := output.OutputFormat(strings.ToLower(pluginListOutput))
	if !format.IsValid() {
		return terrors.NewValidationError(
			fmt.Sprintf("unknown output format %q", pluginListOutput),
			"", "output",
			"valid formats: "+strings.Join(output.ValidFormats(), ", "))
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	configPath, regs, err := scaffold.ListRegistrations(cwd)
	if err != nil {
		return err
	}
	output.Debug("listed plugin registrations", "config", configPath, "count", len(regs))

	if format == output.FormatJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(regs)
	}

	if len(regs) == 0 {
		output.Println("No plugins registered in " + configPath)
		return nil
	}

	output.Println(formatRegistrationTable(regs))
	return nil
}

// formatRegistrationTable renders registrations as a table. Entries whose
// shape the parser does not recognize fall back to their raw expression in
// the PLUGIN column.
func formatRegistrationTable(regs []scaffold.Registration) string {
	tbl := output.NewTable("PLUGIN", "PACKAGE", "IMPORT PATH")
	for _, reg := range regs {
		plugin := reg.Plugin
		if plugin == "" {
			plugin = reg.Expr
		}
		tbl.Row(plugin, reg.Package, reg.ImportPath)
	}
	return tbl.String()
}
