package cmd

import (
	"github.com/spf13/cobra"
)

// NewPluginCmd creates the plugin command group.
func NewPluginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: "Plugin scaffolding",
		Long:  `Plugin scaffolding for Trellis applications.`,
	}

	// Add subcommands
	cmd.AddCommand(NewPluginNewCmd())
	cmd.AddCommand(NewPluginListCmd())

	return cmd
}
