package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trelliskit/cli/internal/output"
	"github.com/trelliskit/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show Trellis CLI version information.

Displays:
  - CLI version, commit, and build date
  - The framework release range the generated code targets`,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	info := version.GetInfo()

	output.Println(fmt.Sprintf("trellis version %s", info.Version))
	output.Println(fmt.Sprintf("  Commit:     %s", info.GitCommit))
	output.Println(fmt.Sprintf("  Built:      %s", info.BuildDate))
	output.Println(fmt.Sprintf("  Go:         %s", info.GoVersion))
	output.Println(fmt.Sprintf("  Framework:  %s", info.FrameworkConstraint))

	return nil
}
