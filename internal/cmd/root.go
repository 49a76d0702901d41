// Package cmd provides command implementations for the Trellis CLI.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/trelliskit/cli/internal/config"
	"github.com/trelliskit/cli/internal/output"
)

var (
	// Global flags
	configFlag     string
	logLevelFlag   string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded tool configuration (set during PersistentPreRunE)
	cliConfig *config.Config
)

// NewRootCmd creates the root command for the Trellis CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "trellis",
		Short:         "Trellis framework CLI",
		Long:          `Trellis CLI scaffolds plugins for Trellis applications and wires them into the application config.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: TRELLIS_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (env: TRELLIS_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewPluginCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads the tool configuration and sets up logging.
func initializeGlobals(cmd *cobra.Command) error {
	loaded, err := config.NewLoader().Load(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands that never read the config still work.
	}

	// Store loaded config in package-level var
	cliConfig = loaded

	var configLevel string
	if cliConfig != nil {
		configLevel = cliConfig.Log.Level
	}

	levelValue := config.ResolveLogLevel(config.ResolveLogLevelOptions{
		FlagValue:   logLevelFlag,
		ConfigValue: configLevel,
	})

	logOpts := output.LogOptions{
		Level:   levelValue.Value,
		Verbose: verboseFlag,
	}

	// Resolve timestamps: flag (if explicitly set) > config > default (false)
	if cmd.Flags().Changed("timestamps") {
		logOpts.Timestamps = timestampsFlag
	} else if cliConfig != nil && cliConfig.Log.Timestamps != nil {
		logOpts.Timestamps = *cliConfig.Log.Timestamps
	}

	output.SetupLogging(logOpts)

	// Log config resolution at DEBUG level
	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{levelValue})
	}

	return nil
}

// GetConfig returns the loaded tool configuration, nil when loading failed.
func GetConfig() *config.Config {
	return cliConfig
}

// GetConfigPath returns the raw --config flag value.
func GetConfigPath() string {
	return configFlag
}

// SkipVersionCheck reports whether the framework version check is disabled
// in the tool configuration.
func SkipVersionCheck() bool {
	return cliConfig != nil && cliConfig.SkipVersionCheck
}
