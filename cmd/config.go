package cmd

import (
	logger "github.com/PolarWolf314/envdrop/internal/logging"
	"github.com/spf13/cobra"
)

var (
	configVerbose bool
	configDebug   bool
	ConfigLogger  logger.Logger

	// ConfigCmd is the top-level config command.
	ConfigCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage envdrop configuration",
		Long: `Provides commands for managing the .envdrop.toml project configuration.

Use these commands to:
  - Write a default configuration file (config init)
  - Show the settings a create run would use (config show)

Examples:
  # Write .envdrop.toml in the current directory
  envdrop config init

  # Show resolved settings as JSON
  envdrop config show --json`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			ConfigLogger = logger.Logger{
				Verbose: configVerbose,
				Debug:   configDebug,
			}
			ConfigLogger.Debugf("Initializing config command with verbose=%t, debug=%t", configVerbose, configDebug)
		},
	}
)

func init() {
	ConfigCmd.PersistentFlags().BoolVarP(&configVerbose, "verbose", "v", false, "enable verbose output")
	ConfigCmd.PersistentFlags().BoolVarP(&configDebug, "debug", "d", false, "enable debug output")
}

// ResetGlobalState resets all command state to defaults for testing.
func ResetGlobalState() {
	resetCreateCommandState()
	configVerbose = false
	configDebug = false
	resetConfigInitState()
	resetConfigShowState()
	resetCobraFlagState(ConfigCmd)
}
