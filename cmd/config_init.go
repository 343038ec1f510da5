package cmd

import (
	"os"
	"path/filepath"

	"github.com/PolarWolf314/envdrop/internal/configs"
	"github.com/PolarWolf314/envdrop/internal/ui"
	"github.com/PolarWolf314/envdrop/internal/utils"

	"github.com/spf13/cobra"
)

var (
	configInitForce            bool
	configInitWorkingDirectory string
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing configuration file")
	configInitCmd.Flags().StringVarP(&configInitWorkingDirectory, "working-directory", "w", "", "directory to write the configuration file in")
	ConfigCmd.AddCommand(configInitCmd)
}

// resetConfigInitState resets the config init command's global state for testing.
func resetConfigInitState() {
	configInitForce = false
	configInitWorkingDirectory = ""
	resetCobraFlagState(configInitCmd)
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default .envdrop.toml",
	Long: `Writes .envdrop.toml with the default filter, manifest markers and
overwrite behaviour, ready to be edited.

Examples:
  envdrop config init
  envdrop config init --working-directory ./packages/web --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config init command")

		cwd, err := os.Getwd()
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to get working directory: %v", err)
		}
		dir := utils.ResolveDirectory(configInitWorkingDirectory, cwd)
		configPath := filepath.Join(dir, configs.FileName)
		ConfigLogger.Debugf("Config path: %s", configPath)

		_, statErr := os.Stat(configPath)
		exists := statErr == nil
		if exists && !configInitForce {
			printer := ui.Printer{Out: cmd.OutOrStdout()}
			printer.Printf(ui.StatusFailure, "%s already exists", ui.Path.Sprint(configPath))
			printer.Printf(ui.StatusInfo, "To override, run: %s", ui.Code.Sprint("envdrop config init --force"))
			return nil
		}

		if exists {
			ConfigLogger.WarnfAlways("Overwriting %s", configPath)
		}

		written, err := configs.SaveFileConfig(dir, configs.DefaultFileConfig())
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to write configuration: %v", err)
		}

		ConfigLogger.Infof("Configuration written to %s", written)
		ui.Printer{Out: cmd.OutOrStdout()}.Printf(ui.StatusSuccess, "Created %s", ui.Path.Sprint(written))
		return nil
	},
}
