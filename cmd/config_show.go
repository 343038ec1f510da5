package cmd

import (
	"fmt"

	"github.com/PolarWolf314/envdrop/internal/configs"
	"github.com/PolarWolf314/envdrop/internal/host"
	"github.com/PolarWolf314/envdrop/internal/secrets"
	"github.com/PolarWolf314/envdrop/internal/ui"
	"github.com/PolarWolf314/envdrop/internal/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var (
	configShowJSON             bool
	configShowWorkingDirectory string
)

func init() {
	configShowCmd.Flags().BoolVar(&configShowJSON, "json", false, "output in JSON format")
	configShowCmd.Flags().StringVarP(&configShowWorkingDirectory, "working-directory", "w", "", "directory a create run would start in")
	ConfigCmd.AddCommand(configShowCmd)
}

// resetConfigShowState resets the config show command's global state for testing.
func resetConfigShowState() {
	configShowJSON = false
	configShowWorkingDirectory = ""
	resetCobraFlagState(configShowCmd)
}

// shownSettings is the printable view of configs.Settings. The payload is
// reduced to whether one was provided.
type shownSettings struct {
	WorkingDirectory     string   `json:"working_directory"`
	ConfigFile           string   `json:"config_file,omitempty"`
	Filter               string   `json:"filter"`
	FileName             string   `json:"file_name"`
	DestinationDirectory string   `json:"destination,omitempty"`
	ManifestMarkers      []string `json:"markers"`
	Overwrite            bool     `json:"overwrite"`
	RecordPath           string   `json:"record,omitempty"`
	SecretsProvided      bool     `json:"secrets_provided"`
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the settings a create run would use",
	Long: `Resolves settings the same way envdrop create does, from INPUT_*
variables and .envdrop.toml, and prints them. Secret values are never shown.

Examples:
  envdrop config show
  envdrop config show --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ConfigLogger.Infof("Starting config show command")

		var flagLayer configs.Values
		if cmd.Flags().Changed("working-directory") {
			flagLayer.WorkingDirectory = configs.Optional(configShowWorkingDirectory)
		}

		console := host.NewConsole(cmd.OutOrStdout(), ConfigLogger)
		settings, err := configs.Resolve("", flagLayer, inputValues(console))
		if err != nil {
			return ConfigLogger.ErrorfAndReturn("Failed to resolve settings: %v", err)
		}

		shown := shownSettings{
			WorkingDirectory:     settings.WorkingDirectory,
			ConfigFile:           settings.ConfigPath,
			Filter:               settings.Filter,
			FileName:             secrets.EnvFileName(settings.FileBaseName),
			DestinationDirectory: settings.DestinationDirectory,
			ManifestMarkers:      settings.ManifestMarkers,
			Overwrite:            settings.Overwrite,
			RecordPath:           settings.RecordPath,
			SecretsProvided:      settings.Payload != "",
		}

		if configShowJSON {
			output, err := json.MarshalIndent(shown, "", "  ")
			if err != nil {
				return ConfigLogger.ErrorfAndReturn("Failed to marshal settings to JSON: %v", err)
			}
			fmt.Println(string(output))
			return nil
		}

		outputSettingsText(shown)
		return nil
	},
}

func outputSettingsText(s shownSettings) {
	source := "defaults"
	if s.ConfigFile != "" {
		source = s.ConfigFile
	}
	fmt.Println(ui.Info.Sprint("Settings") + " " + ui.Muted.Sprint(source))
	fmt.Println()
	fmt.Printf("  %-20s %s\n", "Working directory:", ui.Path.Sprint(s.WorkingDirectory))
	fmt.Printf("  %-20s %s\n", "Filter:", ui.Highlight.Sprint(s.Filter))
	fmt.Printf("  %-20s %s\n", "File name:", ui.Highlight.Sprint(s.FileName))
	if s.DestinationDirectory != "" {
		fmt.Printf("  %-20s %s\n", "Destination:", ui.Path.Sprint(s.DestinationDirectory))
	} else {
		fmt.Printf("  %-20s %s\n", "Destination:", "nearest of "+utils.FormatKeys(s.ManifestMarkers))
	}
	fmt.Printf("  %-20s %t\n", "Overwrite:", s.Overwrite)
	if s.RecordPath != "" {
		fmt.Printf("  %-20s %s\n", "Record:", ui.Path.Sprint(s.RecordPath))
	}
	fmt.Printf("  %-20s %t\n", "Secrets provided:", s.SecretsProvided)
}
