package cmd

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"

	"github.com/PolarWolf314/envdrop/internal/configs"
	"github.com/PolarWolf314/envdrop/internal/host"
	logger "github.com/PolarWolf314/envdrop/internal/logging"
	"github.com/PolarWolf314/envdrop/internal/ui"
	"github.com/PolarWolf314/envdrop/internal/utils"
	"github.com/PolarWolf314/envdrop/internal/workflows"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// ErrRunFailed is returned when the run completed but reported a failure to
// the host, so the process can exit non-zero.
var ErrRunFailed = errors.New("envdrop reported a failure")

var (
	verbose bool
	debug   bool
	Logger  logger.Logger

	createSecrets          string
	createFilter           string
	createName             string
	createDestination      string
	createWorkingDirectory string
	createMarkers          []string
	createNoOverwrite      bool
	createRecord           string

	CreateCmd = &cobra.Command{
		Use:   "create",
		Short: "Write filtered secrets to a .env file and move it to the package root",
		Long: `Filters a JSON object of secrets by name, writes the matches to a .env
file in the working directory and moves that file to its destination.

The destination is --destination when set, otherwise the nearest ancestor
of the working directory that contains a manifest marker (package.json by
default).

Every value is registered as a secret with the host before filtering, so
values are redacted from logs even when they are not written.

Settings are read from flags, then INPUT_* variables (as set by GitHub
Actions), then .envdrop.toml in the working directory.

Examples:
  # Write every secret to .env at the package root
  envdrop create --secrets '{"API_KEY":"abc"}'

  # Only keep secrets starting with APP_, read the payload from stdin
  echo "$SECRETS" | envdrop create --secrets - --filter '^APP_'

  # Write production.env into ./deploy
  envdrop create --name production --destination ./deploy`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			Logger = logger.Logger{
				Verbose: verbose,
				Debug:   debug,
			}
			Logger.Debugf("Initializing create command with verbose=%t, debug=%t", verbose, debug)
		},
		RunE: runCreate,
	}
)

func init() {
	CreateCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	CreateCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "enable debug output")

	flags := CreateCmd.Flags()
	flags.StringVarP(&createSecrets, "secrets", "s", "", "JSON object of secrets, or - to read it from stdin")
	flags.StringVarP(&createFilter, "filter", "f", "", "regular expression secret names must match")
	flags.StringVarP(&createName, "name", "n", "", "env file name before the .env extension")
	flags.StringVar(&createDestination, "destination", "", "directory the env file is moved to")
	flags.StringVarP(&createWorkingDirectory, "working-directory", "w", "", "directory the env file is written in")
	flags.StringArrayVar(&createMarkers, "marker", nil, "file name or glob that marks a package root (repeatable)")
	flags.BoolVar(&createNoOverwrite, "no-overwrite", false, "fail if the destination already has the file")
	flags.StringVar(&createRecord, "record", "", "append a JSON line describing the run to this file")
}

// resetCreateCommandState resets the create command's global state for testing.
func resetCreateCommandState() {
	verbose = false
	debug = false
	createSecrets = ""
	createFilter = ""
	createName = ""
	createDestination = ""
	createWorkingDirectory = ""
	createMarkers = nil
	createNoOverwrite = false
	createRecord = ""
	resetCobraFlagState(CreateCmd)
}

func runCreate(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting create command")

	spinner, cleanup := startSpinner("Dropping secrets...", verbose)
	defer cleanup()

	// The spinner owns the terminal while it runs, console lines are
	// buffered and printed as its final message.
	var out io.Writer = os.Stdout
	var buffered *bytes.Buffer
	if spinner.Active() {
		buffered = &bytes.Buffer{}
		out = buffered
	}
	console := host.NewConsole(out, Logger)
	h, inputs := selectHost(console)

	flagLayer, err := flagValues(cmd.Flags())
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to read flags: %v", err)
	}
	inputLayer := inputValues(inputs)
	if shadowed := shadowedInputs(flagLayer, inputLayer); len(shadowed) > 0 {
		Logger.WarnfAlways("Flags take precedence over inputs: %s", utils.FormatKeys(shadowed))
	}

	Logger.Debugf("Resolving settings")
	settings, err := configs.Resolve("", flagLayer, inputLayer)
	if err != nil {
		return Logger.ErrorfAndReturn("Failed to resolve settings: %v", err)
	}
	if settings.ConfigPath != "" {
		Logger.Infof("Loaded configuration from %s", settings.ConfigPath)
	}
	Logger.Debugf("Working directory: %s, filter: %s, markers: %s", settings.WorkingDirectory, settings.Filter, utils.FormatKeys(settings.ManifestMarkers))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := workflows.Create(ctx, h, workflows.OptionsFromSettings(settings))

	finalMessage := ""
	if buffered != nil {
		finalMessage = buffered.String()
	}
	if err != nil {
		Logger.Errorf("Create failed in state %s: %v", result.State, err)
		spinner.FinalMSG = finalMessage
		return err
	}
	if h.Failed() {
		Logger.Infof("Create finished with reported failures")
		spinner.FinalMSG = finalMessage
		return ErrRunFailed
	}

	Logger.Infof("Create command completed successfully: %s", result.FinalPath)
	if _, ok := h.(*host.Console); ok {
		finalMessage += ui.StatusLine(ui.StatusSuccess, "Wrote "+ui.Path.Sprint(result.FinalPath))
	}
	spinner.FinalMSG = finalMessage
	return nil
}

// selectHost picks the runner host when inside GitHub Actions and the
// console otherwise. Inputs come from whichever was chosen.
func selectHost(console *host.Console) (host.Host, host.InputSource) {
	h := host.Detect(console)
	if in, ok := h.(host.InputSource); ok {
		Logger.Debugf("Using %T host", h)
		return h, in
	}
	return h, console
}

// flagValues builds the flag layer from flags that were explicitly set.
func flagValues(flags *pflag.FlagSet) (configs.Values, error) {
	var values configs.Values
	var readErr error

	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "secrets":
			payload := createSecrets
			if payload == "-" {
				data, err := utils.ReadStdin()
				if err != nil {
					readErr = err
					return
				}
				payload = string(data)
			}
			values.Secrets = &payload
		case "filter":
			values.Filter = stringPtr(createFilter)
		case "name":
			values.Name = stringPtr(createName)
		case "destination":
			values.Destination = configs.Optional(createDestination)
		case "working-directory":
			values.WorkingDirectory = configs.Optional(createWorkingDirectory)
		case "marker":
			values.Markers = append([]string(nil), createMarkers...)
		case "no-overwrite":
			overwrite := !createNoOverwrite
			values.Overwrite = &overwrite
		case "record":
			values.Record = configs.Optional(createRecord)
		}
	})

	return values, readErr
}

// inputValues builds the input layer. Unset inputs are empty strings.
func inputValues(in host.InputSource) configs.Values {
	return configs.Values{
		Secrets:          configs.Optional(in.Input(host.InputSecrets)),
		Filter:           configs.Optional(in.Input(host.InputFilter)),
		Name:             configs.Optional(in.Input(host.InputFileName)),
		Destination:      configs.Optional(in.Input(host.InputDestination)),
		WorkingDirectory: configs.Optional(in.Input(host.InputWorkingDirectory)),
	}
}

// shadowedInputs names the inputs that are set but replaced by a flag.
func shadowedInputs(flags, inputs configs.Values) []string {
	pairs := []struct {
		name        string
		flag, input *string
	}{
		{host.InputSecrets, flags.Secrets, inputs.Secrets},
		{host.InputFilter, flags.Filter, inputs.Filter},
		{host.InputFileName, flags.Name, inputs.Name},
		{host.InputDestination, flags.Destination, inputs.Destination},
		{host.InputWorkingDirectory, flags.WorkingDirectory, inputs.WorkingDirectory},
	}

	var shadowed []string
	for _, p := range pairs {
		if p.flag != nil && p.input != nil {
			shadowed = append(shadowed, p.name)
		}
	}
	return shadowed
}

func stringPtr(s string) *string {
	return &s
}

// resetCobraFlagState clears Changed on every flag so a test run does not
// see flags from the previous one.
func resetCobraFlagState(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		flag.Changed = false
	})
}
