package host

import (
	"os"
	"strings"
)

// Host is the pipeline environment the workflow reports to.
type Host interface {
	// AddMask registers a value that must be redacted from all output.
	AddMask(value string)

	// Infof logs an informational line.
	Infof(format string, args ...any)

	// Warnf logs a warning.
	Warnf(format string, args ...any)

	// SetOutput publishes a named step output.
	SetOutput(key, value string)

	// SetFailed logs message as an error and marks the run as failed
	// without stopping it.
	SetFailed(message string)

	// Failed reports whether SetFailed has been called.
	Failed() bool
}

// InputSource reads named pipeline inputs. Missing inputs are empty.
type InputSource interface {
	Input(name string) string
}

// Names of the inputs read from the pipeline.
const (
	InputSecrets          = "APP_SECRETS"
	InputFilter           = "PREFIX_FILTER"
	InputFileName         = "ENV_FILE_NAME"
	InputDestination      = "DESTINATION_PATH"
	InputWorkingDirectory = "WORKING_DIRECTORY_PATH"
)

// OutputSecrets is the output holding the JSON object that was written.
const OutputSecrets = "secrets"

// IsGitHubActions reports whether the process runs as a GitHub Actions step.
func IsGitHubActions(getenv func(string) string) bool {
	return strings.EqualFold(getenv("GITHUB_ACTIONS"), "true")
}

// Detect returns an Actions host inside GitHub Actions and a Console host
// everywhere else.
func Detect(console *Console) Host {
	if IsGitHubActions(os.Getenv) {
		return NewActions()
	}
	return console
}
