package workflows

import (
	"context"
	"errors"
	"fmt"

	"github.com/PolarWolf314/envdrop/internal/audit"
	"github.com/PolarWolf314/envdrop/internal/configs"
	kerrors "github.com/PolarWolf314/envdrop/internal/errors"
	"github.com/PolarWolf314/envdrop/internal/host"
	"github.com/PolarWolf314/envdrop/internal/secrets"
	"github.com/PolarWolf314/envdrop/internal/utils"
)

// State is a step of the create workflow.
type State string

const (
	StateParsing    State = "parsing"
	StateExtracting State = "extracting"
	StateRelocating State = "relocating"
	StateDone       State = "done"
	StateFailed     State = "failed"
)

// Messages reported to the host.
const (
	MsgNoSecrets  = "No app secrets found to extract"
	MsgUnexpected = "Something went wrong. Check error in logs"
)

// CreateOptions configures the create workflow.
type CreateOptions struct {
	// Payload is the JSON object of secrets.
	Payload string

	// Pattern is tested against secret names. Empty matches everything.
	Pattern string

	// FileBaseName is the env file name before ".env".
	FileBaseName string

	// DestinationDirectory overrides the manifest search when set.
	DestinationDirectory string

	// WorkingDirectory is where the file is first written and where the
	// manifest search starts. Must be absolute.
	WorkingDirectory string

	// ManifestMarkers identify a package root. Empty uses package.json.
	ManifestMarkers []string

	// Overwrite replaces an existing file at the destination.
	Overwrite bool

	// RecordPath receives a run record when set.
	RecordPath string
}

// OptionsFromSettings maps resolved settings onto workflow options.
func OptionsFromSettings(s *configs.Settings) CreateOptions {
	return CreateOptions{
		Payload:              s.Payload,
		Pattern:              s.Filter,
		FileBaseName:         s.FileBaseName,
		DestinationDirectory: s.DestinationDirectory,
		WorkingDirectory:     s.WorkingDirectory,
		ManifestMarkers:      s.ManifestMarkers,
		Overwrite:            s.Overwrite,
		RecordPath:           s.RecordPath,
	}
}

// CreateResult contains the outcome of a create run.
type CreateResult struct {
	// State is StateDone or StateFailed once the workflow returns.
	State State

	// Secrets holds the entries written to the file, in order.
	Secrets *secrets.SecretMap

	// Copied lists the names in Secrets.
	Copied []string

	// FileName is the env file name, e.g. "production.env".
	FileName string

	// WrittenPath is where the file was first written.
	WrittenPath string

	// Destination is the directory the file was moved to.
	Destination string

	// FinalPath is the file's final location.
	FinalPath string

	// ParseFailed is set when the payload could not be decoded.
	ParseFailed bool

	// NoMatch is set when the filter kept nothing.
	NoMatch bool
}

// Create filters the payload, writes the env file in the working directory
// and moves it to its destination.
//
// Parse failures and empty filter results are reported to the host with
// SetFailed but do not stop the run: an empty file is still written and
// moved. Failing to move the file is terminal and returned as a
// *errors.MoveError. Panics are recovered and returned as ErrUnexpected.
func Create(ctx context.Context, h host.Host, opts CreateOptions) (result *CreateResult, err error) {
	result = &CreateResult{
		State:    StateParsing,
		FileName: secrets.EnvFileName(opts.FileBaseName),
	}
	var warnings []string

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", kerrors.ErrUnexpected, r)
		}
		if err != nil {
			result.State = StateFailed
			if !isReported(err) {
				h.SetFailed(MsgUnexpected)
			}
		}
		record(opts.RecordPath, result, warnings, err)
	}()

	// Parsing.
	parsed, parseErr := secrets.ParsePayload(opts.Payload)
	if parseErr != nil {
		result.ParseFailed = true
		warnings = append(warnings, parseErr.Error())
		h.SetFailed(parseErr.Error())
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Extracting.
	result.State = StateExtracting
	pattern, err := secrets.CompilePattern(opts.Pattern)
	if err != nil {
		h.SetFailed(err.Error())
		return result, reported(err)
	}

	filtered := secrets.Filter(parsed, pattern, h)
	result.Secrets = filtered
	result.Copied = filtered.Keys()

	result.WrittenPath, err = secrets.WriteEnvFile(filtered, opts.WorkingDirectory, result.FileName)
	if err != nil {
		return result, err
	}

	if filtered.Len() == 0 {
		result.NoMatch = true
		warnings = append(warnings, kerrors.ErrNoMatch.Error())
		h.SetFailed(MsgNoSecrets)
	} else {
		h.Infof("%s copied", utils.FormatKeys(result.Copied))
	}
	if err := ctx.Err(); err != nil {
		return result, err
	}

	// Relocating.
	result.State = StateRelocating
	result.Destination = opts.DestinationDirectory
	if result.Destination == "" {
		result.Destination, err = utils.FindManifestRoot(opts.WorkingDirectory, opts.ManifestMarkers)
		if err != nil {
			return result, fmt.Errorf("resolving destination: %w", err)
		}
	}

	result.FinalPath, err = secrets.MoveFile(result.WrittenPath, result.Destination, secrets.MoveOptions{Overwrite: opts.Overwrite})
	if err != nil {
		h.SetFailed(err.Error())
		return result, reported(err)
	}
	h.Infof("%s moved to %s", result.FileName, result.Destination)

	output, err := filtered.MarshalJSON()
	if err != nil {
		return result, fmt.Errorf("encoding secrets output: %w", err)
	}
	h.SetOutput(host.OutputSecrets, string(output))

	result.State = StateDone
	return result, nil
}

// reportedError marks errors the workflow already passed to SetFailed.
type reportedError struct {
	err error
}

func (e reportedError) Error() string { return e.err.Error() }
func (e reportedError) Unwrap() error { return e.err }

func reported(err error) error {
	return reportedError{err: err}
}

func isReported(err error) bool {
	var r reportedError
	return errors.As(err, &r)
}

func record(path string, result *CreateResult, warnings []string, err error) {
	if path == "" {
		return
	}

	entry := audit.NewEntry("create")
	entry.Status = audit.StatusDone
	if result.State == StateFailed {
		entry.Status = audit.StatusFailed
	}
	entry.Keys = result.Copied
	entry.FileName = result.FileName
	entry.Destination = result.Destination
	entry.Warnings = warnings
	if err != nil {
		entry.Error = err.Error()
	}
	audit.Log(path, entry)
}
