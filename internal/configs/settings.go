package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/envdrop/internal/errors"
	"github.com/PolarWolf314/envdrop/internal/utils"
)

// Settings is the fully resolved configuration of one run. It is built once
// at the entry point and passed down; nothing below reads the process
// working directory on its own.
type Settings struct {
	// Payload is the serialized secrets object.
	Payload string

	// Filter is the regular expression tested against secret names.
	Filter string

	// FileBaseName is the file name before the .env suffix.
	FileBaseName string

	// DestinationDirectory is where the env file ends up. Empty means the
	// nearest ancestor of WorkingDirectory holding a manifest marker.
	DestinationDirectory string

	// WorkingDirectory is where the env file is first written and where
	// the manifest search starts. Always absolute.
	WorkingDirectory string

	// ManifestMarkers are file names or globs identifying a package root.
	ManifestMarkers []string

	// Overwrite allows replacing an existing file at the destination.
	Overwrite bool

	// RecordPath is a JSON Lines file that receives a run record. Empty
	// disables recording.
	RecordPath string

	// ConfigPath is the configuration file that was loaded, if any.
	ConfigPath string
}

// Values is one layer of configuration. Nil fields are unset.
type Values struct {
	Secrets          *string
	Filter           *string
	Name             *string
	Destination      *string
	WorkingDirectory *string
	Markers          []string
	Overwrite        *bool
	Record           *string
}

// Optional returns a pointer to s, or nil when s is empty. Pipeline inputs
// use the empty string for "not provided".
func Optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Resolve merges the layers into Settings. Flags win over inputs, inputs
// win over .envdrop.toml, and that wins over the defaults. Relative paths
// from flags and inputs are resolved against cwd; relative paths from the
// file are resolved against the working directory that holds it.
func Resolve(cwd string, flags, inputs Values) (*Settings, error) {
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get working directory: %w", err)
		}
		cwd = wd
	}

	workingDir := utils.ResolveDirectory(first(flags.WorkingDirectory, inputs.WorkingDirectory), cwd)

	file, err := LoadFileConfig(workingDir)
	if err != nil {
		return nil, err
	}

	settings := &Settings{
		Payload:          first(flags.Secrets, inputs.Secrets),
		Filter:           first(flags.Filter, inputs.Filter, Optional(file.Filter)),
		FileBaseName:     first(flags.Name, inputs.Name, Optional(file.Name)),
		WorkingDirectory: workingDir,
		ManifestMarkers:  firstList(flags.Markers, inputs.Markers, file.Markers, utils.DefaultManifestMarkers),
		Overwrite:        firstBool(true, flags.Overwrite, inputs.Overwrite, file.Overwrite),
	}
	if settings.Filter == "" {
		settings.Filter = ".*"
	}
	// The env file is moved by name into the destination, never into a
	// subdirectory of it.
	if strings.ContainsAny(settings.FileBaseName, `/\`) {
		return nil, fmt.Errorf("%w: file name %q must not contain a path separator", kerrors.ErrInvalidConfig, settings.FileBaseName)
	}

	if dest := first(flags.Destination, inputs.Destination); dest != "" {
		settings.DestinationDirectory = utils.ResolveDirectory(dest, cwd)
	} else if file.Destination != "" {
		settings.DestinationDirectory = utils.ResolveDirectory(file.Destination, workingDir)
	}

	if record := first(flags.Record, inputs.Record); record != "" {
		settings.RecordPath = utils.ResolveDirectory(record, cwd)
	} else if file.Record != "" {
		settings.RecordPath = utils.ResolveDirectory(file.Record, workingDir)
	}

	if configPath := filepath.Join(workingDir, FileName); fileExists(configPath) {
		settings.ConfigPath = configPath
	}

	return settings, nil
}

func first(values ...*string) string {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return ""
}

func firstList(lists ...[]string) []string {
	for _, l := range lists {
		if len(l) > 0 {
			return append([]string(nil), l...)
		}
	}
	return nil
}

func firstBool(fallback bool, values ...*bool) bool {
	for _, v := range values {
		if v != nil {
			return *v
		}
	}
	return fallback
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
