package errors

import (
	"errors"
	"fmt"
)

// Input errors indicate the pipeline inputs could not be used as given.
var (
	// ErrPayloadParse indicates the secrets payload is not a JSON object of strings.
	ErrPayloadParse = errors.New("secrets payload could not be parsed")

	// ErrInvalidPattern indicates the filter is not a valid regular expression.
	ErrInvalidPattern = errors.New("invalid filter pattern")

	// ErrInvalidConfig indicates the configuration file is malformed.
	ErrInvalidConfig = errors.New("configuration is invalid")
)

// Extraction errors.
var (
	// ErrNoMatch indicates the filter kept no secrets.
	ErrNoMatch = errors.New("no app secrets found to extract")
)

// Relocation errors indicate the env file could not reach its destination.
var (
	// ErrMove is matched by every MoveError.
	ErrMove = errors.New("failed to move env file")

	// ErrSourceNotFound indicates the env file to move does not exist.
	ErrSourceNotFound = errors.New("source file not found")

	// ErrDestinationExists indicates the destination file exists and overwriting is disabled.
	ErrDestinationExists = errors.New("destination file already exists")
)

// ErrUnexpected wraps faults recovered at the workflow boundary.
var ErrUnexpected = errors.New("something went wrong")

// MoveError describes a failed relocation of the env file.
type MoveError struct {
	Source      string
	Destination string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("moving %s to %s: %v", e.Source, e.Destination, e.Err)
}

func (e *MoveError) Unwrap() error {
	return e.Err
}

// Is reports ErrMove so callers can match any relocation failure.
func (e *MoveError) Is(target error) bool {
	return target == ErrMove
}
