// Package errors provides typed error values for envdrop.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
//   - Input errors: ErrPayloadParse, ErrInvalidPattern, ErrInvalidConfig
//   - Extraction errors: ErrNoMatch
//   - Relocation errors: ErrMove, ErrSourceNotFound, ErrDestinationExists
//   - ErrUnexpected for faults recovered by the workflow
//
// ErrPayloadParse and ErrNoMatch are recoverable: the workflow reports them
// to the host and keeps going. Relocation errors end the run.
//
// # Usage
//
//	if errors.Is(err, kerrors.ErrMove) {
//	    var moveErr *kerrors.MoveError
//	    errors.As(err, &moveErr)
//	}
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("decoding payload: %w", kerrors.ErrPayloadParse)
package errors
