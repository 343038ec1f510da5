// Package workflows provides high-level orchestration for envdrop commands.
//
// Workflows sequence the secrets, utils and audit packages into a complete
// run and report to a host.Host. They are independent of CLI concerns like
// flag parsing, spinners and output formatting.
//
// # Create
//
// Create moves through three states:
//
//	parsing → extracting → relocating → done
//	                    ↘ failed
//
// Parsing and extracting degrade gracefully: a bad payload or a filter that
// matches nothing is reported with SetFailed, and an empty env file is still
// produced and moved. Relocation failures end the run, since no file would
// be at its destination.
//
// # Error Handling
//
// Workflows return typed errors from the internal/errors package. Use
// errors.Is() to check for specific conditions:
//
//	result, err := workflows.Create(ctx, h, opts)
//	if errors.Is(err, kerrors.ErrMove) {
//	    // The file never reached its destination.
//	}
//
// # Context Usage
//
// Workflow functions accept a context.Context as their first parameter and
// check it between states.
package workflows
