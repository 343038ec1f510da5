// Package host models the pipeline environment envdrop runs in.
//
// The workflow never talks to a CI system directly. It receives a Host and
// calls four capabilities on it: register a sensitive value, log, publish an
// output, and flag failure without aborting.
//
// # Implementations
//
//   - Actions: GitHub Actions, via go-githubactions. Masks become
//     ::add-mask:: commands, outputs go to $GITHUB_OUTPUT, failures are
//     ::error:: annotations.
//   - Console: local runs. Registered values are replaced with *** in every
//     line it prints. Outputs are kept in memory and shown with --debug.
//   - Recorder: test double that records every call.
//
// Detect picks Actions when GITHUB_ACTIONS=true and the console otherwise.
//
// # Inputs
//
// Actions and Console both implement InputSource and read INPUT_<NAME>
// environment variables, so a step can be replayed on a laptop by
// exporting the same variables the runner would set.
package host
