// Package configs resolves envdrop's run configuration.
//
// Values come from four layers, highest priority first:
//
//  1. Command-line flags that were explicitly set
//  2. Pipeline inputs (INPUT_APP_SECRETS, INPUT_PREFIX_FILTER, ...)
//  3. .envdrop.toml in the working directory
//  4. Built-in defaults
//
// # Configuration File
//
// The optional .envdrop.toml is TOML:
//
//	filter      = "^APP_"
//	name        = "production"
//	destination = "../deploy"
//	markers     = ["package.json", "*.csproj"]
//	overwrite   = true
//	record      = ".envdrop/runs.jsonl"
//
// The secrets payload is never read from the file.
//
// # Settings
//
// Resolve returns a Settings value with absolute paths. It is computed once
// by the command and passed to the workflow, so the core logic never reads
// the process working directory itself.
package configs
