// Package utils provides shared utility functions for envdrop.
//
// # Filesystem Utilities
//
//   - FindManifestRoot: walks up directories to the nearest package manifest
//   - ResolveDirectory: makes a configured directory absolute
//
// # String Utilities
//
//   - FormatKeys: joins secret names for log lines
//
// # I/O Utilities
//
//   - ReadStdin: reads a piped secrets payload
//
// # Terminal Utilities
//
//   - IsTerminal, IsStdoutTerminal: terminal detection
package utils
