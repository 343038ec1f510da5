// Package audit appends a record of each envdrop run to a JSON Lines file.
//
// Recording is off unless a record path is configured (--record, or
// record in .envdrop.toml). Each line holds:
//   - Timestamp (RFC3339 with microseconds, UTC) and a random run id
//   - Operation name and final status
//   - The secret names written, the file name and the destination
//   - Recoverable failures and the terminal error, if any
//
// Secret values are never recorded.
//
// # Usage
//
//	entry := audit.NewEntry("create")
//	entry.Keys = result.Copied
//	audit.Log(settings.RecordPath, entry)
//
// # Failure Handling
//
// Recording is best-effort. If writing fails the run carries on. Malformed
// lines are skipped by ReadEntries to tolerate partial writes.
package audit
