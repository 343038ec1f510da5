// Package secrets turns a secrets payload into a relocated dotenv file.
//
// The pipeline stages live here as plain functions so the workflow can
// sequence them and tests can drive each one on its own:
//
//  1. ParsePayload decodes a JSON object into an ordered SecretMap
//  2. Filter masks every value, then keeps names matching a pattern
//  3. FormatEnv / WriteEnvFile render KEY = "VALUE" lines ending in CRLF
//  4. MoveFile relocates the file into its destination directory
//
// # Ordering
//
// SecretMap keeps payload order. The env file and the JSON output both use
// that order, so the same payload always yields the same bytes.
//
// # Masking
//
// Filter takes a Masker and registers each value before the name is
// compared. Values of secrets that are filtered out are masked as well.
//
// # File Format
//
// Lines look like:
//
//	API_KEY = "abc123"\r\n
//
// Values are not escaped. A value containing a double quote produces a
// line most dotenv parsers will reject.
//
// # Relocation
//
// MoveFile prefers rename. When source and destination are on different
// filesystems it copies and removes the source, so the file never ends up
// in both places. Failures are returned as *errors.MoveError.
package secrets
