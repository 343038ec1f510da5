package utils

import "strings"

// FormatKeys joins secret names for a single log line.
func FormatKeys(keys []string) string {
	return strings.Join(keys, ", ")
}
