package audit

import (
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Status values recorded for a run.
const (
	StatusDone   = "done"
	StatusFailed = "failed"
)

// Entry represents a single run record. Secret values are never stored.
type Entry struct {
	Timestamp string `json:"ts"`     // RFC3339 with microseconds.
	RunID     string `json:"run_id"` // Random per run.
	Operation string `json:"op"`     // Operation name.
	Status    string `json:"status"` // StatusDone or StatusFailed.

	Keys        []string `json:"keys,omitempty"`        // Secret names written.
	FileName    string   `json:"file_name,omitempty"`   // e.g. production.env.
	Destination string   `json:"destination,omitempty"` // Final directory.
	Warnings    []string `json:"warnings,omitempty"`    // Recoverable failures.
	Error       string   `json:"error,omitempty"`       // Terminal failure.
}

// NewEntry returns an entry for op with a fresh run id.
func NewEntry(op string) Entry {
	return Entry{
		RunID:     uuid.NewString(),
		Operation: op,
	}
}

// Log appends an entry to the record file at logPath.
// An empty logPath disables recording. Failures are ignored: a run never
// fails because its record could not be written.
func Log(logPath string, entry Entry) {
	if logPath == "" {
		return
	}

	// Set timestamp if not already set.
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return
	}

	// #nosec G306 -- the record holds names only and is meant to be shared.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the record file.
// Returns an empty slice if the file doesn't exist.
func ReadEntries(logPath string) ([]Entry, error) {
	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				// Skip partial writes.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
