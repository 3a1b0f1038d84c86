package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/cs-demo-processor/csdp/internal/configs"
)

const timestampFormat = "2006-01-02T15:04:05.000000Z"

// Entry represents a single history entry.
type Entry struct {
	Timestamp string `json:"ts"`     // RFC3339 with microseconds.
	RunID     string `json:"run_id"` // Unique per wizard run.
	User      string `json:"user"`   // System username.
	Operation string `json:"op"`     // Operation name.

	Written []string `json:"written,omitempty"` // Artifact paths written.
	Failed  []string `json:"failed,omitempty"`  // Artifact paths that could not be written.
}

// Time parses the entry timestamp.
func (e Entry) Time() (time.Time, error) {
	return time.Parse(timestampFormat, e.Timestamp)
}

// NewEntry creates an entry for op with the run ID and user pre-populated.
func NewEntry(op string) Entry {
	return Entry{
		RunID:     uuid.New().String(),
		User:      configs.SetupSettings.Username,
		Operation: op,
	}
}

// Log appends an entry to the history. Failures are ignored.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(timestampFormat)
	}

	logPath := LogPath()
	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
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

// LogPath returns the path to the history file.
func LogPath() string {
	return configs.SetupSettings.HistoryPath()
}

// ReadEntries reads all entries from the history.
// Returns an empty slice if the history doesn't exist.
func ReadEntries() ([]Entry, error) {
	data, err := os.ReadFile(LogPath())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// Last returns the most recent entry, or nil if the history is empty.
func Last() (*Entry, error) {
	entries, err := ReadEntries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[len(entries)-1], nil
}

// ParseEntries parses JSON Lines data into history entries.
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
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
