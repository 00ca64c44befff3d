package updater

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	recordFileName = "version-check.json"
	// DefaultMaxAge is the default maximum age for a version-check record.
	DefaultMaxAge = 24 * time.Hour
)

// Record holds the persisted outcome of the most recent registry check.
// Every field is optional on read; consumers substitute zero values.
type Record struct {
	CheckedAt       time.Time `json:"checkedAt"`
	CurrentVersion  string    `json:"currentVersion"`
	LatestVersion   string    `json:"latestVersion,omitempty"`
	UpdateAvailable bool      `json:"updateAvailable"`
}

// RecordPath returns the record file location inside stateDir.
func RecordPath(stateDir string) string {
	return filepath.Join(stateDir, recordFileName)
}

// LoadRecord reads the version-check record from the state directory.
// Returns nil, nil if the record file does not exist (never checked).
func LoadRecord(stateDir string) (*Record, error) {
	data, err := os.ReadFile(RecordPath(stateDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version-check record: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("parsing version-check record: %w", err)
	}
	return &rec, nil
}

// SaveRecord writes the record atomically: marshal, write to a temp file in
// the same directory, then rename over the old record. A concurrent reader
// sees either the previous complete record or the new one, never a partial
// write.
func SaveRecord(stateDir string, rec *Record) error {
	if err := os.MkdirAll(stateDir, 0755); err != nil {
		return fmt.Errorf("creating state directory: %w", err)
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version-check record: %w", err)
	}

	tmp, err := os.CreateTemp(stateDir, recordFileName+".*")
	if err != nil {
		return fmt.Errorf("creating temp record: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp record: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp record: %w", err)
	}

	if err := os.Rename(tmpPath, RecordPath(stateDir)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("installing version-check record: %w", err)
	}
	return nil
}

// IsRecordStale returns true if the record is older than maxAge or nil.
func IsRecordStale(rec *Record, maxAge time.Duration) bool {
	if rec == nil {
		return true
	}
	return time.Since(rec.CheckedAt) > maxAge
}
