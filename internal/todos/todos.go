package todos

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Item is a single todo entry as the host writes it. Only the fields the
// status line needs are decoded; everything else passes through unharmed.
type Item struct {
	Content string `json:"content"`
	Status  string `json:"status"`
}

// Statuses that count as outstanding work.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
)

// Source answers "how many tasks are still open for this session".
// The filesystem implementation is Store; tests inject fakes.
type Source interface {
	PendingCount(sessionID string) (int, error)
}

// Store reads todo files from the host's todo directory. Files are named
// with the session ID as prefix (the host appends agent suffixes), one JSON
// document per file.
type Store struct {
	// Dir is the host's todo directory (~/.claude/todos).
	Dir string
}

// PendingCount sums pending and in-progress entries across every todo file
// belonging to the session. A missing directory, unreadable file, or
// malformed document contributes zero — identical to "no tasks".
func (s Store) PendingCount(sessionID string) (int, error) {
	if sessionID == "" {
		return 0, nil
	}

	matches, err := filepath.Glob(filepath.Join(s.Dir, sessionID+"*.json"))
	if err != nil {
		return 0, err
	}

	count := 0
	for _, path := range matches {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		for _, item := range decodeItems(data) {
			if item.Status == StatusPending || item.Status == StatusInProgress {
				count++
			}
		}
	}
	return count, nil
}

// decodeItems accepts both document shapes seen in the wild: a bare JSON
// array of items, or an object wrapping the array under "todos".
func decodeItems(data []byte) []Item {
	var items []Item
	if err := json.Unmarshal(data, &items); err == nil {
		return items
	}

	var wrapped struct {
		Todos []Item `json:"todos"`
	}
	if err := json.Unmarshal(data, &wrapped); err == nil {
		return wrapped.Todos
	}
	return nil
}
