package todos

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestPendingCount_BareArray(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "sess1.json", `[
		{"content":"write tests","status":"pending"},
		{"content":"refactor","status":"in_progress"},
		{"content":"ship","status":"completed"}
	]`)

	n, err := Store{Dir: tmp}.PendingCount("sess1")
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if n != 2 {
		t.Errorf("PendingCount = %d, want 2", n)
	}
}

func TestPendingCount_WrappedObject(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "sess1.json", `{"todos":[
		{"content":"write tests","status":"pending"},
		{"content":"ship","status":"completed"}
	]}`)

	n, err := Store{Dir: tmp}.PendingCount("sess1")
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if n != 1 {
		t.Errorf("PendingCount = %d, want 1", n)
	}
}

func TestPendingCount_MultipleFilesPerSession(t *testing.T) {
	// The host writes one file per agent, all prefixed with the session ID.
	tmp := t.TempDir()
	writeFile(t, tmp, "sess1-agent-a.json", `[{"content":"a","status":"pending"}]`)
	writeFile(t, tmp, "sess1-agent-b.json", `[{"content":"b","status":"in_progress"}]`)
	writeFile(t, tmp, "sess2-agent-a.json", `[{"content":"other session","status":"pending"}]`)

	n, err := Store{Dir: tmp}.PendingCount("sess1")
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if n != 2 {
		t.Errorf("PendingCount = %d, want 2 (sess2 must not leak in)", n)
	}
}

func TestPendingCount_MissingDir(t *testing.T) {
	n, err := Store{Dir: filepath.Join(t.TempDir(), "nope")}.PendingCount("sess1")
	if err != nil {
		t.Fatalf("missing directory should not error: %v", err)
	}
	if n != 0 {
		t.Errorf("PendingCount = %d, want 0", n)
	}
}

func TestPendingCount_MalformedFileContributesZero(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "sess1-a.json", `{broken`)
	writeFile(t, tmp, "sess1-b.json", `[{"content":"valid","status":"pending"}]`)

	n, err := Store{Dir: tmp}.PendingCount("sess1")
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if n != 1 {
		t.Errorf("PendingCount = %d, want 1 (malformed file counts as empty)", n)
	}
}

func TestPendingCount_EmptySessionID(t *testing.T) {
	tmp := t.TempDir()
	writeFile(t, tmp, "sess1.json", `[{"content":"x","status":"pending"}]`)

	n, err := Store{Dir: tmp}.PendingCount("")
	if err != nil {
		t.Fatalf("PendingCount failed: %v", err)
	}
	if n != 0 {
		t.Errorf("empty session ID must match nothing, got %d", n)
	}
}

func TestPendingCount_StatusFiltering(t *testing.T) {
	tests := []struct {
		status string
		counts bool
	}{
		{StatusPending, true},
		{StatusInProgress, true},
		{"completed", false},
		{"canceled", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			tmp := t.TempDir()
			writeFile(t, tmp, "s.json", `[{"content":"x","status":"`+tt.status+`"}]`)

			n, err := Store{Dir: tmp}.PendingCount("s")
			if err != nil {
				t.Fatalf("PendingCount failed: %v", err)
			}
			want := 0
			if tt.counts {
				want = 1
			}
			if n != want {
				t.Errorf("PendingCount = %d, want %d", n, want)
			}
		})
	}
}
