package updater

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// fakeSource is a scripted VersionSource for exercising Refresh without a
// registry.
type fakeSource struct {
	version string
	err     error
	calls   int
}

func (f *fakeSource) LatestVersion(ctx context.Context) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.version, nil
}

// blockingSource never answers; it waits for the context to expire.
type blockingSource struct{}

func (blockingSource) LatestVersion(ctx context.Context) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func writeMetadata(t *testing.T, dir, version string) string {
	t.Helper()
	path := filepath.Join(dir, "package.json")
	if err := os.WriteFile(path, []byte(`{"name":"skill","version":"`+version+`"}`), 0644); err != nil {
		t.Fatalf("writing metadata: %v", err)
	}
	return path
}

func TestRefresh_WritesRecord(t *testing.T) {
	tmp := t.TempDir()
	metadata := writeMetadata(t, tmp, "1.0.0")
	src := &fakeSource{version: "1.1.0"}

	err := Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: metadata,
		Source:       src,
	})
	if err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	rec, err := LoadRecord(tmp)
	if err != nil {
		t.Fatalf("LoadRecord failed: %v", err)
	}
	if rec == nil {
		t.Fatal("expected a record to be written")
	}
	if rec.CurrentVersion != "1.0.0" {
		t.Errorf("CurrentVersion = %q, want %q", rec.CurrentVersion, "1.0.0")
	}
	if rec.LatestVersion != "1.1.0" {
		t.Errorf("LatestVersion = %q, want %q", rec.LatestVersion, "1.1.0")
	}
	if !rec.UpdateAvailable {
		t.Error("UpdateAvailable should be true for 1.0.0 -> 1.1.0")
	}
	if rec.CheckedAt.IsZero() {
		t.Error("CheckedAt should be set")
	}
}

func TestRefresh_NoUpdateOnLatest(t *testing.T) {
	tmp := t.TempDir()
	metadata := writeMetadata(t, tmp, "1.1.0")
	src := &fakeSource{version: "1.1.0"}

	if err := Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: metadata,
		Source:       src,
	}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	rec, _ := LoadRecord(tmp)
	if rec.UpdateAvailable {
		t.Error("UpdateAvailable should be false when already on latest")
	}
}

func TestRefresh_RegistryFailureLeavesRecord(t *testing.T) {
	tmp := t.TempDir()
	metadata := writeMetadata(t, tmp, "1.0.0")

	// Seed a stale record, then fail the registry query.
	previous := &Record{
		CheckedAt:       time.Now().Add(-48 * time.Hour),
		CurrentVersion:  "0.9.0",
		LatestVersion:   "1.0.0",
		UpdateAvailable: true,
	}
	if err := SaveRecord(tmp, previous); err != nil {
		t.Fatalf("seeding record: %v", err)
	}
	before, err := os.ReadFile(RecordPath(tmp))
	if err != nil {
		t.Fatalf("reading seeded record: %v", err)
	}

	src := &fakeSource{err: errors.New("registry unreachable")}
	err = Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: metadata,
		Source:       src,
	})
	if err == nil {
		t.Error("expected error from failed registry query")
	}

	after, err := os.ReadFile(RecordPath(tmp))
	if err != nil {
		t.Fatalf("reading record after failure: %v", err)
	}
	if string(before) != string(after) {
		t.Error("failed refresh must leave the previous record untouched")
	}
}

func TestRefresh_FreshRecordSkipsQuery(t *testing.T) {
	tmp := t.TempDir()
	metadata := writeMetadata(t, tmp, "1.0.0")

	if err := SaveRecord(tmp, &Record{
		CheckedAt:      time.Now(),
		CurrentVersion: "1.0.0",
	}); err != nil {
		t.Fatalf("seeding record: %v", err)
	}

	src := &fakeSource{version: "2.0.0"}
	if err := Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: metadata,
		Source:       src,
	}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if src.calls != 0 {
		t.Errorf("registry queried %d times despite fresh record", src.calls)
	}
}

func TestRefresh_ForceBypassesFreshness(t *testing.T) {
	tmp := t.TempDir()
	metadata := writeMetadata(t, tmp, "1.0.0")

	if err := SaveRecord(tmp, &Record{
		CheckedAt:      time.Now(),
		CurrentVersion: "1.0.0",
	}); err != nil {
		t.Fatalf("seeding record: %v", err)
	}

	src := &fakeSource{version: "1.1.0"}
	if err := Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: metadata,
		Source:       src,
		Force:        true,
	}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if src.calls != 1 {
		t.Errorf("registry queried %d times, want 1", src.calls)
	}
	rec, _ := LoadRecord(tmp)
	if !rec.UpdateAvailable {
		t.Error("forced refresh should have recorded the available update")
	}
}

func TestRefresh_CorruptRecordCountsAsStale(t *testing.T) {
	tmp := t.TempDir()
	metadata := writeMetadata(t, tmp, "1.0.0")
	os.WriteFile(RecordPath(tmp), []byte("{broken"), 0644)

	src := &fakeSource{version: "1.1.0"}
	if err := Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: metadata,
		Source:       src,
	}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	if src.calls != 1 {
		t.Errorf("corrupt record should not satisfy the freshness guard (calls = %d)", src.calls)
	}
	rec, err := LoadRecord(tmp)
	if err != nil {
		t.Fatalf("record still corrupt after refresh: %v", err)
	}
	if rec.LatestVersion != "1.1.0" {
		t.Errorf("LatestVersion = %q, want %q", rec.LatestVersion, "1.1.0")
	}
}

func TestRefresh_UnknownCurrentVersion(t *testing.T) {
	tmp := t.TempDir()
	src := &fakeSource{version: "1.1.0"}

	// MetadataPath points nowhere; the check still runs and records the
	// latest version, but never claims an update it cannot substantiate.
	if err := Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: filepath.Join(tmp, "missing", "package.json"),
		Source:       src,
	}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	rec, _ := LoadRecord(tmp)
	if rec.CurrentVersion != UnknownVersion {
		t.Errorf("CurrentVersion = %q, want %q", rec.CurrentVersion, UnknownVersion)
	}
	if rec.UpdateAvailable {
		t.Error("UpdateAvailable must be false when the current version is unknown")
	}
}

func TestRefresh_UnparseableLatestVersion(t *testing.T) {
	tmp := t.TempDir()
	metadata := writeMetadata(t, tmp, "1.0.0")
	src := &fakeSource{version: "not-semver"}

	if err := Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: metadata,
		Source:       src,
	}); err != nil {
		t.Fatalf("Refresh failed: %v", err)
	}

	rec, _ := LoadRecord(tmp)
	if rec.UpdateAvailable {
		t.Error("parse ambiguity must default to no update")
	}
	if rec.LatestVersion != "not-semver" {
		t.Errorf("LatestVersion = %q, want the raw registry answer", rec.LatestVersion)
	}
}

func TestRefresh_TimeoutBoundsQuery(t *testing.T) {
	tmp := t.TempDir()
	metadata := writeMetadata(t, tmp, "1.0.0")

	start := time.Now()
	err := Refresh(context.Background(), RefreshOptions{
		StateDir:     tmp,
		MetadataPath: metadata,
		Source:       blockingSource{},
		Timeout:      50 * time.Millisecond,
	})
	if err == nil {
		t.Error("expected timeout error from blocking source")
	}
	if elapsed := time.Since(start); elapsed > 5*time.Second {
		t.Errorf("refresh took %v, timeout not enforced", elapsed)
	}

	if rec, _ := LoadRecord(tmp); rec != nil {
		t.Error("timed-out refresh must not write a record")
	}
}
