package updater

import (
	"context"
	"time"
)

// RefreshOptions bundle the collaborators and policy for a version check.
type RefreshOptions struct {
	// StateDir is where the version-check record lives.
	StateDir string
	// MetadataPath is the installed skill's package.json.
	MetadataPath string
	// Source answers registry queries.
	Source VersionSource
	// Timeout bounds the registry query.
	Timeout time.Duration
	// MaxAge is the freshness window; a younger record skips the query.
	MaxAge time.Duration
	// Force skips the freshness guard.
	Force bool
}

// Refresh performs one version check and persists the outcome.
//
// Every failure mode — unreadable metadata, unreachable registry, semver
// parse ambiguity, filesystem write failure — degrades instead of
// propagating: the existing record (if any) is left untouched and the error
// is returned only so tests and the doctor command can observe it. The hook
// command boundary discards it and exits 0 regardless.
func Refresh(ctx context.Context, opts RefreshOptions) error {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.MaxAge == 0 {
		opts.MaxAge = DefaultMaxAge
	}

	if !opts.Force {
		// Freshness guard: skip redundant registry calls when invoked more
		// often than intended. A corrupt record counts as stale.
		if rec, err := LoadRecord(opts.StateDir); err == nil && !IsRecordStale(rec, opts.MaxAge) {
			return nil
		}
	}

	current := InstalledVersion(opts.MetadataPath)

	queryCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	latest, err := opts.Source.LatestVersion(queryCtx)
	if err != nil {
		// No write on failure: the previous record stays valid and
		// checkedAt never regresses.
		return err
	}

	available := false
	if current != UnknownVersion {
		// Parse ambiguity defaults to "no update" — never falsely alarm.
		if a, err := IsUpdateAvailable(current, latest); err == nil {
			available = a
		}
	}

	rec := &Record{
		CheckedAt:       time.Now(),
		CurrentVersion:  current,
		LatestVersion:   latest,
		UpdateAvailable: available,
	}
	return SaveRecord(opts.StateDir, rec)
}
