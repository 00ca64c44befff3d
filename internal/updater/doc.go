// Package updater implements the two update concerns of the companion CLI.
//
// The first is the skill-package version check: a best-effort hook that asks
// the npm registry for the latest published version of the skill, compares it
// against the locally installed copy, and persists the outcome to a small
// JSON record under the CLI's state directory. The status line reads that
// record; the two rendezvous only through the file, so writes are atomic
// (temp file + rename) and readers tolerate a missing or malformed record.
//
// The second is self-update of the companion binary itself from GitHub
// releases: download, checksum verification, extraction, and in-place
// replacement of the running executable with backup and rollback.
package updater
