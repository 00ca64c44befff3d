// Package host resolves the well-known filesystem locations this CLI
// shares with the host agent runtime: the host's dot-directory (where
// settings.json and per-session todo files live) and the installed skill
// directory.
//
// Every path can be overridden through a branded environment variable
// (SWIFT_PATTERNS_HOST_DIR, SWIFT_PATTERNS_SKILL_DIR) so tests and unusual
// layouts never touch the real home directory.
package host
