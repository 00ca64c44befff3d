// Package settings registers the two hooks in the host runtime's
// settings.json: the statusLine command and a SessionStart hook running the
// version check. It edits only its own entries, preserves everything else in
// the file verbatim, and validates the fragment it is about to write against
// an embedded JSON Schema before touching the user's settings.
package settings
