// Package todos reads the host runtime's per-session todo store. The store
// is owned entirely by the host — this package only counts pending entries
// for the status line and treats every missing or malformed input as an
// empty list.
package todos
