// Package statusline renders the single line of text the host UI shows for
// a session. The renderer composes three independently-sourced, individually
// optional inputs — the JSON descriptor piped on stdin, the session's todo
// count, and the cached version-check record — and never fails: any input
// that is missing or malformed simply drops its segment from the line.
package statusline
