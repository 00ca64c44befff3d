// Package cli defines the cobra command tree. The statusline and
// check-update commands are the hook entry points invoked by the host
// runtime and always exit 0; the remaining commands (install, doctor,
// update, version) are the interactive surface for the user.
package cli
