package updater

import (
	"fmt"
	"io"

	"github.com/efremidze/swift-patterns-skill/internal/branding"
)

// PrintBannerFromRecord prints an update notice for interactive commands
// when the cached version check says a newer skill package exists. It reads
// only the record on disk — the check-update hook owns refreshing it — so
// it never blocks on the network. Record errors are silently ignored.
func PrintBannerFromRecord(w io.Writer, stateDir string) {
	rec, err := LoadRecord(stateDir)
	if err != nil || rec == nil || !rec.UpdateAvailable {
		return
	}
	fmt.Fprintf(w, "\nSkill update available: %s -> %s\n", rec.CurrentVersion, rec.LatestVersion)
	fmt.Fprintf(w, "    Run `npm update -g %s` to upgrade\n\n", branding.NPMPackage())
}
