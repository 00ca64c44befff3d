package updater

import (
	"encoding/json"
	"os"
	"strings"
)

// UnknownVersion is recorded when the installed skill version cannot be
// determined. The refresh still runs; comparison against it simply reports
// no update.
const UnknownVersion = "unknown"

// InstalledVersion reads the skill version from the installed package
// metadata file (package.json). A missing or unparseable file degrades to
// UnknownVersion rather than failing the check.
func InstalledVersion(metadataPath string) string {
	data, err := os.ReadFile(metadataPath)
	if err != nil {
		return UnknownVersion
	}

	var meta struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &meta); err != nil {
		return UnknownVersion
	}

	version := strings.TrimSpace(meta.Version)
	if version == "" {
		return UnknownVersion
	}
	return version
}
