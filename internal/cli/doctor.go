package cli

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/efremidze/swift-patterns-skill/internal/config"
	"github.com/efremidze/swift-patterns-skill/internal/host"
	"github.com/efremidze/swift-patterns-skill/internal/settings"
	"github.com/efremidze/swift-patterns-skill/internal/updater"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the hook installation",
	Long:  `Run diagnostic checks on the hook registration, skill install, and version-check cache.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ok := true

		ok = checkSettings() && ok
		ok = checkSkill() && ok
		ok = checkRecord() && ok
		ok = checkNPM() && ok

		if !ok {
			fmt.Println("\nSome checks failed. Run 'install' to repair the hook registration.")
		}
		return nil
	},
}

func report(ok bool, label string, detail string) bool {
	mark := "✓"
	if !ok {
		mark = "✗"
	}
	if detail != "" {
		fmt.Printf("%s %s (%s)\n", mark, label, detail)
	} else {
		fmt.Printf("%s %s\n", mark, label)
	}
	return ok
}

func checkSettings() bool {
	path, err := host.SettingsPath()
	if err != nil {
		return report(false, "host settings", err.Error())
	}
	statusLine, hook, err := settings.Installed(path)
	if err != nil {
		return report(false, "host settings", err.Error())
	}
	ok := report(statusLine, "statusLine registered", path)
	return report(hook, "SessionStart hook registered", "") && ok
}

func checkSkill() bool {
	metadata, err := host.SkillMetadataPath()
	if err != nil {
		return report(false, "installed skill", err.Error())
	}
	version := updater.InstalledVersion(metadata)
	if version == updater.UnknownVersion {
		return report(false, "installed skill", "no readable package.json at "+metadata)
	}
	return report(true, "installed skill", "version "+version)
}

func checkRecord() bool {
	rec, err := updater.LoadRecord(config.Dir())
	if err != nil {
		return report(false, "version-check record", err.Error())
	}
	if rec == nil {
		return report(true, "version-check record", "never checked yet")
	}
	age := time.Since(rec.CheckedAt).Round(time.Minute)
	detail := fmt.Sprintf("checked %s ago", age)
	if rec.UpdateAvailable {
		detail += ", update available: " + rec.LatestVersion
	}
	return report(true, "version-check record", detail)
}

func checkNPM() bool {
	if _, err := exec.LookPath("npm"); err != nil {
		fmt.Fprintln(os.Stderr, "  npm is required for the version check; install Node.js to enable it")
		return report(false, "npm on PATH", "")
	}
	return report(true, "npm on PATH", "")
}
