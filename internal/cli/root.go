package cli

import (
	"os"

	"github.com/efremidze/swift-patterns-skill/internal/branding"
	"github.com/efremidze/swift-patterns-skill/internal/config"
	"github.com/efremidze/swift-patterns-skill/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` ships the executable side of the skill package: a status
line renderer and a version-check hook for the host agent runtime, plus the
commands to wire them up.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Hook commands are invoked by the host and must stay silent;
		// everything else gets a non-blocking banner from the cached
		// version check.
		switch cmd.Name() {
		case "statusline", "check-update", "update":
			return
		}
		updater.PrintBannerFromRecord(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
