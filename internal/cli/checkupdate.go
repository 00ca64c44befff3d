package cli

import (
	"github.com/efremidze/swift-patterns-skill/internal/config"
	"github.com/efremidze/swift-patterns-skill/internal/host"
	"github.com/efremidze/swift-patterns-skill/internal/updater"
	"github.com/spf13/cobra"
)

var checkUpdateForce bool

func init() {
	checkUpdateCmd.Flags().BoolVar(&checkUpdateForce, "force", false, "Query the registry even if the cached check is fresh")
	rootCmd.AddCommand(checkUpdateCmd)
}

var checkUpdateCmd = &cobra.Command{
	Use:    "check-update",
	Short:  "Refresh the cached skill version check",
	Hidden: true,
	Run: func(cmd *cobra.Command, args []string) {
		opts := updater.RefreshOptions{
			StateDir: config.Dir(),
			Source:   updater.NPMRegistry{Package: config.Get(config.KeyUpdatePackage)},
			Timeout:  config.RegistryTimeout(),
			MaxAge:   config.UpdateInterval(),
			Force:    checkUpdateForce,
		}
		if metadata, err := host.SkillMetadataPath(); err == nil {
			opts.MetadataPath = metadata
		}

		// Best-effort hook: failures leave the previous record in place
		// and are deliberately not reported back to the host.
		_ = updater.Refresh(cmd.Context(), opts)
	},
}
