package cli

import (
	"fmt"
	"os"

	"github.com/efremidze/swift-patterns-skill/internal/branding"
	"github.com/efremidze/swift-patterns-skill/internal/host"
	"github.com/efremidze/swift-patterns-skill/internal/settings"
	"github.com/spf13/cobra"
)

var installBinary string

func init() {
	installCmd.Flags().StringVar(&installBinary, "binary", "", "Command name or path to register (defaults to this executable)")
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Register the statusline and version-check hooks with the host",
	Long: `Writes the statusLine command and a SessionStart hook into the host
runtime's settings.json. Existing settings are preserved; the previous file
is kept as settings.json.backup.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		binary, err := resolveBinary()
		if err != nil {
			return err
		}
		path, err := host.SettingsPath()
		if err != nil {
			return err
		}

		if err := settings.Install(path, binary); err != nil {
			return fmt.Errorf("installing hooks: %w", err)
		}

		fmt.Printf("Registered %s hooks in %s\n", branding.DisplayName(), path)
		return nil
	},
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the hooks from the host settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := host.SettingsPath()
		if err != nil {
			return err
		}

		if err := settings.Uninstall(path); err != nil {
			return fmt.Errorf("removing hooks: %w", err)
		}

		fmt.Printf("Removed %s hooks from %s\n", branding.DisplayName(), path)
		return nil
	},
}

// resolveBinary prefers an explicit --binary, then the running executable.
func resolveBinary() (string, error) {
	if installBinary != "" {
		return installBinary, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("finding current binary: %w", err)
	}
	return exe, nil
}
