// Package branding provides compile-time identity values for the CLI.
//
// The values live in branding.yaml next to this file and are baked into
// the binary with //go:embed, so a fork only needs to edit the YAML and
// rebuild.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GitHubRepo  string `yaml:"github_repo"`
	NPMPackage  string `yaml:"npm_package"`
	HostDir     string `yaml:"host_dir"`
	SkillDir    string `yaml:"skill_dir"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "swift-patterns",
			DisplayName: "Swift Patterns",
			Description: "Companion hooks for the Swift Patterns agent skill",
			HomeDir:     ".swift-patterns",
			EnvPrefix:   "SWIFT_PATTERNS",
			GitHubRepo:  "efremidze/swift-patterns-skill",
			NPMPackage:  "swift-patterns-skill",
			HostDir:     ".claude",
			SkillDir:    "swift-patterns",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "swift-patterns").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".swift-patterns").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "SWIFT_PATTERNS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GitHubRepo returns the "owner/repo" string for binary releases.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// NPMPackage returns the registry name of the published skill package.
func NPMPackage() string { load(); return defaults.NPMPackage }

// HostDir returns the host runtime's dot-directory name (e.g., ".claude").
func HostDir() string { load(); return defaults.HostDir }

// SkillDir returns the skill's directory name inside the host's skills tree.
func SkillDir() string { load(); return defaults.SkillDir }

// EnvVar returns a fully qualified env var name,
// e.g., EnvVar("HOME") → "SWIFT_PATTERNS_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
