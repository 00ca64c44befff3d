package host

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/efremidze/swift-patterns-skill/internal/branding"
)

// File and directory names inside the host runtime's dot-directory.
const (
	TodosDir     = "todos"
	SkillsDir    = "skills"
	SettingsFile = "settings.json"
)

// Dir returns the host runtime's dot-directory (~/.claude).
// The SWIFT_PATTERNS_HOST_DIR environment variable overrides it.
func Dir() (string, error) {
	if v := os.Getenv(branding.EnvVar("HOST_DIR")); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HostDir()), nil
}

// TodosPath returns the host's per-session todo directory (~/.claude/todos).
func TodosPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, TodosDir), nil
}

// SettingsPath returns the host's settings file (~/.claude/settings.json).
func SettingsPath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SettingsFile), nil
}

// SkillPath returns the installed skill directory
// (~/.claude/skills/swift-patterns). The SWIFT_PATTERNS_SKILL_DIR
// environment variable overrides it.
func SkillPath() (string, error) {
	if v := os.Getenv(branding.EnvVar("SKILL_DIR")); v != "" {
		return v, nil
	}
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, SkillsDir, branding.SkillDir()), nil
}

// SkillMetadataPath returns the installed skill's package metadata file.
// The published package is an npm artifact, so the metadata is package.json.
func SkillMetadataPath() (string, error) {
	skill, err := SkillPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(skill, "package.json"), nil
}
