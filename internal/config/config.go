package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/efremidze/swift-patterns-skill/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys recognized in config.yaml and as SWIFT_PATTERNS_* env vars.
const (
	KeyUpdateInterval  = "update.interval_hours"
	KeyRegistryTimeout = "update.registry_timeout_seconds"
	KeyUpdatePackage   = "update.package"
	KeyTodosSegment    = "statusline.todos"
	KeyUpdateSegment   = "statusline.update_indicator"
	KeyMirror          = "mirror"
)

// Dir returns the path to the CLI's state directory (~/.swift-patterns).
// The SWIFT_PATTERNS_HOME environment variable overrides it.
func Dir() string {
	if v := os.Getenv(branding.EnvVar("HOME")); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.swift-patterns/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the state directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating state directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyUpdateInterval, 24)
	viper.SetDefault(KeyRegistryTimeout, 10)
	viper.SetDefault(KeyUpdatePackage, branding.NPMPackage())
	viper.SetDefault(KeyTodosSegment, true)
	viper.SetDefault(KeyUpdateSegment, true)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// GetBool returns a boolean config value by key.
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// UpdateInterval returns how long a version-check record stays fresh.
func UpdateInterval() time.Duration {
	return time.Duration(viper.GetInt(KeyUpdateInterval)) * time.Hour
}

// RegistryTimeout returns the bounded wait for the registry query.
func RegistryTimeout() time.Duration {
	return time.Duration(viper.GetInt(KeyRegistryTimeout)) * time.Second
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
