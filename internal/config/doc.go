// Package config manages the CLI's own configuration file and state
// directory (~/.swift-patterns). Configuration is read through Viper from
// config.yaml plus SWIFT_PATTERNS_* environment variables.
package config
