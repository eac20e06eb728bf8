package kvstore

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file
	// (sibling to .stencil/).
	userConfigFile = ".stencilconfig.yaml"

	// Default configuration values
	DefaultTTLDays = 365
	DefaultColor   = "auto"
)

// Config represents user configuration from .stencilconfig.yaml.
// This file is user-managed and never written by stencil.
type Config struct {
	// TTLDays is how long saved entries live before they expire.
	TTLDays int `yaml:"ttl_days"`

	// Color controls ANSI color output: auto, always, or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		TTLDays: DefaultTTLDays,
		Color:   DefaultColor,
	}
}

// LoadConfig loads .stencilconfig.yaml from dir if it exists,
// otherwise returns defaults. Partial config files are merged with
// defaults.
func LoadConfig(dir string) (*Config, error) {
	configPath := filepath.Join(dir, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	return cfg, nil
}
