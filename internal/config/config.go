package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the TUI configuration from config.toml
type Config struct {
	API struct {
		URL     string `toml:"url"`     // Base URL of the todo service, empty uses the default
		Timeout int    `toml:"timeout"` // Request timeout in seconds
	} `toml:"api"`
	TUI struct {
		Theme string `toml:"theme"` // "clean_cyber" or "monokai_pro"
	} `toml:"tui"`
}

// LoadConfig loads configuration from the standard XDG config path with sensible defaults
func LoadConfig() (*Config, error) {
	// Get config directory using XDG_CONFIG_HOME or fallback
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(home, ".config")
	}

	configPath := filepath.Join(configDir, "tododeck", "config.toml")

	// Initialize config with defaults
	config := &Config{}
	config.API.Timeout = 10
	config.TUI.Theme = "clean_cyber"

	// Read config file if it exists
	if _, err := os.Stat(configPath); err == nil {
		configData, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		// Parse TOML config, merging with defaults
		if err := toml.Unmarshal(configData, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if config.API.Timeout <= 0 {
		config.API.Timeout = 10
	}

	return config, nil
}
