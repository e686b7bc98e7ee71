package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Size   string                 `toml:"size"`
	Theme  string                 `toml:"theme"`
	Keys   Keys                   `toml:"keys"`
	Themes map[string]ThemeConfig `toml:"themes,omitempty"`
}

// Keys holds the demo key bindings, one character each
type Keys struct {
	Quit   string `toml:"quit"`
	Small  string `toml:"small"`
	Normal string `toml:"normal"`
	Toggle string `toml:"toggle"`
	Theme  string `toml:"theme"`
}

// ThemeConfig describes a custom theme by colour name or #rrggbb value
type ThemeConfig struct {
	Page   string `toml:"page"`
	CardFG string `toml:"card_fg,omitempty"`
	CardBG string `toml:"card_bg,omitempty"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		Size:  "normal",
		Theme: "transparent",
		Keys:  DefaultKeys(),
	}
}

// DefaultKeys returns the default demo key bindings
func DefaultKeys() Keys {
	return Keys{
		Quit:   "q",
		Small:  "s",
		Normal: "n",
		Toggle: "z",
		Theme:  "t",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "tuicards", "config.toml")
}

// LoadConfig loads the config file
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	// Create default config if it doesn't exist
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	config := Default()
	_, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	config.fillKeys()

	return config, nil
}

// fillKeys restores default bindings for keys left empty in the file
func (c *Config) fillKeys() {
	def := DefaultKeys()
	if c.Keys.Quit == "" {
		c.Keys.Quit = def.Quit
	}
	if c.Keys.Small == "" {
		c.Keys.Small = def.Small
	}
	if c.Keys.Normal == "" {
		c.Keys.Normal = def.Normal
	}
	if c.Keys.Toggle == "" {
		c.Keys.Toggle = def.Toggle
	}
	if c.Keys.Theme == "" {
		c.Keys.Theme = def.Theme
	}
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config file, creating its directory if needed
func Save(config *Config) error {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	// Ensure the config directory exists
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetDefaultSize sets the default card size in the config
func SetDefaultSize(size string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.Size = size
	return Save(config)
}

// SetDefaultTheme sets the default theme in the config
func SetDefaultTheme(theme string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}
	config.Theme = theme
	return Save(config)
}
