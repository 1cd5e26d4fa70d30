// Package config holds guestgate configuration from .guestgate/config.json.
// This is the single source of truth for configuration.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config is the persisted application configuration.
type Config struct {
	// Locale selects the translation set ("en", "de", ...).
	Locale string `json:"locale,omitempty"`

	// Theme for the TUI ("light" or "dark").
	Theme string `json:"theme,omitempty"`

	// DataDir overrides where the settings database lives.
	// Defaults to .guestgate/ in the workspace root.
	DataDir string `json:"data_dir,omitempty"`

	// LocaleDir, when set, is watched for locale file edits.
	LocaleDir string `json:"locale_dir,omitempty"`

	// Haptics selects the feedback implementation ("noop", "logged").
	Haptics string `json:"haptics,omitempty"`

	// Logging configuration.
	Logging *LoggingConfig `json:"logging,omitempty"`
}

// LoggingConfig mirrors the logging package's expectations.
type LoggingConfig struct {
	DebugMode  bool            `json:"debug_mode"`
	Level      string          `json:"level,omitempty"`
	Categories map[string]bool `json:"categories,omitempty"`
}

// GetLocale returns the configured locale, defaulting to "en".
func (c *Config) GetLocale() string {
	if c.Locale == "" {
		return "en"
	}
	return c.Locale
}

// GetTheme returns the configured theme, defaulting to "dark".
func (c *Config) GetTheme() string {
	if c.Theme == "" {
		return "dark"
	}
	return c.Theme
}

// GetHaptics returns the configured haptics kind, defaulting to "logged".
func (c *Config) GetHaptics() string {
	if c.Haptics == "" {
		return "logged"
	}
	return c.Haptics
}

// GetDataDir returns the data directory, defaulting to <root>/.guestgate.
func (c *Config) GetDataDir(root string) string {
	if c.DataDir != "" {
		return c.DataDir
	}
	return filepath.Join(root, ".guestgate")
}

// GetLogging returns logging settings with defaults.
func (c *Config) GetLogging() LoggingConfig {
	if c.Logging != nil {
		cfg := *c.Logging
		if cfg.Level == "" {
			cfg.Level = "info"
		}
		return cfg
	}
	return LoggingConfig{
		Level:     "info",
		DebugMode: false, // Production mode by default
	}
}

// applyEnvOverrides lets environment variables win over file values.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("GUESTGATE_LOCALE"); v != "" {
		c.Locale = v
	}
	if v := os.Getenv("GUESTGATE_THEME"); v != "" {
		c.Theme = v
	}
	if v := os.Getenv("GUESTGATE_DEBUG"); v != "" {
		if c.Logging == nil {
			c.Logging = &LoggingConfig{}
		}
		c.Logging.DebugMode = v == "1" || v == "true"
	}
}

// DefaultConfigPath returns the default path to .guestgate/config.json.
func DefaultConfigPath() string {
	root, err := FindWorkspaceRoot()
	if err != nil {
		return filepath.Join(".guestgate", "config.json")
	}
	return filepath.Join(root, ".guestgate", "config.json")
}

// FindWorkspaceRoot walks up from the working directory looking for a
// .guestgate dir or go.mod. Falls back to the working directory itself.
func FindWorkspaceRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	originalDir := dir
	for {
		if _, err := os.Stat(filepath.Join(dir, ".guestgate")); err == nil {
			return dir, nil
		}
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return originalDir, nil
}

// Load reads configuration from the given path. A missing file yields an
// empty config whose Get* methods supply defaults. Environment overrides
// are applied either way.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to the given path, creating the directory.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
