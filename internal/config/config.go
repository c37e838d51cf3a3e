// Package config loads and saves the cspend TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// Config holds all cspend configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
	Export     ExportConfig     `toml:"export"`
	Log        LogConfig        `toml:"log"`
}

// GeneralConfig holds session defaults.
type GeneralConfig struct {
	DefaultBudget *float64 `toml:"default_budget,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// ExportConfig controls the SQLite session archive. An empty path disables it.
type ExportConfig struct {
	Path string `toml:"path,omitempty"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "cspend")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "cspend")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultExportPath is suggested by the setup wizard.
func DefaultExportPath() string {
	return filepath.Join(Dir(), "history.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	if err := os.MkdirAll(Dir(), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// GetDefaultBudget returns the budget input from CSPEND_BUDGET or the config, in that
// order. The result is raw input; an empty string means "ask".
func GetDefaultBudget(cfg Config) string {
	if v := os.Getenv("CSPEND_BUDGET"); v != "" {
		return v
	}
	if cfg.General.DefaultBudget != nil {
		return strconv.FormatFloat(*cfg.General.DefaultBudget, 'f', -1, 64)
	}
	return ""
}

// GetTheme returns the theme from CSPEND_THEME or the config.
func GetTheme(cfg Config) string {
	if v := os.Getenv("CSPEND_THEME"); v != "" {
		return v
	}
	return cfg.Appearance.Theme
}

// GetExportPath returns the archive path from CSPEND_EXPORT or the config.
func GetExportPath(cfg Config) string {
	if v := os.Getenv("CSPEND_EXPORT"); v != "" {
		return v
	}
	return cfg.Export.Path
}
