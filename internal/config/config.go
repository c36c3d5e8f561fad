// Package config loads and persists the Lumen configuration document.
//
// The document is YAML with a version field. Theme colors and hotkeys are
// read-only inputs for the rendering and hotkey collaborators; the query
// pipeline itself consumes the search, currency, and inventory sections.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"

	lerrors "github.com/lumen-sh/lumen/internal/errors"
)

// CurrentVersion is the config schema version written by this build.
const CurrentVersion = 1

// Config is the complete Lumen configuration.
type Config struct {
	Version   int             `yaml:"version"`
	UI        UIConfig        `yaml:"ui"`
	Hotkeys   HotkeysConfig   `yaml:"hotkeys"`
	Search    SearchConfig    `yaml:"search"`
	Currency  CurrencyConfig  `yaml:"currency"`
	Inventory InventoryConfig `yaml:"inventory"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// UIConfig holds theme settings consumed by the launcher shell.
type UIConfig struct {
	Background     string  `yaml:"background"`
	TextColor      string  `yaml:"text_color"`
	SelectionBg    string  `yaml:"selection_bg"`
	SelectionText  string  `yaml:"selection_text"`
	BorderColor    string  `yaml:"border_color"`
	HighlightColor string  `yaml:"highlight_color"`
	FontSize       float64 `yaml:"font_size"`
}

// HotkeysConfig holds global hotkey bindings for the host shell.
// The query pipeline never reads these; they are carried for the
// hotkey collaborator.
type HotkeysConfig struct {
	LauncherKey string `yaml:"launcher_key"`
	SettingsKey string `yaml:"settings_key"`
	Enabled     bool   `yaml:"enabled"`
}

// SearchConfig tunes result presentation and the file-search helper.
type SearchConfig struct {
	// ResultLimit caps ranked application matches (default: 8).
	ResultLimit int `yaml:"result_limit"`
	// FileSearchDirs overrides the well-known user directories scanned by
	// the file: interpreter. Empty means the default set.
	FileSearchDirs []string `yaml:"file_search_dirs"`
}

// CurrencyConfig configures the exchange-rate lookup.
type CurrencyConfig struct {
	// PrimaryURL is the base URL of the primary rate endpoint.
	PrimaryURL string `yaml:"primary_url"`
	// FallbackURL is the base URL of the fallback rate endpoint, used only
	// when the primary transport itself fails.
	FallbackURL string `yaml:"fallback_url"`
	// Timeout bounds a single lookup (duration string, default "1500ms").
	Timeout string `yaml:"timeout"`
	// MinProbeInterval rate-limits outbound lookups across keystrokes
	// (duration string, default "500ms"; "0" disables limiting).
	MinProbeInterval string `yaml:"min_probe_interval"`
}

// InventoryConfig tunes application inventory construction.
type InventoryConfig struct {
	// ExtraDirs are additional directories scanned for launchable entries.
	ExtraDirs []string `yaml:"extra_dirs"`
	// Exclude lists glob patterns; entries whose name matches any pattern
	// are dropped from the inventory.
	Exclude []string `yaml:"exclude"`
}

// LoggingConfig configures file logging.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		UI: UIConfig{
			Background:     "#2d2d30",
			TextColor:      "#ffffff",
			SelectionBg:    "#0078d4",
			SelectionText:  "#ffffff",
			BorderColor:    "#3e3e42",
			HighlightColor: "#0078d4",
			FontSize:       16,
		},
		Hotkeys: HotkeysConfig{
			LauncherKey: "Alt+Space",
			SettingsKey: "Alt+Shift+S",
			Enabled:     true,
		},
		Search: SearchConfig{
			ResultLimit: 8,
		},
		Currency: CurrencyConfig{
			PrimaryURL:       "https://api.exchangerate-api.com",
			FallbackURL:      "https://api.frankfurter.app",
			Timeout:          "1500ms",
			MinProbeInterval: "500ms",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns the default config file location.
// Honors XDG_CONFIG_HOME, falling back to ~/.config/lumen/config.yaml.
func DefaultPath() string {
	if cfgDir := os.Getenv("XDG_CONFIG_HOME"); cfgDir != "" {
		return filepath.Join(cfgDir, "lumen", "config.yaml")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "lumen", "config.yaml")
	}
	return filepath.Join(home, ".config", "lumen", "config.yaml")
}

// Load reads the config file at path, filling unset fields from defaults.
// A missing file is not an error: the defaults are returned so a fresh
// install launches without any setup.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, lerrors.New(lerrors.ErrCodeConfigPermission, fmt.Sprintf("read config %s", path), err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, lerrors.New(lerrors.ErrCodeConfigInvalid, fmt.Sprintf("parse config %s", path), err)
	}
	if cfg.Version == 0 {
		cfg.Version = CurrentVersion
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config atomically (temp file + rename).
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return lerrors.New(lerrors.ErrCodeConfigInvalid, "encode config", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return lerrors.New(lerrors.ErrCodeConfigPermission, "create config directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".config-*.yaml")
	if err != nil {
		return lerrors.New(lerrors.ErrCodeConfigPermission, "create temp config", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return lerrors.New(lerrors.ErrCodeConfigPermission, "write temp config", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return lerrors.New(lerrors.ErrCodeConfigPermission, "close temp config", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return lerrors.New(lerrors.ErrCodeConfigPermission, "replace config", err)
	}
	return nil
}

// Validate checks field ranges and pattern syntax.
func (c *Config) Validate() error {
	if c.Search.ResultLimit < 1 || c.Search.ResultLimit > 50 {
		return lerrors.ConfigError(
			fmt.Sprintf("search.result_limit must be in [1,50], got %d", c.Search.ResultLimit), nil)
	}
	if c.Currency.PrimaryURL == "" {
		return lerrors.ConfigError("currency.primary_url must not be empty", nil)
	}
	if _, err := c.Currency.LookupTimeout(); err != nil {
		return lerrors.ConfigError("currency.timeout is not a valid duration", err)
	}
	if _, err := c.Currency.ProbeInterval(); err != nil {
		return lerrors.ConfigError("currency.min_probe_interval is not a valid duration", err)
	}
	for _, pattern := range c.Inventory.Exclude {
		if _, err := glob.Compile(pattern); err != nil {
			return lerrors.ConfigError(fmt.Sprintf("inventory.exclude pattern %q is invalid", pattern), err)
		}
	}
	return nil
}

// LookupTimeout parses the currency lookup timeout.
func (c CurrencyConfig) LookupTimeout() (time.Duration, error) {
	if c.Timeout == "" || c.Timeout == "0" {
		return 1500 * time.Millisecond, nil
	}
	return time.ParseDuration(c.Timeout)
}

// ProbeInterval parses the minimum interval between rate probes.
// "0" (or empty after an explicit set) disables limiting.
func (c CurrencyConfig) ProbeInterval() (time.Duration, error) {
	if c.MinProbeInterval == "" || c.MinProbeInterval == "0" {
		return 0, nil
	}
	return time.ParseDuration(c.MinProbeInterval)
}
