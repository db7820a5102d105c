// Package config defines the centerpane configuration, loaded through
// viper from a YAML file, environment variables, and defaults. The running
// system never reads viper directly: it takes an immutable Config snapshot
// at startup and between reconcile passes, so in-flight passes see one
// consistent view.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the complete centerpane configuration.
type Config struct {
	Centering CenteringConfig `mapstructure:"centering"`
	Gutter    GutterConfig    `mapstructure:"gutter"`
	Minimap   MinimapConfig   `mapstructure:"minimap"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// CenteringConfig controls the centering engine.
type CenteringConfig struct {
	// Enabled starts the session with centering on.
	Enabled bool `mapstructure:"enabled"`
	// VisibleWidth is the target centered-column width in cells.
	VisibleWidth int `mapstructure:"visible_width"`
	// IgnoreNamePatterns are regular expressions matched against buffer
	// names; matching windows are excluded from centering.
	IgnoreNamePatterns []string `mapstructure:"ignore_name_patterns"`
	// IgnoreModeTags excludes windows whose buffer mode derives from any
	// of these tags.
	IgnoreModeTags []string `mapstructure:"ignore_mode_tags"`
	// Indicator is the status-line text shown while centering is on.
	Indicator string `mapstructure:"indicator"`
}

// GutterConfig controls the line-number collaborator.
type GutterConfig struct {
	// Enabled turns the line-number gutter on at startup.
	Enabled bool `mapstructure:"enabled"`
}

// MinimapConfig controls the minimap collaborator.
type MinimapConfig struct {
	// Enabled attaches the minimap at startup.
	Enabled bool `mapstructure:"enabled"`
}

// LoggingConfig controls debug logging.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `mapstructure:"level"`
	// Dir is the directory for debug.log; empty logs to stderr.
	Dir string `mapstructure:"dir"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Centering: CenteringConfig{
			Enabled:      true,
			VisibleWidth: 128,
			IgnoreNamePatterns: []string{
				`^ \*`, // internal buffers
			},
			IgnoreModeTags: []string{"special"},
			Indicator:      "⊜ centered",
		},
		Gutter:  GutterConfig{Enabled: true},
		Minimap: MinimapConfig{Enabled: false},
		Logging: LoggingConfig{
			Level: "info",
			Dir:   StateDir(),
		},
	}
}

// SetDefaults registers the default values with viper so they apply even
// without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("centering.enabled", defaults.Centering.Enabled)
	viper.SetDefault("centering.visible_width", defaults.Centering.VisibleWidth)
	viper.SetDefault("centering.ignore_name_patterns", defaults.Centering.IgnoreNamePatterns)
	viper.SetDefault("centering.ignore_mode_tags", defaults.Centering.IgnoreModeTags)
	viper.SetDefault("centering.indicator", defaults.Centering.Indicator)

	viper.SetDefault("gutter.enabled", defaults.Gutter.Enabled)
	viper.SetDefault("minimap.enabled", defaults.Minimap.Enabled)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)
}

// Load unmarshals and validates the current viper state.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// Get returns the current configuration, falling back to defaults when
// unmarshaling fails.
func Get() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// ConfigDir returns the user's config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "centerpane")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".centerpane"
	}
	return filepath.Join(home, ".config", "centerpane")
}

// ConfigFile returns the path to the config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// StateDir returns the directory for runtime state such as debug logs.
func StateDir() string {
	if xdg := os.Getenv("XDG_STATE_HOME"); xdg != "" {
		return filepath.Join(xdg, "centerpane")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".centerpane"
	}
	return filepath.Join(home, ".local", "state", "centerpane")
}
