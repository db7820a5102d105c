package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Centering.VisibleWidth != 128 {
		t.Errorf("default visible_width = %d, want 128", cfg.Centering.VisibleWidth)
	}
	if !cfg.Centering.Enabled {
		t.Error("centering should default to enabled")
	}
	if !cfg.Gutter.Enabled {
		t.Error("gutter should default to enabled")
	}
	if cfg.Minimap.Enabled {
		t.Error("minimap should default to disabled")
	}
	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("default config should validate, got: %v", errs)
	}
}

func TestLoad_FromDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Centering.VisibleWidth != 128 {
		t.Errorf("visible_width = %d, want 128", cfg.Centering.VisibleWidth)
	}
}

func TestLoad_FromFile(t *testing.T) {
	resetViper(t)
	SetDefaults()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
centering:
  visible_width: 100
  ignore_mode_tags: ["dired"]
gutter:
  enabled: false
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	viper.SetConfigFile(path)
	if err := viper.ReadInConfig(); err != nil {
		t.Fatalf("ReadInConfig: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Centering.VisibleWidth != 100 {
		t.Errorf("visible_width = %d, want 100", cfg.Centering.VisibleWidth)
	}
	if len(cfg.Centering.IgnoreModeTags) != 1 || cfg.Centering.IgnoreModeTags[0] != "dired" {
		t.Errorf("ignore_mode_tags = %v, want [dired]", cfg.Centering.IgnoreModeTags)
	}
	if cfg.Gutter.Enabled {
		t.Error("gutter.enabled should be false from the file")
	}
	// Untouched keys keep defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level = %q, want default %q", cfg.Logging.Level, "info")
	}
}

func TestLoad_RejectsInvalidConfig(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("centering.visible_width", 0)

	if _, err := Load(); err == nil {
		t.Error("Load should reject visible_width 0")
	}
}

func TestGet_FallsBackToDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("centering.visible_width", -5)

	cfg := Get()
	if cfg.Centering.VisibleWidth != 128 {
		t.Errorf("Get should fall back to defaults, got visible_width %d",
			cfg.Centering.VisibleWidth)
	}
}
