package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/centerpane/centerpane/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or modify centerpane configuration",
	Long: `View or modify centerpane configuration.

Without arguments, displays the current configuration.
Use subcommands to create a config file or locate it.`,
	RunE: runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a default config file",
	Long:  `Create a default config file at ~/.config/centerpane/config.yaml with all available options.`,
	RunE:  runConfigInit,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file path",
	RunE:  runConfigPath,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.Get()

	fmt.Println("Current configuration:")
	fmt.Println()
	fmt.Printf("  centering.enabled:              %v\n", cfg.Centering.Enabled)
	fmt.Printf("  centering.visible_width:        %d\n", cfg.Centering.VisibleWidth)
	fmt.Printf("  centering.ignore_name_patterns: %s\n", strings.Join(cfg.Centering.IgnoreNamePatterns, ", "))
	fmt.Printf("  centering.ignore_mode_tags:     %s\n", strings.Join(cfg.Centering.IgnoreModeTags, ", "))
	fmt.Printf("  centering.indicator:            %s\n", cfg.Centering.Indicator)
	fmt.Printf("  gutter.enabled:                 %v\n", cfg.Gutter.Enabled)
	fmt.Printf("  minimap.enabled:                %v\n", cfg.Minimap.Enabled)
	fmt.Printf("  logging.level:                  %s\n", cfg.Logging.Level)
	fmt.Printf("  logging.dir:                    %s\n", cfg.Logging.Dir)
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.ConfigFile()
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	out, err := yaml.Marshal(configFileContents())
	if err != nil {
		return fmt.Errorf("failed to render default config: %w", err)
	}
	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created config file at %s\n", path)
	return nil
}

func runConfigPath(cmd *cobra.Command, args []string) error {
	fmt.Println(config.ConfigFile())
	return nil
}

// configFileContents lays out the default config with the same keys viper
// reads back, so an untouched generated file round-trips to Default().
func configFileContents() map[string]any {
	cfg := config.Default()
	return map[string]any{
		"centering": map[string]any{
			"enabled":              cfg.Centering.Enabled,
			"visible_width":        cfg.Centering.VisibleWidth,
			"ignore_name_patterns": cfg.Centering.IgnoreNamePatterns,
			"ignore_mode_tags":     cfg.Centering.IgnoreModeTags,
			"indicator":            cfg.Centering.Indicator,
		},
		"gutter": map[string]any{
			"enabled": cfg.Gutter.Enabled,
		},
		"minimap": map[string]any{
			"enabled": cfg.Minimap.Enabled,
		},
		"logging": map[string]any{
			"level": cfg.Logging.Level,
			"dir":   cfg.Logging.Dir,
		},
	}
}
