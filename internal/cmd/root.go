// Package cmd wires the command-line surface: cobra commands, viper
// configuration loading, and the handoff into the TUI host.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/centerpane/centerpane/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "centerpane",
	Short: "Auto-centering margin engine for a multi-window pane host",
	Long: `Centerpane keeps editable windows horizontally centered by widening
their side margins, while leaving minimaps, switch labels, and other
special windows alone. The run command launches a demo pane host that
exercises the engine interactively.`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.config/centerpane/config.yaml)")
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
}

func initConfig() {
	// Set defaults first so they're available even without a config file
	config.SetDefaults()

	if cfgFile := viper.GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(config.ConfigDir())
		viper.AddConfigPath("$HOME/.config/centerpane")
		viper.AddConfigPath(".")
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("CENTERPANE")
	// Replace dots with underscores for nested keys in env vars
	// e.g., CENTERPANE_CENTERING_VISIBLE_WIDTH for centering.visible_width
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read config file if it exists (ignore error if not found)
	_ = viper.ReadInConfig()
}
