package cmd

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/centerpane/centerpane/internal/config"
	"github.com/centerpane/centerpane/internal/logging"
	"github.com/centerpane/centerpane/internal/tui"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch the demo pane host",
	Long: `Launch the interactive pane host. Windows split, close, and resize
with the terminal; the centering engine keeps eligible windows centered
the whole time. Press ? inside for the key bindings.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Int("width", 0, "visible column width (overrides centering.visible_width)")
	runCmd.Flags().Bool("no-gutter", false, "start without the line-number gutter")
	runCmd.Flags().Bool("centered", false, "start with centering on even if the config disables it")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	applyRunFlags(cmd, cfg)
	if errs := cfg.Validate(); len(errs) > 0 {
		return config.ValidationErrors(errs)
	}

	log, err := logging.NewLogger(cfg.Logging.Dir, cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}
	defer func() { _ = log.Close() }()

	app, err := tui.New(cfg, log)
	if err != nil {
		return err
	}

	// Reload the configuration when the file changes on disk. The watcher
	// fires on its own goroutine, so the swap is delivered as a message
	// and applied between reconcile passes inside the update loop.
	viper.OnConfigChange(func(e fsnotify.Event) {
		log.Info("config file changed", "file", e.Name, "op", e.Op.String())
		app.Send(tui.ConfigReloadedMsg{})
	})
	viper.WatchConfig()

	log.Info("starting pane host",
		"centering", cfg.Centering.Enabled,
		"visible_width", cfg.Centering.VisibleWidth)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// applyRunFlags overlays the run command's flags on the loaded config.
// Only flags the user actually set are applied.
func applyRunFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("width") {
		w, _ := cmd.Flags().GetInt("width")
		cfg.Centering.VisibleWidth = w
	}
	if cmd.Flags().Changed("no-gutter") {
		cfg.Gutter.Enabled = false
	}
	if cmd.Flags().Changed("centered") {
		cfg.Centering.Enabled = true
	}
}
