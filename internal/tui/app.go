package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/centerpane/centerpane/internal/config"
	"github.com/centerpane/centerpane/internal/logging"
)

// App wraps the Bubbletea program
type App struct {
	program *tea.Program
	model   Model
}

// New creates a new TUI application
func New(cfg *config.Config, log *logging.Logger) (*App, error) {
	model, err := NewModel(cfg, log)
	if err != nil {
		return nil, err
	}
	return &App{model: model}, nil
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.program = tea.NewProgram(
		a.model,
		tea.WithAltScreen(),
	)
	_, err := a.program.Run()
	return err
}

// Send delivers a message into the running program. Safe to call from
// other goroutines, such as the config watcher.
func (a *App) Send(msg tea.Msg) {
	if a.program != nil {
		a.program.Send(msg)
	}
}
