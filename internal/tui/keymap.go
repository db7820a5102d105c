package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the demo host's key bindings.
type KeyMap struct {
	Quit          key.Binding
	Split         key.Binding
	Close         key.Binding
	NextWindow    key.Binding
	ToggleCenter  key.Binding
	ToggleGutter  key.Binding
	ToggleMinimap key.Binding
	SwitchWindow  key.Binding
	Help          key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Split: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split window"),
		),
		Close: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close window"),
		),
		NextWindow: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next window"),
		),
		ToggleCenter: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle centering"),
		),
		ToggleGutter: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "toggle line numbers"),
		),
		ToggleMinimap: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "toggle minimap"),
		),
		SwitchWindow: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "switch window by label"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleCenter, k.Split, k.SwitchWindow, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Split, k.Close, k.NextWindow, k.SwitchWindow},
		{k.ToggleCenter, k.ToggleGutter, k.ToggleMinimap},
		{k.Help, k.Quit},
	}
}
