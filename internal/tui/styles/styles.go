package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor = lipgloss.Color("#A78BFA") // Purple
	WarningColor = lipgloss.Color("#F59E0B") // Amber
	MutedColor   = lipgloss.Color("#6B7280") // Gray
	SurfaceColor = lipgloss.Color("#1F2937") // Dark surface
	TextColor    = lipgloss.Color("#F9FAFB") // Light text
	BorderColor  = lipgloss.Color("#4B5563") // Gray

	// Window chrome
	WindowTitle = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	WindowTitleActive = lipgloss.NewStyle().
				Bold(true).
				Foreground(TextColor).
				Background(PrimaryColor).
				Padding(0, 1)

	// Margin cells render as empty surface so the centered column reads
	// as a column, not as misaligned text.
	MarginFill = lipgloss.NewStyle().
			Foreground(BorderColor)

	Gutter = lipgloss.NewStyle().
		Foreground(MutedColor)

	Content = lipgloss.NewStyle().
		Foreground(TextColor)

	MinimapContent = lipgloss.NewStyle().
			Foreground(MutedColor)

	// Switch labels overlay a single large letter per window.
	SwitchLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(WarningColor).
			Padding(0, 1)

	// Status line
	StatusBar = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor)

	StatusIndicator = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			Background(SurfaceColor).
			Padding(0, 1)

	StatusHint = lipgloss.NewStyle().
			Foreground(MutedColor).
			Background(SurfaceColor).
			Padding(0, 1)
)
