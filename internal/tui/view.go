package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/centerpane/centerpane/internal/host"
	"github.com/centerpane/centerpane/internal/switchlabel"
	"github.com/centerpane/centerpane/internal/tui/styles"
)

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "initializing..."
	}

	helpView := m.help.View(m.keys)
	bodyRows := m.height - 2 - lipgloss.Height(helpView)
	if bodyRows < 1 {
		bodyRows = 1
	}

	wins := m.frame.Windows()
	cols := make([]string, 0, len(wins))
	for i, w := range wins {
		cols = append(cols, m.renderWindow(w, i == m.active, i, bodyRows))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cols...),
		m.statusBar(),
		helpView,
	)
}

// renderWindow paints one window column: a title row, then bodyRows of
// left margin, content, and right margin cells. The margins are whatever
// the reconciler (or a collaborator) last wrote to the window.
func (m Model) renderWindow(w *host.Window, active bool, index int, bodyRows int) string {
	width := w.Width()
	if width < 1 {
		return ""
	}

	title := styles.WindowTitle
	if active {
		title = styles.WindowTitleActive
	}
	rows := make([]string, 0, bodyRows+1)
	rows = append(rows, title.Render(pad(truncate(w.Buffer().Name(), width), width)))

	mg := w.Margins()
	if mg.Left+mg.Right > width {
		mg.Left, mg.Right = 0, 0
	}
	contentWidth := width - mg.Left - mg.Right

	lines := w.Buffer().Lines()
	gutter := m.gutterCells(w, mg.Left, bodyRows)
	labelled := strings.HasPrefix(w.Buffer().Name(), switchlabel.BufferNamePrefix)
	minimapWin := m.mmap.Active() && w == m.mmap.Window()

	for r := 0; r < bodyRows; r++ {
		left := styles.MarginFill.Render(strings.Repeat(" ", mg.Left))
		if r < len(gutter) {
			left = styles.Gutter.Render(gutter[r])
		}

		var body string
		switch {
		case labelled && r == bodyRows/2:
			// The single label letter, centered in the window body.
			body = lipgloss.PlaceHorizontal(contentWidth, lipgloss.Center,
				styles.SwitchLabel.Render(lineAt(lines, 0)))
		case labelled:
			body = pad("", contentWidth)
		case minimapWin:
			body = styles.MinimapContent.Render(pad(truncate(lineAt(lines, r), contentWidth), contentWidth))
		default:
			body = styles.Content.Render(pad(truncate(lineAt(lines, r), contentWidth), contentWidth))
		}

		right := styles.MarginFill.Render(strings.Repeat(" ", mg.Right))
		rows = append(rows, left+body+right)
	}
	return strings.Join(rows, "\n")
}

// gutterCells returns the left-margin cells with line numbers drawn in,
// or nil when the gutter is not showing for this window.
func (m Model) gutterCells(w *host.Window, leftWidth, bodyRows int) []string {
	if leftWidth == 0 || !m.gutter.ActiveFor(w.Buffer()) {
		return nil
	}
	nums := m.gutter.GutterLines(w)
	cells := make([]string, bodyRows)
	for r := range cells {
		cell := ""
		if r < len(nums) {
			cell = nums[r]
		}
		if len(cell) > leftWidth {
			cell = cell[:leftWidth]
		}
		// Right-align the number against the content edge.
		cells[r] = strings.Repeat(" ", leftWidth-len(cell)) + cell
	}
	return cells
}

func (m Model) statusBar() string {
	parts := make([]string, 0, 3)
	if m.ctrl.Enabled() {
		parts = append(parts, styles.StatusIndicator.Render(m.cfg.Centering.Indicator))
	}
	if m.status != "" {
		parts = append(parts, styles.StatusHint.Render(m.status))
	}
	if m.labels.Active() {
		parts = append(parts, styles.StatusHint.Render("press a label letter to switch"))
	}
	bar := strings.Join(parts, "  ")
	return styles.StatusBar.Render(pad(bar, m.width))
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if width < 1 {
		return ""
	}
	if len(r) > width {
		r = r[:width]
	}
	return string(r)
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func lineAt(lines []string, i int) string {
	if i < 0 || i >= len(lines) {
		return ""
	}
	return lines[i]
}
