// Package minimap implements the minimap collaborator: a narrow companion
// window showing a condensed view of a target buffer. The centering engine
// treats minimap windows as off-limits; this package owns their margins.
package minimap

import (
	"strings"

	"github.com/centerpane/centerpane/internal/host"
	"github.com/centerpane/centerpane/internal/margin"
)

// BufferPrefix is the name prefix every minimap buffer carries. The
// classifier matches window buffer names against it.
const BufferPrefix = " *MINIMAP*"

// Minimap manages at most one minimap window per frame.
type Minimap struct {
	frame  *host.Frame
	active bool
	win    *host.Window
}

// New creates an inactive minimap for the frame.
func New(frame *host.Frame) *Minimap {
	return &Minimap{frame: frame}
}

// Active reports whether the minimap is attached.
func (m *Minimap) Active() bool { return m.active }

// BufferPrefix returns the minimap buffer-name prefix.
func (m *Minimap) BufferPrefix() string { return BufferPrefix }

// Window returns the minimap's window, or nil when detached.
func (m *Minimap) Window() *host.Window { return m.win }

// Attach splits a minimap window off target. The new window initially
// shows the target's own buffer and only afterwards swaps in the minimap
// buffer; during that interval the window is not yet recognizable as a
// minimap by name. Reproducing the swap this way keeps the documented
// transient observable instead of hiding it.
func (m *Minimap) Attach(target *host.Window) *host.Window {
	if m.active || target == nil || !target.Live() {
		return nil
	}
	src := target.Buffer()
	win := m.frame.SplitRight(target, src)
	if win == nil {
		return nil
	}
	m.active = true
	m.win = win

	buf := host.NewBuffer(BufferPrefix+" "+src.Name(), "minimap", "special")
	buf.SetLines(condense(src.Lines()))
	m.frame.SetBuffer(win, buf)
	win.SetMargins(margin.Zero)
	return win
}

// Detach closes the minimap window.
func (m *Minimap) Detach() {
	if !m.active {
		return
	}
	m.frame.Close(m.win)
	m.win = nil
	m.active = false
}

// condense shrinks buffer lines to a block-character sketch, one cell per
// four source cells.
func condense(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		n := (len(line) + 3) / 4
		out[i] = strings.Repeat("▪", n)
	}
	return out
}
