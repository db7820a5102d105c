package host

import "github.com/centerpane/centerpane/internal/margin"

// Window is one rectangular region of a frame showing a buffer. The host
// owns creation and destruction; the centering engine reads geometry and
// buffer identity and writes the margin pair.
type Window struct {
	id         int
	frame      *Frame
	buf        *Buffer
	left       int // frame-relative left edge, inclusive
	right      int // frame-relative right edge, exclusive
	margins    margin.Pair
	decoration int
	live       bool
}

// ID returns the host-assigned window identifier.
func (w *Window) ID() int { return w.id }

// Live reports whether the window is still part of its frame. Dead windows
// keep their last geometry but reject margin writes.
func (w *Window) Live() bool { return w.live }

// Buffer returns the buffer currently shown in the window.
func (w *Window) Buffer() *Buffer { return w.buf }

// Edges returns the window's frame-relative horizontal edges.
func (w *Window) Edges() (left, right int) { return w.left, w.right }

// Width returns the window's total span in cells, margins included.
func (w *Window) Width() int { return w.right - w.left }

// Margins returns the window's current margin pair.
func (w *Window) Margins() margin.Pair { return w.margins }

// SetMargins writes the margin pair atomically. Negative components are
// clamped to zero. Writes to dead windows are dropped; liveness is the
// caller's last check before writing, and this guards the race between
// enumeration and write. Margin writes do not publish layout events.
func (w *Window) SetMargins(p margin.Pair) {
	if !w.live {
		return
	}
	w.margins = p.Clamped()
}

// ContentWidth returns the cells left for buffer text after margins and
// decoration.
func (w *Window) ContentWidth() int {
	c := w.Width() - w.margins.Left - w.margins.Right - w.decoration
	if c < 0 {
		return 0
	}
	return c
}

// DecorationCols returns the decoration cells (window separators) the host
// attributes to this window.
func (w *Window) DecorationCols() int { return w.decoration }

// SetDecorationCols sets the decoration cell count.
func (w *Window) SetDecorationCols(n int) { w.decoration = n }
