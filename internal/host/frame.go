package host

import (
	"slices"

	"github.com/centerpane/centerpane/internal/event"
	"github.com/centerpane/centerpane/internal/margin"
)

// SplitFunc performs a side-by-side split of a window, returning the new
// window on the right, or nil when the window is too narrow to split.
// The frame's split entry point is pluggable so a wrapper can run
// housekeeping before the split computation consults window widths.
type SplitFunc func(w *Window, buf *Buffer) *Window

// Frame is the top-level display surface: a fixed character-cell width and
// an ordered, left-to-right list of live windows tiling it. Frames only
// split horizontally; vertical geometry is out of scope for this host.
type Frame struct {
	width   int
	windows []*Window
	nextID  int
	bus     *event.Bus
	split   SplitFunc
}

// NewFrame creates a frame of the given width holding a single window bound
// to buf. Layout events are published on bus; a nil bus disables publishing
// (convenient in tests that drive the reconciler directly).
func NewFrame(width int, buf *Buffer, bus *event.Bus) *Frame {
	f := &Frame{width: width, bus: bus}
	f.split = f.splitRight
	w := &Window{id: f.nextID, frame: f, buf: buf, left: 0, right: width, live: true}
	f.nextID++
	f.windows = []*Window{w}
	return f
}

// Width returns the frame width in character cells.
func (f *Frame) Width() int { return f.width }

// Windows returns the live windows in host enumeration order (left to
// right). The returned slice is a copy.
func (f *Frame) Windows() []*Window {
	return slices.Clone(f.windows)
}

// Resize sets the frame width, rescaling window edges proportionally, and
// publishes a frame.resized event carrying whether the size actually
// changed. A no-op resize still publishes so listeners see the flag.
func (f *Frame) Resize(width int) {
	if width < 1 {
		width = 1
	}
	changed := width != f.width
	if changed && f.width > 0 {
		old := f.width
		for _, w := range f.windows {
			w.left = w.left * width / old
			w.right = w.right * width / old
		}
		// Rescaling truncates; stitch the tiling back together so edges
		// stay contiguous and the last window reaches the frame edge.
		// With fewer cells than windows the trailing windows collapse to
		// zero width at the frame edge rather than going negative.
		for i, w := range f.windows {
			if i > 0 {
				w.left = f.windows[i-1].right
			}
			if w.right <= w.left {
				w.right = w.left + 1
			}
			if w.left > width {
				w.left = width
			}
			if w.right > width {
				w.right = width
			}
		}
		f.windows[len(f.windows)-1].right = width
		f.width = width
	} else {
		f.width = width
	}
	if f.bus != nil {
		f.bus.Publish(event.NewFrameResizedEvent(width, changed))
	}
}

// SplitRight splits w side-by-side through the frame's current split entry
// point and publishes a window.reconfigured event when a window was
// created. Returns nil when the split is not possible.
func (f *Frame) SplitRight(w *Window, buf *Buffer) *Window {
	nw := f.split(w, buf)
	if nw != nil {
		f.notifyReconfigured()
	}
	return nw
}

// WrapSplit replaces the split entry point with wrap(current) and returns a
// restore func undoing the replacement. Wraps nest; restore in reverse
// installation order.
func (f *Frame) WrapSplit(wrap func(next SplitFunc) SplitFunc) (restore func()) {
	prev := f.split
	f.split = wrap(prev)
	return func() { f.split = prev }
}

// splitRight is the real split: the left half keeps w, the right half goes
// to a new window showing buf.
func (f *Frame) splitRight(w *Window, buf *Buffer) *Window {
	if !w.live || w.Width() < 2 {
		return nil
	}
	mid := w.left + w.Width()/2
	nw := &Window{id: f.nextID, frame: f, buf: buf, left: mid, right: w.right, live: true}
	f.nextID++
	w.right = mid
	i := slices.Index(f.windows, w)
	f.windows = slices.Insert(f.windows, i+1, nw)
	return nw
}

// Close removes w from the frame, handing its span to the window on its
// left (or right, for the leftmost window). Closing the last window is
// refused.
func (f *Frame) Close(w *Window) {
	i := slices.Index(f.windows, w)
	if i < 0 || len(f.windows) == 1 {
		return
	}
	if i > 0 {
		f.windows[i-1].right = w.right
	} else {
		f.windows[1].left = w.left
	}
	w.live = false
	f.windows = slices.Delete(f.windows, i, i+1)
	f.notifyReconfigured()
}

// SetBuffer switches the buffer shown in w and publishes a
// window.reconfigured event.
func (f *Frame) SetBuffer(w *Window, buf *Buffer) {
	if !w.live || w.buf == buf {
		return
	}
	w.buf = buf
	f.notifyReconfigured()
}

// ZeroMargins sets every live window's margins to (0, 0). Used by split
// housekeeping and mode teardown. Publishes nothing.
func (f *Frame) ZeroMargins() {
	for _, w := range f.windows {
		w.SetMargins(margin.Zero)
	}
}

func (f *Frame) notifyReconfigured() {
	if f.bus != nil {
		f.bus.Publish(event.NewWindowReconfiguredEvent())
	}
}
