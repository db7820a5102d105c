// Package linenum implements the line-number gutter collaborator. It is an
// independent margin writer: every redraw claims the window's left margin
// for its gutter, which is exactly the side effect the interception layer
// exists to undo. The per-line format function is pluggable.
package linenum

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/centerpane/centerpane/internal/host"
	"github.com/centerpane/centerpane/internal/margin"
)

// FormatFunc renders one line number. maxLine is the buffer's last line
// number, used to size the gutter consistently across the buffer.
type FormatFunc func(line, maxLine int) string

// DefaultFormat pads numbers to the width of the buffer's last line number.
func DefaultFormat(line, maxLine int) string {
	return fmt.Sprintf("%*d", digits(maxLine), line)
}

// PaddedFormat right-aligns numbers in at least 3 cells, keeping them
// aligned under the reserved fallback gutter when centering does not apply.
func PaddedFormat(line, maxLine int) string {
	width := digits(maxLine)
	if width < 3 {
		width = 3
	}
	return fmt.Sprintf("%*d", width, line)
}

func digits(n int) int {
	if n < 1 {
		return 1
	}
	return len(strconv.Itoa(n))
}

// RedrawFunc is the redraw entry point signature, pluggable for wrapping.
type RedrawFunc func(w *host.Window)

// Renderer draws line numbers into window gutters. The zero value is not
// usable; construct with NewRenderer.
type Renderer struct {
	active        bool
	format        FormatFunc
	defaultFormat bool
	redraw        RedrawFunc
}

// NewRenderer creates a renderer using DefaultFormat, disabled.
func NewRenderer() *Renderer {
	r := &Renderer{format: DefaultFormat, defaultFormat: true}
	r.redraw = r.render
	return r
}

// Enable turns line numbering on.
func (r *Renderer) Enable() { r.active = true }

// Disable turns line numbering off.
func (r *Renderer) Disable() { r.active = false }

// Active reports whether line numbering is on.
func (r *Renderer) Active() bool { return r.active }

// ActiveFor reports whether line numbers are drawn for buf. Internal
// buffers (leading " *") never get numbers.
func (r *Renderer) ActiveFor(buf *host.Buffer) bool {
	if !r.active || buf == nil {
		return false
	}
	return !strings.HasPrefix(buf.Name(), " *")
}

// SetFormat installs a custom format function.
func (r *Renderer) SetFormat(f FormatFunc) {
	r.format = f
	r.defaultFormat = false
}

// UseDefaultFormat restores DefaultFormat.
func (r *Renderer) UseDefaultFormat() {
	r.format = DefaultFormat
	r.defaultFormat = true
}

// UsingDefaultFormat reports whether the format function is the default.
// Function values are not comparable, so the renderer tracks this itself.
func (r *Renderer) UsingDefaultFormat() bool { return r.defaultFormat }

// GutterWidth returns the cells the gutter claims for buf: the widest
// formatted number plus one separator cell.
func (r *Renderer) GutterWidth(buf *host.Buffer) int {
	maxLine := 1
	if buf != nil && buf.LineCount() > 0 {
		maxLine = buf.LineCount()
	}
	return len(r.format(maxLine, maxLine)) + 1
}

// Redraw draws the gutter for one window through the current entry point.
func (r *Renderer) Redraw(w *host.Window) { r.redraw(w) }

// RedrawAll redraws every live window in the frame.
func (r *Renderer) RedrawAll(f *host.Frame) {
	for _, w := range f.Windows() {
		r.Redraw(w)
	}
}

// WrapRedraw replaces the redraw entry point with wrap(current) and returns
// a restore func undoing the replacement.
func (r *Renderer) WrapRedraw(wrap func(next RedrawFunc) RedrawFunc) (restore func()) {
	prev := r.redraw
	r.redraw = wrap(prev)
	return func() { r.redraw = prev }
}

// render is the real redraw. Drawing numbers claims the left margin for
// the gutter, overwriting whatever left margin was set; the right margin
// is left alone.
func (r *Renderer) render(w *host.Window) {
	if !w.Live() || !r.ActiveFor(w.Buffer()) {
		return
	}
	m := w.Margins()
	w.SetMargins(margin.Pair{Left: r.GutterWidth(w.Buffer()), Right: m.Right})
}

// GutterLines returns the formatted numbers for w's buffer, one entry per
// content line, for the host view to paint into the margin.
func (r *Renderer) GutterLines(w *host.Window) []string {
	buf := w.Buffer()
	if !r.ActiveFor(buf) {
		return nil
	}
	maxLine := buf.LineCount()
	lines := make([]string, 0, maxLine)
	for i := 1; i <= maxLine; i++ {
		lines = append(lines, r.format(i, maxLine))
	}
	return lines
}
