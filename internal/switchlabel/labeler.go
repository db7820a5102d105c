// Package switchlabel implements the window-selection-label collaborator.
// During interactive window switching it temporarily swaps each window's
// buffer for a single-letter label buffer; clearing restores the original
// buffers. The label-buffer creation entry point is pluggable so the
// interception layer can tag the buffers it produces.
package switchlabel

import (
	"fmt"

	"github.com/centerpane/centerpane/internal/host"
)

// BufferNamePrefix starts the name of every buffer produced by the real
// label-creation entry point.
const BufferNamePrefix = " *switch-label:"

// CreateFunc builds the label buffer shown in a window while labels are up.
type CreateFunc func(w *host.Window) *host.Buffer

// Labeler assigns selection labels to a frame's windows.
type Labeler struct {
	frame  *host.Frame
	create CreateFunc
	saved  map[*host.Window]*host.Buffer
}

// New creates a labeler for the frame.
func New(frame *host.Frame) *Labeler {
	l := &Labeler{frame: frame, saved: make(map[*host.Window]*host.Buffer)}
	l.create = l.createLabelBuffer
	return l
}

// Active reports whether labels are currently shown.
func (l *Labeler) Active() bool { return len(l.saved) > 0 }

// WrapCreate replaces the label-buffer creation entry point with
// wrap(current) and returns a restore func undoing the replacement.
func (l *Labeler) WrapCreate(wrap func(next CreateFunc) CreateFunc) (restore func()) {
	prev := l.create
	l.create = wrap(prev)
	return func() { l.create = prev }
}

// ShowLabels swaps every live window's buffer for a label buffer produced
// by the creation entry point. Window margins are left exactly as they
// are; the label is an overlay on the existing layout, not a layout
// change of its own.
func (l *Labeler) ShowLabels() {
	if l.Active() {
		return
	}
	for _, w := range l.frame.Windows() {
		buf := l.create(w)
		if buf == nil {
			continue
		}
		l.saved[w] = w.Buffer()
		l.frame.SetBuffer(w, buf)
	}
}

// ClearLabels restores the buffers saved by ShowLabels. Windows closed in
// the meantime are skipped.
func (l *Labeler) ClearLabels() {
	for w, buf := range l.saved {
		if w.Live() {
			l.frame.SetBuffer(w, buf)
		}
	}
	l.saved = make(map[*host.Window]*host.Buffer)
}

// createLabelBuffer is the real creation entry point: a one-letter buffer
// named after the window, in a special-derived mode, living only as long
// as the labels are up.
func (l *Labeler) createLabelBuffer(w *host.Window) *host.Buffer {
	letter := rune('a' + len(l.saved)%26)
	buf := host.NewBuffer(fmt.Sprintf("%s%c*", BufferNamePrefix, letter), "switch-label", "special")
	buf.SetLines([]string{string(letter)})
	return buf
}
