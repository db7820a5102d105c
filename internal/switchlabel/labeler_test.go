package switchlabel

import (
	"strings"
	"testing"

	"github.com/centerpane/centerpane/internal/host"
)

func twoWindowFrame() (*host.Frame, *host.Window, *host.Window) {
	f := host.NewFrame(200, host.NewBuffer("left.go", "go"), nil)
	w := f.Windows()[0]
	nw := f.SplitRight(w, host.NewBuffer("right.go", "go"))
	return f, w, nw
}

func TestShowLabels_SwapsBuffers(t *testing.T) {
	f, w, nw := twoWindowFrame()
	l := New(f)

	l.ShowLabels()

	if !l.Active() {
		t.Error("labeler should be active while labels are shown")
	}
	for _, win := range []*host.Window{w, nw} {
		if !strings.HasPrefix(win.Buffer().Name(), " *switch-label:") {
			t.Errorf("window %d shows %q, want a label buffer", win.ID(), win.Buffer().Name())
		}
		if !win.Buffer().ModeDerivedFrom("special") {
			t.Error("label buffers should derive from the special mode")
		}
	}
}

func TestClearLabels_RestoresBuffers(t *testing.T) {
	f, w, nw := twoWindowFrame()
	l := New(f)

	l.ShowLabels()
	l.ClearLabels()

	if l.Active() {
		t.Error("labeler should be inactive after ClearLabels")
	}
	if w.Buffer().Name() != "left.go" || nw.Buffer().Name() != "right.go" {
		t.Errorf("buffers not restored: %q, %q", w.Buffer().Name(), nw.Buffer().Name())
	}
}

func TestClearLabels_SkipsClosedWindows(t *testing.T) {
	f, _, nw := twoWindowFrame()
	l := New(f)

	l.ShowLabels()
	f.Close(nw)
	l.ClearLabels() // must not panic or resurrect the closed window

	if len(f.Windows()) != 1 {
		t.Errorf("frame has %d windows, want 1", len(f.Windows()))
	}
}

func TestShowLabels_Reentrant(t *testing.T) {
	f, w, _ := twoWindowFrame()
	l := New(f)

	l.ShowLabels()
	first := w.Buffer()
	l.ShowLabels() // second call while active is a no-op

	if w.Buffer() != first {
		t.Error("second ShowLabels should not re-label windows")
	}

	l.ClearLabels()
	if w.Buffer().Name() != "left.go" {
		t.Errorf("restore broken after reentrant ShowLabels: %q", w.Buffer().Name())
	}
}

func TestWrapCreate_DecoratesLabelBuffers(t *testing.T) {
	f, w, _ := twoWindowFrame()
	l := New(f)

	restore := l.WrapCreate(func(next CreateFunc) CreateFunc {
		return func(w *host.Window) *host.Buffer {
			buf := next(w)
			buf.AddOverlay(0, "tagged")
			return buf
		}
	})

	l.ShowLabels()
	if !w.Buffer().HasOverlayAt(0, "tagged") {
		t.Error("wrapped creation should tag label buffers")
	}
	l.ClearLabels()

	restore()
	l.ShowLabels()
	if w.Buffer().HasOverlayAt(0, "tagged") {
		t.Error("restored creation should not tag label buffers")
	}
}
