// Package intercept brackets the external margin writers so they cannot
// clobber the reconciler's centering between passes. Each installer wraps
// a collaborator's pluggable entry point with before/after hooks and
// returns an explicit restore func; the mode controller owns the restores
// and releases them on teardown.
package intercept

import (
	"github.com/centerpane/centerpane/internal/classify"
	"github.com/centerpane/centerpane/internal/host"
	"github.com/centerpane/centerpane/internal/linenum"
	"github.com/centerpane/centerpane/internal/margin"
	"github.com/centerpane/centerpane/internal/switchlabel"
)

// Around decorates a window-taking callable with optional before and after
// hooks. Either hook may be nil.
func Around(next func(*host.Window), before, after func(*host.Window)) func(*host.Window) {
	return func(w *host.Window) {
		if before != nil {
			before(w)
		}
		next(w)
		if after != nil {
			after(w)
		}
	}
}

// InstallRedrawGuard wraps the line-number redraw entry point so a redraw
// cannot undo centering. The window's left margin is captured immediately
// before the redraw and written back immediately after, preserving
// whatever right margin the redraw left in place. The captured value is
// per-call scratch state, alive only for the bracket.
func InstallRedrawGuard(r *linenum.Renderer) (restore func()) {
	return r.WrapRedraw(func(next linenum.RedrawFunc) linenum.RedrawFunc {
		return func(w *host.Window) {
			saved := w.Margins().Left
			next(w)
			if !w.Live() {
				return
			}
			w.SetMargins(margin.Pair{Left: saved, Right: w.Margins().Right})
		}
	})
}

// InstallSplitGuard wraps the frame's split entry point to zero every live
// window's margins before the split computation runs, so it consults true
// window widths rather than widths skewed by stale centering margins. The
// reconciler's next pass, triggered by the split's reconfiguration event,
// recomputes margins for the new layout.
func InstallSplitGuard(f *host.Frame) (restore func()) {
	return f.WrapSplit(func(next host.SplitFunc) host.SplitFunc {
		return func(w *host.Window, buf *host.Buffer) *host.Window {
			f.ZeroMargins()
			return next(w, buf)
		}
	})
}

// InstallLabelTagger wraps the switch-label buffer creation entry point to
// anchor the classifier's switch-label tag at the buffer's first character.
// The tag lives as long as the buffer does, which is as long as the labels
// are shown.
func InstallLabelTagger(l *switchlabel.Labeler) (restore func()) {
	return l.WrapCreate(func(next switchlabel.CreateFunc) switchlabel.CreateFunc {
		return func(w *host.Window) *host.Buffer {
			buf := next(w)
			if buf != nil {
				buf.AddOverlay(0, classify.SwitchLabelTag)
			}
			return buf
		}
	})
}
