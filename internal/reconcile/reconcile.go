// Package reconcile drives the centering loop: on every layout-affecting
// event it walks the frame's windows, classifies each, and applies that
// window's margin policy. A pass depends only on window edges and the frame
// width, never on current margins, so repeated passes over an unchanged
// layout write identical values.
package reconcile

import (
	"github.com/centerpane/centerpane/internal/classify"
	"github.com/centerpane/centerpane/internal/event"
	"github.com/centerpane/centerpane/internal/host"
	"github.com/centerpane/centerpane/internal/logging"
	"github.com/centerpane/centerpane/internal/margin"
)

// FallbackGutterCols is the left margin reserved for line numbers on
// windows that are not centered. Three cells fits the padded line-number
// format.
const FallbackGutterCols = 3

// LineNumberState is the read-only view of the line-number collaborator
// the reconciler consults for the fallback policy.
type LineNumberState interface {
	ActiveFor(buf *host.Buffer) bool
}

// Reconciler applies margin policy across a frame.
type Reconciler struct {
	frame        *host.Frame
	classifier   *classify.Classifier
	visibleWidth int
	linenums     LineNumberState // nil when the collaborator is absent
	log          *logging.Logger
}

// New creates a reconciler. linenums may be nil; log must not be (use
// logging.Discard in tests).
func New(frame *host.Frame, classifier *classify.Classifier, visibleWidth int, linenums LineNumberState, log *logging.Logger) *Reconciler {
	return &Reconciler{
		frame:        frame,
		classifier:   classifier,
		visibleWidth: visibleWidth,
		linenums:     linenums,
		log:          log.With("component", "reconciler"),
	}
}

// Configure swaps in a fresh classifier and visible width. Configuration
// is immutable during a pass; call this only between passes.
func (r *Reconciler) Configure(classifier *classify.Classifier, visibleWidth int) {
	r.classifier = classifier
	r.visibleWidth = visibleWidth
}

// HandleEvent runs a pass for the layout events the reconciler listens
// on. Frame resizes only trigger work when the size actually changed.
func (r *Reconciler) HandleEvent(e event.Event) {
	switch ev := e.(type) {
	case event.FrameResizedEvent:
		if ev.SizeChanged {
			r.All()
		}
	case event.WindowReconfiguredEvent:
		r.All()
	}
}

// All reconciles every live window in host enumeration order. Windows are
// independent: each one's margins derive from its own edges and the frame
// width alone.
func (r *Reconciler) All() {
	frameWidth := r.frame.Width()
	for _, w := range r.frame.Windows() {
		if !w.Live() {
			continue
		}
		switch cat := r.classifier.Classify(w); cat {
		case classify.SwitchLabel, classify.Minimap:
			// Another writer owns these margins.
			r.log.Debug("window skipped", "window", w.ID(), "category", cat.String())
		case classify.Centerable:
			left, right := w.Edges()
			if p, ok := margin.Centering(frameWidth, r.visibleWidth, left, right); ok {
				w.SetMargins(p)
				r.log.Debug("window centered",
					"window", w.ID(), "left", p.Left, "right", p.Right,
					"occupied", margin.OccupiedWidth(w))
				continue
			}
			r.applyFallback(w)
		default:
			r.applyFallback(w)
		}
	}
}

// applyFallback writes the ignored-window margins: a minimal gutter when
// line numbers are drawn for the buffer, nothing otherwise.
func (r *Reconciler) applyFallback(w *host.Window) {
	p := margin.Zero
	if r.linenums != nil && r.linenums.ActiveFor(w.Buffer()) {
		p = margin.Pair{Left: FallbackGutterCols}
	}
	w.SetMargins(p)
	r.log.Debug("fallback margins applied",
		"window", w.ID(), "left", p.Left, "right", p.Right)
}
