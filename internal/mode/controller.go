// Package mode owns the centering lifecycle: a two-state machine wiring
// the reconciler into the host's event bus and the interception layer
// around the collaborators on enable, and releasing every hook, wrap, and
// margin on disable. Nothing survives the Enabled -> Disabled transition;
// re-enabling starts from scratch.
package mode

import (
	"github.com/centerpane/centerpane/internal/event"
	"github.com/centerpane/centerpane/internal/host"
	"github.com/centerpane/centerpane/internal/intercept"
	"github.com/centerpane/centerpane/internal/linenum"
	"github.com/centerpane/centerpane/internal/logging"
	"github.com/centerpane/centerpane/internal/reconcile"
	"github.com/centerpane/centerpane/internal/switchlabel"
)

// State is the controller's lifecycle state.
type State int

const (
	// Disabled is the initial state: no hooks, no wraps, neutral margins.
	Disabled State = iota
	// Enabled means the reconciler listens on layout events and the
	// interception wraps are installed.
	Enabled
)

// String returns the state name.
func (s State) String() string {
	if s == Enabled {
		return "enabled"
	}
	return "disabled"
}

// Controller toggles centering on and off. It owns the subscription IDs
// and wrap restores it creates, so teardown releases exactly what this
// instance holds.
type Controller struct {
	bus    *event.Bus
	frame  *host.Frame
	rec    *reconcile.Reconciler
	gutter *linenum.Renderer    // nil when the collaborator is absent
	labels *switchlabel.Labeler // nil when the collaborator is absent

	log           *logging.Logger
	state         State
	subs          []string
	restores      []func()
	swappedFormat bool
}

// NewController creates a controller in the Disabled state. gutter and
// labels may be nil; their wraps are then never engaged.
func NewController(bus *event.Bus, frame *host.Frame, rec *reconcile.Reconciler, gutter *linenum.Renderer, labels *switchlabel.Labeler, log *logging.Logger) *Controller {
	return &Controller{
		bus:    bus,
		frame:  frame,
		rec:    rec,
		gutter: gutter,
		labels: labels,
		log:    log.With("component", "mode"),
	}
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Enabled reports whether centering is active.
func (c *Controller) Enabled() bool { return c.state == Enabled }

// Toggle flips between the two states.
func (c *Controller) Toggle() {
	if c.state == Enabled {
		c.Disable()
	} else {
		c.Enable()
	}
}

// Enable performs the Disabled -> Enabled transition: install the
// interception wraps, swap the line-number format to the padded variant if
// it is still the default, register the reconciler on both trigger events,
// and run one immediate pass. Enabling twice is a no-op.
func (c *Controller) Enable() {
	if c.state == Enabled {
		return
	}

	c.restores = append(c.restores, intercept.InstallSplitGuard(c.frame))
	if c.gutter != nil {
		c.restores = append(c.restores, intercept.InstallRedrawGuard(c.gutter))
		if c.gutter.UsingDefaultFormat() {
			c.gutter.SetFormat(linenum.PaddedFormat)
			c.swappedFormat = true
		}
	}
	if c.labels != nil {
		c.restores = append(c.restores, intercept.InstallLabelTagger(c.labels))
	}

	c.subs = append(c.subs,
		c.bus.Subscribe(event.TypeFrameResized, c.rec.HandleEvent),
		c.bus.Subscribe(event.TypeWindowReconfigured, c.rec.HandleEvent),
	)

	c.state = Enabled
	c.log.Info("centering enabled")
	c.rec.All()
}

// Disable performs the Enabled -> Disabled transition: undo the wraps in
// reverse installation order, restore the line-number format if Enable
// changed it, drop the event subscriptions, and zero every live window's
// margins unconditionally. Disabling twice is a no-op.
func (c *Controller) Disable() {
	if c.state == Disabled {
		return
	}

	for i := len(c.restores) - 1; i >= 0; i-- {
		c.restores[i]()
	}
	c.restores = nil

	if c.swappedFormat {
		c.gutter.UseDefaultFormat()
		c.swappedFormat = false
	}

	for _, id := range c.subs {
		c.bus.Unsubscribe(id)
	}
	c.subs = nil

	c.frame.ZeroMargins()
	c.state = Disabled
	c.log.Info("centering disabled")
}
