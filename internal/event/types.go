// Package event defines the layout-change events the host publishes and a
// synchronous pub-sub bus for delivering them. The bus decouples the host's
// window model from the centering engine: the host publishes without knowing
// who listens, and the mode controller attaches or detaches listeners without
// touching the host.
package event

import "time"

// Event type identifiers, following a "category.action" convention.
const (
	TypeFrameResized       = "frame.resized"
	TypeWindowReconfigured = "window.reconfigured"
)

// Event is the interface all published events implement.
type Event interface {
	// EventType returns the string identifier for this event type.
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// baseEvent provides the common fields; embed it in concrete event types.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

func newBaseEvent(eventType string) baseEvent {
	return baseEvent{eventType: eventType, timestamp: time.Now()}
}

// FrameResizedEvent is published after the host frame's size is set, whether
// or not the value actually changed. SizeChanged carries the "did size
// actually change" flag so listeners can skip redundant work.
type FrameResizedEvent struct {
	baseEvent
	Width       int  // frame width in character cells, after the resize
	SizeChanged bool // false when the resize was a no-op
}

// NewFrameResizedEvent creates a FrameResizedEvent.
func NewFrameResizedEvent(width int, sizeChanged bool) FrameResizedEvent {
	return FrameResizedEvent{
		baseEvent:   newBaseEvent(TypeFrameResized),
		Width:       width,
		SizeChanged: sizeChanged,
	}
}

// WindowReconfiguredEvent is published after any change to the window
// configuration: a split, a window closing, or a buffer switch. It carries
// no payload beyond "something changed"; listeners re-enumerate the frame.
type WindowReconfiguredEvent struct {
	baseEvent
}

// NewWindowReconfiguredEvent creates a WindowReconfiguredEvent.
func NewWindowReconfiguredEvent() WindowReconfiguredEvent {
	return WindowReconfiguredEvent{baseEvent: newBaseEvent(TypeWindowReconfigured)}
}
