// Package host implements the in-process pane host: a frame holding one or
// more side-by-side windows, each bound to a buffer. The host owns window
// lifecycle and geometry and publishes layout events on a bus; the centering
// engine only reads positions and buffer identity and writes margin pairs.
package host

import "slices"

// Buffer is a named piece of displayable content with a major-mode tag and
// position-anchored overlay tags.
type Buffer struct {
	name        string
	mode        string
	modeParents []string
	lines       []string
	overlays    map[int][]string // character position -> overlay tags
}

// NewBuffer creates a buffer with the given name and major-mode tag.
// Parent mode tags, outermost last, establish the mode derivation chain.
func NewBuffer(name, mode string, modeParents ...string) *Buffer {
	return &Buffer{
		name:        name,
		mode:        mode,
		modeParents: modeParents,
		overlays:    make(map[int][]string),
	}
}

// Name returns the buffer name.
func (b *Buffer) Name() string { return b.name }

// ModeTag returns the buffer's major-mode tag.
func (b *Buffer) ModeTag() string { return b.mode }

// ModeDerivedFrom reports whether the buffer's mode is tag itself or is
// derived from it through the parent chain.
func (b *Buffer) ModeDerivedFrom(tag string) bool {
	return b.mode == tag || slices.Contains(b.modeParents, tag)
}

// SetLines replaces the buffer content.
func (b *Buffer) SetLines(lines []string) { b.lines = lines }

// Lines returns the buffer content.
func (b *Buffer) Lines() []string { return b.lines }

// LineCount returns the number of content lines.
func (b *Buffer) LineCount() int { return len(b.lines) }

// AddOverlay anchors an overlay tag at a character position. A tag may be
// anchored more than once; duplicates at the same position are ignored.
func (b *Buffer) AddOverlay(pos int, tag string) {
	if slices.Contains(b.overlays[pos], tag) {
		return
	}
	b.overlays[pos] = append(b.overlays[pos], tag)
}

// OverlaysAt returns the overlay tags anchored at a position.
func (b *Buffer) OverlaysAt(pos int) []string {
	return slices.Clone(b.overlays[pos])
}

// HasOverlayAt reports whether tag is anchored at pos.
func (b *Buffer) HasOverlayAt(pos int, tag string) bool {
	return slices.Contains(b.overlays[pos], tag)
}

// RemoveOverlay removes every anchor of tag from the buffer.
func (b *Buffer) RemoveOverlay(tag string) {
	for pos, tags := range b.overlays {
		if i := slices.Index(tags, tag); i >= 0 {
			b.overlays[pos] = slices.Delete(tags, i, i+1)
			if len(b.overlays[pos]) == 0 {
				delete(b.overlays, pos)
			}
		}
	}
}
