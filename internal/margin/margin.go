// Package margin computes the left/right margin pairs that keep a
// fixed-width content column horizontally centered inside a frame.
// All arithmetic is in character cells; there is no pixel geometry.
package margin

// Pair is a window's left/right margin pair. Both values are always
// non-negative and are written to a window atomically, never one side
// without the other.
type Pair struct {
	Left  int
	Right int
}

// Zero is the neutral margin pair applied on teardown.
var Zero = Pair{}

// Clamped returns a copy of the pair with negative components raised to 0.
func (p Pair) Clamped() Pair {
	if p.Left < 0 {
		p.Left = 0
	}
	if p.Right < 0 {
		p.Right = 0
	}
	return p
}

// DefaultMargin returns the margin a frame-wide window would need on each
// side to center a column of visibleWidth cells. Integer division floors
// the result; a visibleWidth wider than the frame clamps to 0.
func DefaultMargin(frameWidth, visibleWidth int) int {
	spare := frameWidth - visibleWidth
	if spare < 0 {
		spare = 0
	}
	return spare / 2
}

// Centering computes the margin pair that centers a visibleWidth column
// for a window spanning [leftEdge, rightEdge) in frame-relative cells.
//
// The computation centers an imaginary frame-wide column and expresses,
// for this window's position, how much of that column's margin falls
// inside the window itself. It deliberately reads only edge coordinates,
// never the window's current margins, so repeated passes cannot feed back
// into each other.
//
// The second return value reports feasibility: false means the window is
// too narrow or too far off-center for non-negative margins to exist
// (typically a split window), and the caller should fall back to its
// ignored-window policy.
func Centering(frameWidth, visibleWidth, leftEdge, rightEdge int) (Pair, bool) {
	def := DefaultMargin(frameWidth, visibleWidth)
	p := Pair{
		Left:  def - leftEdge,
		Right: def - (frameWidth - rightEdge),
	}
	if p.Left < 0 || p.Right < 0 {
		return Pair{}, false
	}
	return p, true
}
