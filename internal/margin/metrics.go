package margin

// Metrics exposes the width-contributing attributes of a window.
// *host.Window satisfies it.
type Metrics interface {
	// ContentWidth returns the cells available to buffer text.
	ContentWidth() int
	// Margins returns the window's current margin pair.
	Margins() Pair
	// DecorationCols returns fringe-equivalent decoration cells the host
	// attributes to the window (borders, separators).
	DecorationCols() int
}

// OccupiedWidth returns the total cells a window occupies: content plus
// current margins plus decoration. It is a pure read used for
// compatibility diagnostics; the centering path works from raw edge
// coordinates instead so current margin state cannot skew it.
func OccupiedWidth(w Metrics) int {
	m := w.Margins()
	return w.ContentWidth() + m.Left + m.Right + w.DecorationCols()
}
