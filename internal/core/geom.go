// Package core provides fundamental types and contracts shared by the game
// and its front-ends. It contains no external dependencies (especially no
// Bubble Tea or Ebitengine) to keep game logic pure and testable.
package core

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Span is a closed interval [Lo, Hi] on one pixel axis.
type Span struct {
	Lo, Hi float64
}

// NewSpan returns the span starting at lo with the given length.
func NewSpan(lo, length float64) Span {
	return Span{Lo: lo, Hi: lo + length}
}

// Around returns the span centered on c extending reach to both sides.
func Around(c, reach float64) Span {
	return Span{Lo: c - reach, Hi: c + reach}
}

// Overlaps reports whether two closed spans share at least one point.
// Touching endpoints count as overlap.
func (s Span) Overlaps(other Span) bool {
	return s.Lo <= other.Hi && other.Lo <= s.Hi
}
