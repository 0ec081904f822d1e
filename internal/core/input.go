package core

// Direction is a discrete movement request delivered by an input source.
// Front-ends translate physical keys into directions; keys that map to
// nothing become DirNone and never reach the game.
type Direction int

const (
	DirNone  Direction = iota
	DirUp              // Up arrow, W, K
	DirDown            // Down arrow, S, J
	DirLeft            // Left arrow, A, H
	DirRight           // Right arrow, D, L
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Valid reports whether d is one of the four movement directions.
func (d Direction) Valid() bool {
	return d >= DirUp && d <= DirRight
}

// Delta returns the column and row offset of a one-cell move in direction d.
// Invalid directions yield (0, 0).
func (d Direction) Delta() (dc, dr int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}
