// Package crossing implements a road-crossing arcade game: the player walks
// from the grass at the bottom of a 5×6 board to the water at the top while
// bugs run along the stone lanes and rocks block part of the grass.
package crossing

import "github.com/vovakirdan/tui-crossing/internal/core"

// Board dimensions and tile geometry. The pixel constants must match the
// size of the rendered tiles.
const (
	Cols = 5
	Rows = 6

	CellWidth      = 101
	CellHeight     = 83
	VerticalOffset = 30

	CanvasWidth  = Cols * CellWidth // 505
	CanvasHeight = 606
)

// Position is a discrete (column, row) cell on the board.
type Position struct {
	Col, Row int
}

// InBounds reports whether p lies on the board.
func (p Position) InBounds() bool {
	return p.Col >= 0 && p.Col < Cols && p.Row >= 0 && p.Row < Rows
}

// Step returns the neighbouring cell in direction d. The result may be
// off the board; invalid directions return p unchanged.
func (p Position) Step(d core.Direction) Position {
	dc, dr := d.Delta()
	return Position{Col: p.Col + dc, Row: p.Row + dr}
}

// PixelPos returns the draw origin of an entity standing on p.
func (p Position) PixelPos() (x, y float64) {
	return ToPixelX(p.Col), ToPixelY(p.Row)
}

// ToPixelX converts a column to the x coordinate of its left edge.
func ToPixelX(col int) float64 {
	return float64(col * CellWidth)
}

// ToPixelY converts a row to the y draw origin of an entity on that row.
func ToPixelY(row int) float64 {
	return float64(row*CellHeight - VerticalOffset)
}
