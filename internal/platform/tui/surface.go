package tui

import (
	"math"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// Projection of the pixel canvas onto terminal cells: every board column
// is CellsPerColumn characters wide and every board row LinesPerRow lines
// tall.
const (
	CellsPerColumn = 10
	LinesPerRow    = 3

	BoardWidth  = crossing.Cols * CellsPerColumn
	BoardHeight = (crossing.CanvasHeight*LinesPerRow + crossing.CellHeight - 1) / crossing.CellHeight
)

// largeText is the font size from which text gets a framed box.
const largeText = 32

// CellSurface implements core.Surface on top of a core.Screen.
type CellSurface struct {
	screen *core.Screen
}

// NewCellSurface wraps screen.
func NewCellSurface(screen *core.Screen) *CellSurface {
	return &CellSurface{screen: screen}
}

// Cell projects a canvas pixel onto the screen cell containing it.
func Cell(x, y float64) (cx, cy int) {
	cx = int(math.Floor(x * CellsPerColumn / crossing.CellWidth))
	cy = int(math.Floor(y * LinesPerRow / crossing.CellHeight))
	return cx, cy
}

// DrawImage draws a glyph at its projected origin. Drawables that are not
// glyphs are ignored.
func (s *CellSurface) DrawImage(img core.Drawable, x, y float64) {
	g, ok := img.(Glyph)
	if !ok {
		return
	}
	cx, cy := Cell(x, y)
	s.drawGlyph(g, cx+g.OffsetX, cy+g.OffsetY)
}

// DrawImageScaled draws a glyph on the cell holding the center of the
// target box. Glyphs have a fixed cell size, so the box only positions them.
func (s *CellSurface) DrawImageScaled(img core.Drawable, x, y, w, h float64) {
	g, ok := img.(Glyph)
	if !ok {
		return
	}
	cx, cy := Cell(x+w/2, y+h/2)
	s.drawGlyph(g, cx, cy)
}

// FillText writes text anchored per style. Large text is framed so it
// stays readable over the board.
func (s *CellSurface) FillText(text string, x, y float64, style core.TextStyle) {
	runes := []rune(text)
	cx, cy := Cell(x, y)

	switch style.Align {
	case core.AlignCenter:
		cx -= len(runes) / 2
	case core.AlignRight:
		cx -= len(runes)
	}
	if style.Baseline == core.BaselineBottom {
		cy--
	}

	if style.Size >= largeText {
		box := core.NewRect(cx-2, cy-1, len(runes)+4, 3)
		s.screen.DrawRect(box, ' ', core.ColorDefault)
		s.screen.DrawBox(box, style.Fill)
	}
	s.screen.DrawTextColor(cx, cy, text, style.Fill)
}

// StrokeText is a no-op: terminal cells have no outline, FillText already
// drew the characters.
func (s *CellSurface) StrokeText(text string, x, y float64, style core.TextStyle) {}

func (s *CellSurface) drawGlyph(g Glyph, cx, cy int) {
	for dy, line := range g.Art {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				s.screen.SetColor(cx+dx, cy+dy, r, g.Color)
			}
			dx++
		}
	}
}
