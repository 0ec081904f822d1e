package tui

import (
	"context"
	"fmt"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// Glyph is the terminal drawable: a small block of runes. Spaces in Art
// are transparent. Offsets shift the art, in cells, from the projected
// draw origin so that entities land inside their row band.
type Glyph struct {
	ID      string
	Art     []string
	Color   core.Color
	OffsetX int
	OffsetY int
	W, H    int // Natural size in canvas pixels
}

// Size returns the glyph's natural size in canvas pixels.
func (g Glyph) Size() (int, int) {
	return g.W, g.H
}

func tile(id string, r rune, c core.Color) Glyph {
	row := make([]rune, CellsPerColumn)
	for i := range row {
		row[i] = r
	}
	art := make([]string, LinesPerRow)
	for i := range art {
		art[i] = string(row)
	}
	return Glyph{ID: id, Art: art, Color: c, W: crossing.CellWidth, H: crossing.CellHeight}
}

// glyphs holds the terminal rendition of every sprite in the manifest.
var glyphs = map[string]Glyph{
	crossing.SpriteWater: tile(crossing.SpriteWater, '≈', core.ColorBlue),
	crossing.SpriteStone: tile(crossing.SpriteStone, '▒', core.ColorGray),
	crossing.SpriteGrass: tile(crossing.SpriteGrass, '░', core.ColorGreen),
	crossing.SpriteEnemy: {
		ID:      crossing.SpriteEnemy,
		Art:     []string{"▐███▌▶"},
		Color:   core.ColorBrightRed,
		OffsetX: 1,
		OffsetY: 3,
		W:       crossing.CellWidth,
		H:       171,
	},
	crossing.SpritePlayer: {
		ID:      crossing.SpritePlayer,
		Art:     []string{" ◯ ", "/█\\"},
		Color:   core.ColorBrightYellow,
		OffsetX: 4,
		OffsetY: 2,
		W:       crossing.CellWidth,
		H:       171,
	},
	crossing.SpriteRock: {
		ID:      crossing.SpriteRock,
		Art:     []string{" ▄▄▄ ", "█████"},
		Color:   core.ColorWhite,
		OffsetX: 3,
		OffsetY: 2,
		W:       crossing.CellWidth,
		H:       171,
	},
	crossing.SpriteHeart: {
		ID:    crossing.SpriteHeart,
		Art:   []string{"♥"},
		Color: core.ColorRed,
		W:     50,
		H:     85,
	},
}

// DecodeGlyph is the terminal asset decoder: it resolves an identifier to
// its built-in glyph.
func DecodeGlyph(ctx context.Context, id string) (core.Drawable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	g, ok := glyphs[id]
	if !ok {
		return nil, fmt.Errorf("tui: no glyph for %q", id)
	}
	return g, nil
}
