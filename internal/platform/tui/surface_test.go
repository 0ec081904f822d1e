package tui

import (
	"testing"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

type foreignImage struct{}

func (foreignImage) Size() (int, int) { return 1, 1 }

func TestCellProjection(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		cx, cy int
	}{
		{"origin", 0, 0, 0, 0},
		{"second cell", 101, 83, 10, 3},
		{"just inside first cell", 100.9, 82.9, 9, 2},
		{"canvas corner", 505, 606, 50, 21},
		{"off-screen left", -70, 0, -7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := Cell(tt.x, tt.y)
			if cx != tt.cx || cy != tt.cy {
				t.Errorf("Cell(%v, %v) = (%d, %d), expected (%d, %d)", tt.x, tt.y, cx, cy, tt.cx, tt.cy)
			}
		})
	}
}

func TestBoardSize(t *testing.T) {
	if BoardWidth != 50 {
		t.Errorf("BoardWidth = %d, expected 50", BoardWidth)
	}
	if BoardHeight != 22 {
		t.Errorf("BoardHeight = %d, expected 22", BoardHeight)
	}
}

func TestDrawImageAppliesOffset(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	surf := NewCellSurface(s)

	// Player at column 2, row 5.
	surf.DrawImage(glyphs[crossing.SpritePlayer], 202, 385)

	if s.Get(25, 15) != '◯' {
		t.Errorf("expected head at (25, 15), got %q", s.Get(25, 15))
	}
	if s.Get(24, 16) != '/' {
		t.Errorf("expected body at (24, 16), got %q", s.Get(24, 16))
	}
	if s.GetCell(25, 15).Color != core.ColorBrightYellow {
		t.Errorf("player color = %d, expected bright yellow", s.GetCell(25, 15).Color)
	}
}

func TestEnemyLandsOnMiddleLineOfLane(t *testing.T) {
	for row := 1; row <= 3; row++ {
		s := core.NewScreen(BoardWidth, BoardHeight)
		surf := NewCellSurface(s)

		surf.DrawImage(glyphs[crossing.SpriteEnemy], 0, crossing.ToPixelY(row))

		line := row*LinesPerRow + 1
		if s.Get(1, line) != '▐' {
			t.Errorf("row %d: expected enemy on line %d, got %q", row, line, s.Row(line))
		}
	}
}

func TestGlyphSpacesAreTransparent(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	surf := NewCellSurface(s)

	surf.DrawImage(glyphs[crossing.SpriteGrass], 202, 415)
	surf.DrawImage(glyphs[crossing.SpritePlayer], 202, 385)

	// The head line is " ◯ ": its edges keep the grass underneath.
	if s.Get(24, 15) != '░' {
		t.Errorf("expected grass to show through at (24, 15), got %q", s.Get(24, 15))
	}
}

func TestFillTextAlignment(t *testing.T) {
	style := core.TextStyle{Size: 24, Baseline: core.BaselineMiddle, Fill: core.ColorWhite}

	tests := []struct {
		name  string
		align core.TextAlign
		x     float64
		start int
	}{
		{"left", core.AlignLeft, 10, 0},
		{"right", core.AlignRight, 495, 43},
		{"center", core.AlignCenter, 252.5, 22},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := core.NewScreen(BoardWidth, BoardHeight)
			surf := NewCellSurface(s)
			st := style
			st.Align = tt.align

			surf.FillText("Won: 1", tt.x, 100, st)

			if s.Get(tt.start, 3) != 'W' {
				t.Errorf("expected text to start at column %d, row 3 is %q", tt.start, s.Row(3))
			}
		})
	}
}

func TestLargeTextIsFramed(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	surf := NewCellSurface(s)
	style := core.TextStyle{Size: 48, Align: core.AlignCenter, Baseline: core.BaselineMiddle, Fill: core.ColorWhite}

	surf.FillText("Start!", 252.5, 303, style)

	if s.Get(22, 10) != 'S' {
		t.Errorf("expected text at (22, 10), row is %q", s.Row(10))
	}
	if s.Get(20, 9) != '┌' {
		t.Errorf("expected frame corner at (20, 9), got %q", s.Get(20, 9))
	}
	if s.Get(29, 11) != '┘' {
		t.Errorf("expected frame corner at (29, 11), got %q", s.Get(29, 11))
	}
}

func TestScaledImageCentersInBox(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	surf := NewCellSurface(s)

	surf.DrawImageScaled(glyphs[crossing.SpriteHeart], 80, 47, 25, 42)

	if s.Get(9, 2) != '♥' {
		t.Errorf("expected heart at (9, 2), row is %q", s.Row(2))
	}
}

func TestForeignDrawableIgnored(t *testing.T) {
	s := core.NewScreen(BoardWidth, BoardHeight)
	surf := NewCellSurface(s)

	surf.DrawImage(foreignImage{}, 0, 0)
	surf.DrawImageScaled(foreignImage{}, 0, 0, 10, 10)
	surf.StrokeText("x", 0, 0, core.TextStyle{})

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if s.Get(x, y) != ' ' {
				t.Fatalf("expected empty screen, got %q at (%d, %d)", s.Get(x, y), x, y)
			}
		}
	}
}
