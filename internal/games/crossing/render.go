package crossing

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// HUD layout in canvas pixels.
const (
	hudMargin     = 10
	hudFirstLine  = 70
	hudSecondLine = 100
	heartX        = 80
	heartY        = 47
	heartW        = 25
	heartH        = 42
)

var (
	hudStyle = core.TextStyle{
		Size:     24,
		Bold:     true,
		Baseline: core.BaselineMiddle,
		Fill:     core.ColorWhite,
		Stroke:   core.ColorBlack,
	}
	statusStyle = core.TextStyle{
		Size:     48,
		Align:    core.AlignCenter,
		Baseline: core.BaselineMiddle,
		Fill:     core.ColorWhite,
		Stroke:   core.ColorBlack,
	}
)

// Render draws one full frame: terrain, enemies, obstacles, the player,
// the HUD and, while it is visible, the status overlay.
func (s *Session) Render(dst core.Surface, res core.ResourceProvider, now time.Time, elapsed time.Duration) {
	s.renderTerrain(dst, res)
	s.renderEntities(dst, res)
	s.renderHUD(dst, res, elapsed)

	if s.status.Visible(now) {
		x, y := float64(CanvasWidth)/2, float64(CanvasHeight)/2
		dst.FillText(s.status.Text, x, y, statusStyle)
		dst.StrokeText(s.status.Text, x, y, statusStyle)
	}
}

func (s *Session) renderTerrain(dst core.Surface, res core.ResourceProvider) {
	for row := 0; row < Rows; row++ {
		tile := res.Get(rowSprites[row])
		if tile == nil {
			continue
		}
		for col := 0; col < Cols; col++ {
			dst.DrawImage(tile, float64(col*CellWidth), float64(row*CellHeight))
		}
	}
}

func (s *Session) renderEntities(dst core.Surface, res core.ResourceProvider) {
	for _, e := range s.spawner.Enemies() {
		drawEntity(dst, res, e.Sprite, e)
	}
	for _, o := range s.obstacles {
		drawEntity(dst, res, o.Sprite, o)
	}
	drawEntity(dst, res, s.player.Sprite, s.player)
}

func (s *Session) renderHUD(dst core.Surface, res core.ResourceProvider, elapsed time.Duration) {
	right := hudStyle
	right.Align = core.AlignRight
	left := hudStyle
	left.Align = core.AlignLeft

	x := float64(CanvasWidth - hudMargin)
	drawOutlined(dst, fmt.Sprintf("Time: %d", int(elapsed.Seconds())), x, hudFirstLine, right)
	drawOutlined(dst, fmt.Sprintf("Won: %d", s.player.Wins), x, hudSecondLine, right)

	if heart := res.Get(SpriteHeart); heart != nil {
		for i := 0; i < s.player.Lives; i++ {
			dst.DrawImageScaled(heart, float64(heartX+heartW*i), heartY, heartW, heartH)
		}
	}
	drawOutlined(dst, "Lives:", hudMargin, hudFirstLine, left)
}

// drawEntity draws sprite at the entity's pixel position, skipping
// identifiers the provider does not know.
func drawEntity(dst core.Surface, res core.ResourceProvider, sprite string, p Positioner) {
	img := res.Get(sprite)
	if img == nil {
		return
	}
	x, y := p.PixelPos()
	dst.DrawImage(img, x, y)
}

func drawOutlined(dst core.Surface, text string, x, y float64, style core.TextStyle) {
	dst.FillText(text, x, y, style)
	dst.StrokeText(text, x, y, style)
}
