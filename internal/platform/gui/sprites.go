package gui

import (
	"context"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// Sprite sizes of the classic tile set: tiles and characters share one
// frame with transparent padding above the visible block.
const (
	frameW = crossing.CellWidth
	frameH = 171
	heartW = 50
	heartH = 85
)

// Sprite is the window drawable: an Ebitengine image.
type Sprite struct {
	ID  string
	img *ebiten.Image
}

// Size returns the image size in pixels.
func (s Sprite) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the underlying Ebitengine image.
func (s Sprite) Image() *ebiten.Image {
	return s.img
}

// shape describes a placeholder sprite: a frame with colored blocks.
type shape struct {
	w, h   int
	blocks []block
}

type block struct {
	rect  image.Rectangle
	color core.Color
}

// shapes draws every sprite as flat blocks laid out like the tile set,
// so entity draw origins line up with the terrain.
var shapes = map[string]shape{
	crossing.SpriteWater: {frameW, frameH, []block{{image.Rect(0, 50, 101, 171), core.ColorBlue}}},
	crossing.SpriteStone: {frameW, frameH, []block{{image.Rect(0, 50, 101, 171), core.ColorGray}}},
	crossing.SpriteGrass: {frameW, frameH, []block{{image.Rect(0, 50, 101, 171), core.ColorGreen}}},
	crossing.SpriteEnemy: {frameW, frameH, []block{
		{image.Rect(2, 77, 92, 143), core.ColorBrightRed},
		{image.Rect(72, 95, 99, 125), core.ColorRed},
	}},
	crossing.SpritePlayer: {frameW, frameH, []block{
		{image.Rect(34, 63, 67, 95), core.ColorBrightYellow},
		{image.Rect(26, 95, 75, 140), core.ColorOrange},
	}},
	crossing.SpriteRock: {frameW, frameH, []block{
		{image.Rect(22, 80, 79, 100), core.ColorWhite},
		{image.Rect(10, 100, 91, 150), core.ColorGray},
	}},
	crossing.SpriteHeart: {heartW, heartH, []block{
		{image.Rect(5, 20, 45, 55), core.ColorRed},
		{image.Rect(15, 55, 35, 70), core.ColorRed},
	}},
}

// DecodeSprite is the window asset decoder: it builds the placeholder
// image for an identifier.
func DecodeSprite(ctx context.Context, id string) (core.Drawable, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sh, ok := shapes[id]
	if !ok {
		return nil, fmt.Errorf("gui: no sprite for %q", id)
	}

	img := ebiten.NewImage(sh.w, sh.h)
	for _, b := range sh.blocks {
		img.SubImage(b.rect).(*ebiten.Image).Fill(RGBA(b.color))
	}
	return Sprite{ID: id, img: img}, nil
}
