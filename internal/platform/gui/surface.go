package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Metrics of the Ebitengine debug font.
const (
	glyphW = 6
	glyphH = 16
)

// Surface implements core.Surface on an Ebitengine image.
type Surface struct {
	dst   *ebiten.Image
	texts map[string]*ebiten.Image
}

// NewSurface wraps dst.
func NewSurface(dst *ebiten.Image) *Surface {
	return &Surface{dst: dst, texts: make(map[string]*ebiten.Image)}
}

// DrawImage draws a sprite with its top-left corner at (x, y).
func (s *Surface) DrawImage(img core.Drawable, x, y float64) {
	sp, ok := img.(Sprite)
	if !ok {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(sp.img, op)
}

// DrawImageScaled draws a sprite stretched into the w by h box at (x, y).
func (s *Surface) DrawImageScaled(img core.Drawable, x, y, w, h float64) {
	sp, ok := img.(Sprite)
	if !ok {
		return
	}
	iw, ih := sp.Size()
	if iw == 0 || ih == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(iw), h/float64(ih))
	op.GeoM.Translate(x, y)
	s.dst.DrawImage(sp.img, op)
}

// FillText draws text scaled up from the debug font to roughly the style
// size and tinted with the fill color.
func (s *Surface) FillText(text string, x, y float64, style core.TextStyle) {
	s.drawText(text, x, y, style, style.Fill)
}

// StrokeText draws a one-pixel outline in the stroke color around the
// text, then redraws the fill on top of it.
func (s *Surface) StrokeText(text string, x, y float64, style core.TextStyle) {
	for _, d := range [][2]float64{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		s.drawText(text, x+d[0], y+d[1], style, style.Stroke)
	}
	s.drawText(text, x, y, style, style.Fill)
}

func (s *Surface) drawText(text string, x, y float64, style core.TextStyle, c core.Color) {
	if text == "" {
		return
	}
	img := s.textImage(text)
	scale := TextScale(style.Size)
	ox, oy := TextOrigin(text, x, y, style)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(ox, oy)
	op.ColorScale.ScaleWithColor(RGBA(c))
	s.dst.DrawImage(img, op)
}

// textImage returns text rendered once in white at debug-font size.
func (s *Surface) textImage(text string) *ebiten.Image {
	if img, ok := s.texts[text]; ok {
		return img
	}
	img := ebiten.NewImage(len([]rune(text))*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, text, 0, 0)
	s.texts[text] = img
	return img
}

// TextScale returns the debug-font scale for a font size in pixels.
func TextScale(size int) float64 {
	if size <= glyphH {
		return 1
	}
	return float64(size) / glyphH
}

// TextOrigin returns the top-left corner of text anchored at (x, y) per
// the style's alignment and baseline.
func TextOrigin(text string, x, y float64, style core.TextStyle) (float64, float64) {
	scale := TextScale(style.Size)
	w := float64(len([]rune(text))*glyphW) * scale
	h := glyphH * scale

	switch style.Align {
	case core.AlignCenter:
		x -= w / 2
	case core.AlignRight:
		x -= w
	}
	switch style.Baseline {
	case core.BaselineMiddle:
		y -= h / 2
	case core.BaselineBottom:
		y -= h
	}
	return x, y
}
