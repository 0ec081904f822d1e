package core

// Drawable is an opaque image handle produced by a resource provider.
// The game never inspects it beyond its natural size in pixels.
type Drawable interface {
	Size() (w, h int)
}

// ResourceProvider hands out drawables by identifier. Get is called on every
// render pass and must be cheap; it returns nil for unknown identifiers.
type ResourceProvider interface {
	Get(id string) Drawable
}

// TextAlign is the horizontal anchor of a text draw call.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// TextBaseline is the vertical anchor of a text draw call.
type TextBaseline int

const (
	BaselineTop TextBaseline = iota
	BaselineMiddle
	BaselineBottom
)

// TextStyle describes how a text draw call is rendered.
type TextStyle struct {
	Size     int // Nominal font size in pixels
	Bold     bool
	Align    TextAlign
	Baseline TextBaseline
	Fill     Color
	Stroke   Color
}

// Surface is the drawing sink used by the render phase. Coordinates are in
// canvas pixels; implementations project them onto their own medium.
// The game only writes to a surface, it never reads back.
type Surface interface {
	// DrawImage draws img with its top-left corner at (x, y) at natural size.
	DrawImage(img Drawable, x, y float64)

	// DrawImageScaled draws img into the w×h box at (x, y).
	DrawImageScaled(img Drawable, x, y, w, h float64)

	// FillText draws filled text anchored at (x, y).
	FillText(text string, x, y float64, style TextStyle)

	// StrokeText draws the outline of text anchored at (x, y).
	StrokeText(text string, x, y float64, style TextStyle)
}
