package crossing

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// t0 is the reference instant tests build their clocks from.
var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// scriptedRand replays fixed values, cycling when exhausted.
type scriptedRand struct {
	ints   []int
	floats []float64
	ni, nf int
}

func (r *scriptedRand) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ni%len(r.ints)]
	r.ni++
	return v % n
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.nf%len(r.floats)]
	r.nf++
	return v
}

type stubImage struct {
	id   string
	w, h int
}

func (s stubImage) Size() (int, int) {
	return s.w, s.h
}

type stubResources map[string]core.Drawable

func (r stubResources) Get(id string) core.Drawable {
	img, ok := r[id]
	if !ok {
		return nil
	}
	return img
}

func allResources() stubResources {
	res := stubResources{}
	for _, id := range Manifest() {
		res[id] = stubImage{id: id, w: CellWidth, h: 171}
	}
	return res
}

type drawCall struct {
	id     string
	x, y   float64
	scaled bool
}

// recordingSurface captures draw calls for inspection.
type recordingSurface struct {
	draws []drawCall
	texts []string
}

func (s *recordingSurface) DrawImage(img core.Drawable, x, y float64) {
	s.draws = append(s.draws, drawCall{id: img.(stubImage).id, x: x, y: y})
}

func (s *recordingSurface) DrawImageScaled(img core.Drawable, x, y, w, h float64) {
	s.draws = append(s.draws, drawCall{id: img.(stubImage).id, x: x, y: y, scaled: true})
}

func (s *recordingSurface) FillText(text string, x, y float64, style core.TextStyle) {
	s.texts = append(s.texts, text)
}

func (s *recordingSurface) StrokeText(text string, x, y float64, style core.TextStyle) {}

func (s *recordingSurface) count(id string) int {
	n := 0
	for _, d := range s.draws {
		if d.id == id {
			n++
		}
	}
	return n
}

func (s *recordingSurface) hasText(text string) bool {
	for _, t := range s.texts {
		if t == text {
			return true
		}
	}
	return false
}
