package surface

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Screen adapts an ebiten image. Ebiten hands out the screen image per Draw
// call, so the host binds it before flushing frame callbacks.
type Screen struct {
	img       *ebiten.Image
	antialias bool
}

// NewScreen returns an unbound screen. Until Bind it reports a zero size
// and ignores drawing.
func NewScreen(antialias bool) *Screen {
	return &Screen{antialias: antialias}
}

// Bind sets the image drawn to until the next Bind.
func (s *Screen) Bind(img *ebiten.Image) {
	s.img = img
}

// Size returns the bound image size.
func (s *Screen) Size() (int, int) {
	if s.img == nil {
		return 0, 0
	}
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Clear fills the image with transparent pixels.
func (s *Screen) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// FillCircle draws a filled circle.
func (s *Screen) FillCircle(x, y, r float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, s.antialias)
}

// FillRect draws a filled rectangle.
func (s *Screen) FillRect(x, y, w, h float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledRect(s.img, float32(x), float32(y), float32(w), float32(h), c, s.antialias)
}

// StrokeCircle draws a circle outline of the given width.
func (s *Screen) StrokeCircle(x, y, r, width float64, c color.Color) {
	if s.img == nil {
		return
	}
	vector.StrokeCircle(s.img, float32(x), float32(y), float32(r), float32(width), c, s.antialias)
}
