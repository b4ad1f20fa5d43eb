package surface

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// halfBlock draws the top pixel as foreground and the bottom pixel as background
const halfBlock = '▀'

// Terminal renders onto a tcell screen. Every cell holds two vertically
// stacked pixels, so the surface is cols x 2*rows pixels.
type Terminal struct {
	screen tcell.Screen
	raster *Raster
}

// NewTerminal sizes the pixel buffer to the current screen.
func NewTerminal(screen tcell.Screen) *Terminal {
	cols, rows := screen.Size()
	return &Terminal{
		screen: screen,
		raster: NewRaster(cols, rows*2),
	}
}

// Sync follows the terminal size. A size change blanks the pixel buffer and
// reports true.
func (t *Terminal) Sync() bool {
	cols, rows := t.screen.Size()
	w, h := t.raster.Size()
	if w == cols && h == rows*2 {
		return false
	}
	t.raster.Resize(cols, rows*2)
	return true
}

func (t *Terminal) Size() (int, int) {
	return t.raster.Size()
}

func (t *Terminal) Clear() {
	t.raster.Clear()
}

func (t *Terminal) FillCircle(x, y, r float64, c color.Color) {
	t.raster.FillCircle(x, y, r, c)
}

func (t *Terminal) FillRect(x, y, w, h float64, c color.Color) {
	t.raster.FillRect(x, y, w, h, c)
}

func (t *Terminal) StrokeCircle(x, y, r, width float64, c color.Color) {
	t.raster.StrokeCircle(x, y, r, width, c)
}

// Present copies the pixel buffer to the screen cells and shows it.
func (t *Terminal) Present() {
	img := t.raster.Image()
	w, h := t.raster.Size()
	for cy := 0; cy*2 < h; cy++ {
		for cx := 0; cx < w; cx++ {
			top := img.RGBAAt(cx, cy*2)
			bottom := img.RGBAAt(cx, cy*2+1)
			if top.A == 0 && bottom.A == 0 {
				t.screen.SetContent(cx, cy, ' ', nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(cellColor(top)).Background(cellColor(bottom))
			t.screen.SetContent(cx, cy, halfBlock, nil, style)
		}
	}
	t.screen.Show()
}

// cellColor un-premultiplies c. A cell has no alpha, so a partly covered
// edge pixel shows the full fill color instead of a darkened one.
func cellColor(c color.RGBA) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	a := int32(c.A)
	return tcell.NewRGBColor(int32(c.R)*255/a, int32(c.G)*255/a, int32(c.B)*255/a)
}
