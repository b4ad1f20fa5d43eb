package surface

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points for a quarter-circle approximation
const kappa = 0.5522847498

// Raster is an in-memory RGBA surface. Used by the headless host and as the
// pixel buffer behind the terminal surface.
type Raster struct {
	img *image.RGBA
	z   vector.Rasterizer
	box image.Rectangle // pixels covered by the primitive being drawn
}

// NewRaster returns a transparent raster of the given size.
func NewRaster(w, h int) *Raster {
	return &Raster{img: image.NewRGBA(image.Rect(0, 0, w, h))}
}

// Size returns the raster size in pixels.
func (rs *Raster) Size() (int, int) {
	b := rs.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize replaces the pixel buffer with a blank one, like resizing a canvas.
func (rs *Raster) Resize(w, h int) {
	if cw, ch := rs.Size(); cw == w && ch == h {
		return
	}
	rs.img = image.NewRGBA(image.Rect(0, 0, w, h))
}

// Clear resets every pixel to transparent.
func (rs *Raster) Clear() {
	clear(rs.img.Pix)
}

// Image exposes the backing image. It is replaced on Resize.
func (rs *Raster) Image() *image.RGBA {
	return rs.img
}

// FillCircle fills a disc. Only the pixels under its bounding box are touched.
func (rs *Raster) FillCircle(x, y, r float64, c color.Color) {
	if r <= 0 || !rs.begin(x-r, y-r, x+r, y+r) {
		return
	}
	rs.circlePath(x, y, r, false)
	rs.fill(c)
}

// FillRect fills an axis-aligned rectangle.
func (rs *Raster) FillRect(x, y, w, h float64, c color.Color) {
	if w <= 0 || h <= 0 || !rs.begin(x, y, x+w, y+h) {
		return
	}
	rs.moveTo(x, y)
	rs.lineTo(x+w, y)
	rs.lineTo(x+w, y+h)
	rs.lineTo(x, y+h)
	rs.z.ClosePath()
	rs.fill(c)
}

// StrokeCircle draws a ring centered on the circle outline.
func (rs *Raster) StrokeCircle(x, y, r, width float64, c color.Color) {
	outer := r + width/2
	inner := math.Max(r-width/2, 0)
	if width <= 0 || !rs.begin(x-outer, y-outer, x+outer, y+outer) {
		return
	}
	rs.circlePath(x, y, outer, false)
	if inner > 0 {
		// opposite winding cancels coverage inside the ring
		rs.circlePath(x, y, inner, true)
	}
	rs.fill(c)
}

// WritePNG encodes the current pixels.
func (rs *Raster) WritePNG(w io.Writer) error {
	return png.Encode(w, rs.img)
}

// begin sizes the rasterizer to the pixel box covering x0,y0..x1,y1,
// clipped to the image. It reports false when nothing is visible.
// Path coordinates are then relative to the box origin.
func (rs *Raster) begin(x0, y0, x1, y1 float64) bool {
	box := image.Rect(
		int(math.Floor(x0)), int(math.Floor(y0)),
		int(math.Ceil(x1)), int(math.Ceil(y1)),
	).Intersect(rs.img.Bounds())
	if box.Empty() {
		return false
	}
	rs.box = box
	rs.z.Reset(box.Dx(), box.Dy())
	return true
}

func (rs *Raster) fill(c color.Color) {
	rs.z.Draw(rs.img, rs.box, image.NewUniform(c), image.Point{})
}

// local converts image coordinates to rasterizer coordinates.
func (rs *Raster) local(x, y float64) (float32, float32) {
	return float32(x - float64(rs.box.Min.X)), float32(y - float64(rs.box.Min.Y))
}

func (rs *Raster) moveTo(x, y float64) {
	rs.z.MoveTo(rs.local(x, y))
}

func (rs *Raster) lineTo(x, y float64) {
	rs.z.LineTo(rs.local(x, y))
}

func (rs *Raster) cubeTo(x0, y0, x1, y1, x, y float64) {
	ax, ay := rs.local(x0, y0)
	bx, by := rs.local(x1, y1)
	cx, cy := rs.local(x, y)
	rs.z.CubeTo(ax, ay, bx, by, cx, cy)
}

func (rs *Raster) circlePath(cx, cy, r float64, reverse bool) {
	k := r * kappa
	rs.moveTo(cx+r, cy)
	if !reverse {
		rs.cubeTo(cx+r, cy+k, cx+k, cy+r, cx, cy+r)
		rs.cubeTo(cx-k, cy+r, cx-r, cy+k, cx-r, cy)
		rs.cubeTo(cx-r, cy-k, cx-k, cy-r, cx, cy-r)
		rs.cubeTo(cx+k, cy-r, cx+r, cy-k, cx+r, cy)
	} else {
		rs.cubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
		rs.cubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
		rs.cubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
		rs.cubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	}
	rs.z.ClosePath()
}
