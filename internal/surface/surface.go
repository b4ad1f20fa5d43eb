// Package surface provides the drawing surfaces the particle field and the
// scenes render onto: an in-memory raster, an ebiten screen and a terminal.
package surface

import "image/color"

// Surface is a clearable 2D raster area that can fill circles.
type Surface interface {
	// Size returns the current width and height in pixels.
	Size() (w, h int)
	Clear()
	FillCircle(x, y, r float64, c color.Color)
}

// Canvas adds the extra primitives used by the static shape scenes.
type Canvas interface {
	Surface
	FillRect(x, y, w, h float64, c color.Color)
	StrokeCircle(x, y, r, width float64, c color.Color)
}
