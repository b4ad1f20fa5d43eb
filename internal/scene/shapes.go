package scene

import (
	"context"
	"image/color"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/surface"
)

var (
	red  = color.RGBA{R: 255, A: 255}
	blue = color.RGBA{B: 255, A: 255}
)

// static draws a fixed picture and redraws it only after the canvas size
// changes, since a resize wipes the canvas.
type static struct {
	name   string
	paint  func(c surface.Canvas)
	canvas surface.Canvas
	w, h   int
	r      redrawer
}

func (s *static) Name() string { return s.name }

func (s *static) Start(ctx context.Context, c surface.Canvas, sched frame.Scheduler) error {
	s.canvas = c
	s.w, s.h = -1, -1
	s.r.start(ctx, sched, s.redraw)
	return nil
}

func (s *static) redraw() {
	w, h := s.canvas.Size()
	if w == s.w && h == s.h {
		return
	}
	s.w, s.h = w, h
	s.paint(s.canvas)
}

func (s *static) SetPaused(paused bool) { s.r.setPaused(paused) }

func (s *static) Paused() bool { return s.r.paused }

// NewShapes draws a filled red circle and a stroked blue one.
func NewShapes() Scene {
	return &static{name: "shapes", paint: paintShapes}
}

func paintShapes(c surface.Canvas) {
	c.FillCircle(100, 100, 50, red)
	c.StrokeCircle(200, 200, 50, 5, blue)
}

// NewBasic draws nested squares, the inner one under a saved and restored
// fill style.
func NewBasic() Scene {
	return &static{name: "basic", paint: paintBasic}
}

func paintBasic(c surface.Canvas) {
	p := newPen(c, blue)
	p.fillRect(50, 50, 100, 100)
	p.save()
	p.fill = red
	p.fillRect(70, 70, 50, 50)
	p.restore()
	p.fillRect(90, 90, 30, 30)
}

// pen tracks a fill style with a save/restore stack.
type pen struct {
	c     surface.Canvas
	fill  color.Color
	saved []color.Color
}

func newPen(c surface.Canvas, fill color.Color) *pen {
	return &pen{c: c, fill: fill}
}

func (p *pen) save() {
	p.saved = append(p.saved, p.fill)
}

// restore pops the last saved style. Unbalanced restores are ignored.
func (p *pen) restore() {
	if len(p.saved) == 0 {
		return
	}
	p.fill = p.saved[len(p.saved)-1]
	p.saved = p.saved[:len(p.saved)-1]
}

func (p *pen) fillRect(x, y, w, h float64) {
	p.c.FillRect(x, y, w, h, p.fill)
}
