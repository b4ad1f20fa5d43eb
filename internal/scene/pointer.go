package scene

import (
	"context"
	"image/color"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/surface"
)

// Dot size and color for pointer marks
const PointerRadius = 2.0

var PointerColor color.Color = blue

type point struct{ x, y float64 }

// Pointer leaves a dot wherever the pointer moves or clicks. The canvas is
// never cleared, so the dots add up to a trace.
type Pointer struct {
	canvas  surface.Canvas
	pending []point
	r       redrawer
}

func NewPointer() *Pointer {
	return &Pointer{}
}

func (p *Pointer) Name() string { return "pointer" }

func (p *Pointer) Start(ctx context.Context, c surface.Canvas, sched frame.Scheduler) error {
	p.canvas = c
	p.r.start(ctx, sched, p.flush)
	return nil
}

// Pointer queues a dot for the next frame. Positions reported while paused
// are dropped.
func (p *Pointer) Pointer(x, y float64) {
	if p.r.paused {
		return
	}
	p.pending = append(p.pending, point{x, y})
}

// Pending reports queued dots not yet drawn.
func (p *Pointer) Pending() int {
	return len(p.pending)
}

func (p *Pointer) flush() {
	for _, pt := range p.pending {
		p.canvas.FillCircle(pt.x, pt.y, PointerRadius, PointerColor)
	}
	p.pending = p.pending[:0]
}

func (p *Pointer) SetPaused(paused bool) { p.r.setPaused(paused) }

func (p *Pointer) Paused() bool { return p.r.paused }
