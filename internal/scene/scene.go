// Package scene contains the drawings a host can run: the particle field
// and the small static and pointer-driven sketches.
package scene

import (
	"context"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/surface"
)

// Scene draws onto a canvas from frame callbacks. Start is called once; the
// canvas and scheduler stay borrowed until ctx is done.
type Scene interface {
	Name() string
	Start(ctx context.Context, c surface.Canvas, sched frame.Scheduler) error
	SetPaused(paused bool)
	Paused() bool
}

// Resetter is implemented by scenes that can start over.
type Resetter interface {
	Reset() error
}

// TrailToggler is implemented by scenes that can stop clearing between
// frames.
type TrailToggler interface {
	ToggleTrails() (on bool)
}

// PointerSink receives pointer positions in surface coordinates.
type PointerSink interface {
	Pointer(x, y float64)
}

// redrawer runs draw from a self-rescheduling frame callback. It is the
// shared plumbing for scenes that only draw when something changed.
type redrawer struct {
	ctx    context.Context
	sched  frame.Scheduler
	handle frame.Handle
	paused bool
	draw   func()
}

func (r *redrawer) start(ctx context.Context, sched frame.Scheduler, draw func()) {
	r.ctx, r.sched, r.draw = ctx, sched, draw
	r.request()
}

func (r *redrawer) request() {
	if r.paused || r.ctx.Err() != nil {
		return
	}
	r.handle = r.sched.Request(r.frame)
}

func (r *redrawer) frame() {
	r.handle = 0
	if r.ctx.Err() != nil {
		return
	}
	r.draw()
	r.request()
}

func (r *redrawer) setPaused(paused bool) {
	if paused == r.paused {
		return
	}
	r.paused = paused
	if paused {
		if r.handle != 0 {
			r.sched.Cancel(r.handle)
			r.handle = 0
		}
		return
	}
	if r.sched != nil && r.handle == 0 {
		r.request()
	}
}
