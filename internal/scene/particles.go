package scene

import (
	"context"
	"fmt"
	"log"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/particle"
	"github.com/olivierh59500/canvas-particles/internal/surface"
)

// Particles runs a particle field loop.
type Particles struct {
	field  *particle.Field
	count  int
	clear  bool
	canvas surface.Canvas
	loop   *particle.Loop
}

// NewParticles returns a scene that spreads count particles over the canvas
// on Start. clearEachFrame=false leaves trails.
func NewParticles(field *particle.Field, count int, clearEachFrame bool) *Particles {
	return &Particles{field: field, count: count, clear: clearEachFrame}
}

func (p *Particles) Name() string { return "particles" }

func (p *Particles) Start(ctx context.Context, c surface.Canvas, sched frame.Scheduler) error {
	if c == nil {
		return particle.ErrNoSurface
	}
	p.canvas = c
	if err := p.initialize(); err != nil {
		return err
	}

	loop, err := p.field.Run(ctx, c, sched, p.clear)
	if err != nil {
		return fmt.Errorf("start particles: %w", err)
	}
	p.loop = loop
	return nil
}

// Reset samples a new set of particles over the current canvas size.
func (p *Particles) Reset() error {
	if p.canvas == nil {
		return particle.ErrNoSurface
	}
	return p.initialize()
}

func (p *Particles) initialize() error {
	w, h := p.canvas.Size()
	if err := p.field.Initialize(p.count, float64(w), float64(h)); err != nil {
		return fmt.Errorf("particles: %w", err)
	}
	log.Printf("particles: %d particles on %dx%d", p.count, w, h)
	return nil
}

func (p *Particles) SetPaused(paused bool) {
	if p.loop == nil {
		return
	}
	if paused {
		p.loop.Stop()
	} else {
		p.loop.Start()
	}
}

func (p *Particles) Paused() bool {
	return p.loop == nil || !p.loop.Running()
}

func (p *Particles) ToggleTrails() bool {
	if p.loop == nil {
		return false
	}
	p.loop.SetClear(!p.loop.ClearEachFrame())
	return !p.loop.ClearEachFrame()
}

// Frames reports the number of ticks run so far.
func (p *Particles) Frames() uint64 {
	if p.loop == nil {
		return 0
	}
	return p.loop.Frames()
}
