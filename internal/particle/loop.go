package particle

import (
	"context"
	"errors"
	"log"

	"github.com/olivierh59500/canvas-particles/internal/frame"
	"github.com/olivierh59500/canvas-particles/internal/surface"
)

var (
	ErrNoSurface   = errors.New("no surface")
	ErrNoScheduler = errors.New("no frame scheduler")
)

// Loop drives one tick of a field per frame. Each frame optionally clears
// the surface, ticks, then requests the next frame. The surface and
// scheduler are borrowed; stopping the loop releases nothing.
type Loop struct {
	ctx     context.Context
	field   *Field
	surface surface.Surface
	sched   frame.Scheduler

	clear   bool
	running bool
	handle  frame.Handle
	frames  uint64
}

// Run starts a loop over an initialized field. The loop ends when Stop is
// called or ctx is done; the first frame runs on the scheduler's next
// refresh.
func (f *Field) Run(ctx context.Context, s surface.Surface, sched frame.Scheduler, clearEachFrame bool) (*Loop, error) {
	switch {
	case !f.initialized:
		return nil, ErrNotInitialized
	case s == nil:
		return nil, ErrNoSurface
	case sched == nil:
		return nil, ErrNoScheduler
	}

	l := &Loop{
		ctx:     ctx,
		field:   f,
		surface: s,
		sched:   sched,
		clear:   clearEachFrame,
	}
	l.Start()
	return l, nil
}

// Start resumes a stopped loop. No-op while running or once ctx is done.
func (l *Loop) Start() {
	if l.running || l.ctx.Err() != nil {
		return
	}
	l.running = true
	l.handle = l.sched.Request(l.frame)
}

// Stop cancels the pending frame. Particles do not move until Start.
func (l *Loop) Stop() {
	if !l.running {
		return
	}
	l.running = false
	l.sched.Cancel(l.handle)
	l.handle = 0
}

// Running reports whether a frame is scheduled.
func (l *Loop) Running() bool {
	return l.running
}

// Frames counts completed ticks.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// ClearEachFrame reports whether the surface is cleared before each tick.
func (l *Loop) ClearEachFrame() bool {
	return l.clear
}

// SetClear toggles clearing before each tick. With clearing off, particles
// leave trails.
func (l *Loop) SetClear(on bool) {
	l.clear = on
}

func (l *Loop) frame() {
	l.handle = 0
	if !l.running {
		return
	}
	if err := l.ctx.Err(); err != nil {
		l.running = false
		log.Printf("particle: loop stopped after %d frames: %v", l.frames, err)
		return
	}

	if l.clear {
		l.surface.Clear()
	}
	l.field.Tick(l.surface)
	l.frames++

	l.handle = l.sched.Request(l.frame)
}
