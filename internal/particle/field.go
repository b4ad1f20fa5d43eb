package particle

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/olivierh59500/canvas-particles/internal/surface"
)

var (
	ErrInvalidCount    = errors.New("particle count must not be negative")
	ErrSurfaceNotReady = errors.New("surface has no area")
	ErrNotInitialized  = errors.New("field not initialized")
)

// Field owns a fixed set of particles between initializations.
type Field struct {
	src         Source
	color       color.Color
	particles   []Particle
	initialized bool
}

// NewField returns an uninitialized field sampling from src. A nil color
// selects DefaultColor.
func NewField(src Source, c color.Color) *Field {
	if c == nil {
		c = DefaultColor
	}
	return &Field{src: src, color: c}
}

// Initialize replaces the whole set with count fresh particles sampled over
// a w x h surface.
func (f *Field) Initialize(count int, w, h float64) error {
	if count < 0 {
		return fmt.Errorf("initialize %d: %w", count, ErrInvalidCount)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("initialize on %gx%g: %w", w, h, ErrSurfaceNotReady)
	}

	particles := make([]Particle, count)
	for i := range particles {
		particles[i] = New(f.src, w, h, f.color)
	}
	f.particles = particles
	f.initialized = true
	return nil
}

// Initialized reports whether Initialize has succeeded at least once.
func (f *Field) Initialized() bool {
	return f.initialized
}

// Len returns the number of particles.
func (f *Field) Len() int {
	return len(f.particles)
}

// Particles returns a copy of the current particles.
func (f *Field) Particles() []Particle {
	out := make([]Particle, len(f.particles))
	copy(out, f.particles)
	return out
}

// Tick advances then renders every particle. Particles are independent, so
// each is drawn right after its own move.
func (f *Field) Tick(s surface.Surface) {
	for i := range f.particles {
		p := &f.particles[i]
		p.Advance()
		p.Render(s)
	}
}
