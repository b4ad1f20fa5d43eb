// Package particle implements a field of independently drifting particles
// and the frame loop that advances and renders it.
package particle

import (
	"image/color"
	"math"

	"github.com/olivierh59500/canvas-particles/internal/surface"
)

// Sampling ranges for new particles
const (
	MinRadius = 1.0
	MaxRadius = 6.0
	MaxSpeed  = 1.5 // per axis, per tick
)

// DefaultColor is the fill used when a field is not given one.
var DefaultColor color.Color = color.RGBA{R: 255, A: 255}

// Source yields uniform values in [0, 1). *rand.Rand satisfies it.
type Source interface {
	Float64() float64
}

// Particle is a point moving at constant velocity. Velocity, radius and
// color are fixed at creation; only the position changes.
type Particle struct {
	X, Y   float64
	vx, vy float64
	radius float64
	color  color.Color
}

// New samples a particle inside a w x h surface.
func New(src Source, w, h float64, c color.Color) Particle {
	return Particle{
		X:      uniform(src, 0, w),
		Y:      uniform(src, 0, h),
		radius: uniform(src, MinRadius, MaxRadius),
		vx:     uniform(src, -MaxSpeed, MaxSpeed),
		vy:     uniform(src, -MaxSpeed, MaxSpeed),
		color:  c,
	}
}

// Velocity returns the per-tick displacement.
func (p *Particle) Velocity() (vx, vy float64) {
	return p.vx, p.vy
}

// Radius returns the circle radius.
func (p *Particle) Radius() float64 {
	return p.radius
}

// Color returns the fill color.
func (p *Particle) Color() color.Color {
	return p.color
}

// Advance moves the particle by one tick. There is no bounds handling: a
// particle that leaves the surface keeps drifting.
func (p *Particle) Advance() {
	p.X += p.vx
	p.Y += p.vy
}

// Render fills the particle's circle on s.
func (p *Particle) Render(s surface.Surface) {
	s.FillCircle(p.X, p.Y, p.radius, p.color)
}

// uniform maps src onto [lo, hi).
func uniform(src Source, lo, hi float64) float64 {
	v := lo + src.Float64()*(hi-lo)
	if v >= hi {
		// rounding can land on hi for u close to 1
		v = math.Nextafter(hi, lo)
	}
	return v
}
