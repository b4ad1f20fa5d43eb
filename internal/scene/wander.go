package scene

import (
	"math"

	"github.com/aquilax/go-perlin"
)

// Noise parameters for the wandering pointer
const (
	wanderAlpha   = 2.0
	wanderBeta    = 2.0
	wanderOctaves = 3
	wanderStep    = 0.01
	wanderSpread  = 0.6
)

// Wanderer produces a smooth pointer path from Perlin noise, standing in for
// a mouse on hosts that have none.
type Wanderer struct {
	noise *perlin.Perlin
	t     float64
}

func NewWanderer(seed int64) *Wanderer {
	return &Wanderer{noise: perlin.NewPerlin(wanderAlpha, wanderBeta, wanderOctaves, seed)}
}

// Next advances the path and returns a point inside a w x h surface.
func (wd *Wanderer) Next(w, h float64) (x, y float64) {
	wd.t += wanderStep
	nx := wd.noise.Noise2D(wd.t, 17.3)
	ny := wd.noise.Noise2D(31.7, wd.t)
	return spread(nx) * w, spread(ny) * h
}

// spread maps noise onto [0, 1).
func spread(n float64) float64 {
	u := 0.5 + n*wanderSpread
	return math.Min(math.Max(u, 0), math.Nextafter(1, 0))
}
