// Package renderer draws the scene background.
package renderer

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// noiseScale controls the angular size of star clumps.
const noiseScale = 2.0

// Starfield renders a static shell of background stars around the scene.
// Star density follows a smooth noise field so the sky reads as clumpy
// bands rather than uniform scatter.
type Starfield struct {
	stars []rl.Vector3
	tints []rl.Color
}

// NewStarfield generates count stars on a sphere of the given radius,
// positioned deterministically from rng.
func NewStarfield(count int, radius float32, rng *rand.Rand) *Starfield {
	s := &Starfield{
		stars: make([]rl.Vector3, 0, count),
		tints: make([]rl.Color, 0, count),
	}

	density := opensimplex.NewNormalized(rng.Int63())

	for len(s.stars) < count {
		// Uniform direction on the sphere
		theta := rng.Float64() * 2 * math.Pi
		z := rng.Float64()*2 - 1
		r := math.Sqrt(1 - z*z)

		dx := r * math.Cos(theta)
		dz := r * math.Sin(theta)

		// Thin the uniform scatter by the noise field; dense regions keep
		// most candidates, sparse regions few.
		d := density.Eval3(dx*noiseScale, z*noiseScale, dz*noiseScale)
		if rng.Float64() > 0.15+0.85*d {
			continue
		}

		s.stars = append(s.stars, rl.Vector3{
			X: float32(dx) * radius,
			Y: float32(z) * radius,
			Z: float32(dz) * radius,
		})

		// Brighter stars in denser regions
		v := uint8(110 + rng.Intn(66) + int(d*80))
		s.tints = append(s.tints, rl.NewColor(v, v, v, 255))
	}

	return s
}

// Draw renders the starfield. Must be called inside 3D mode.
func (s *Starfield) Draw() {
	for i, star := range s.stars {
		rl.DrawPoint3D(star, s.tints[i])
	}
}
