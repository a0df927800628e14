package systems

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/gallery/components"
)

// ExplosionParams holds the tuning for explosion effects.
type ExplosionParams struct {
	ParticleCount  int
	VelocityRange  float32 // Per-axis uniform bound, velocity in [-v, v]
	SizeMin        float32
	SizeMax        float32
	DampingFactor  float32 // Velocity decay per reference tick
	ShrinkFactor   float32 // Size decay per reference tick
	OpacityDecay   float32 // Opacity loss per second
	ReferenceTick  float64 // Tick duration the decay factors are defined at
	FlashIntensity float32
	Palette        []components.Color
}

// sanitized returns a copy with out-of-range values clamped to safe minima.
// Bad values come only from user config; they are recovered locally and
// never surfaced.
func (p ExplosionParams) sanitized() ExplosionParams {
	if p.ParticleCount <= 0 {
		p.ParticleCount = 1
	}
	if p.SizeMin <= 0 {
		p.SizeMin = 0.05
	}
	if p.SizeMax < p.SizeMin {
		p.SizeMax = p.SizeMin
	}
	if p.ReferenceTick <= 0 {
		p.ReferenceTick = 1.0 / 60.0
	}
	if len(p.Palette) == 0 {
		p.Palette = []components.Color{{R: 255, G: 160, B: 40}}
	}
	return p
}

// Particle is a single explosion fragment.
type Particle struct {
	X, Y, Z    float32
	VX, VY, VZ float32
	Size       float32
	Color      components.Color
}

// Explosion is a transient particle burst spawned at a destroyed body's
// position. Particle count is fixed at creation; the effect decays until
// its opacity reaches zero, then completes exactly once.
type Explosion struct {
	ID        uint32
	Origin    components.Position
	Particles []Particle
	Opacity   float32
	Age       float64

	params    ExplosionParams
	completed bool
}

// NewExplosion spawns an explosion at origin. All particles start at the
// origin with uniformly random velocities, sizes, and palette colors drawn
// from rng.
func NewExplosion(id uint32, origin components.Position, rng *rand.Rand, params ExplosionParams) *Explosion {
	params = params.sanitized()

	e := &Explosion{
		ID:        id,
		Origin:    origin,
		Particles: make([]Particle, params.ParticleCount),
		Opacity:   1.0,
		params:    params,
	}

	v := params.VelocityRange
	for i := range e.Particles {
		e.Particles[i] = Particle{
			X:     origin.X,
			Y:     origin.Y,
			Z:     origin.Z,
			VX:    (rng.Float32()*2 - 1) * v,
			VY:    (rng.Float32()*2 - 1) * v,
			VZ:    (rng.Float32()*2 - 1) * v,
			Size:  params.SizeMin + rng.Float32()*(params.SizeMax-params.SizeMin),
			Color: params.Palette[rng.Intn(len(params.Palette))],
		}
	}

	return e
}

// Update integrates the effect by dt seconds. Velocity and size decay
// exponentially, normalized to the reference tick so behavior is identical
// at any frame rate. Returns true exactly once, on the tick opacity reaches
// zero; updating a completed effect is a no-op.
func (e *Explosion) Update(dt float64) bool {
	if e.completed {
		return false
	}

	d := float32(dt)
	// factor^(dt/referenceTick): equals the plain per-tick factor when
	// dt == referenceTick, and stays consistent at other frame rates.
	ticks := dt / e.params.ReferenceTick
	damp := float32(math.Pow(float64(e.params.DampingFactor), ticks))
	shrink := float32(math.Pow(float64(e.params.ShrinkFactor), ticks))

	for i := range e.Particles {
		p := &e.Particles[i]
		p.X += p.VX * d
		p.Y += p.VY * d
		p.Z += p.VZ * d
		p.VX *= damp
		p.VY *= damp
		p.VZ *= damp
		p.Size *= shrink
	}

	e.Age += dt
	e.Opacity -= e.params.OpacityDecay * d
	if e.Opacity <= 0 {
		e.Opacity = 0
		e.completed = true
		return true
	}
	return false
}

// Completed reports whether the effect has fully decayed.
func (e *Explosion) Completed() bool {
	return e.completed
}

// FlashIntensity returns the point-light intensity at the effect origin.
// It fades to zero in lockstep with particle opacity.
func (e *Explosion) FlashIntensity() float32 {
	return e.params.FlashIntensity * e.Opacity
}
