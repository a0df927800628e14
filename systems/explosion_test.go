package systems

import (
	"math"
	"math/rand"
	"testing"

	"github.com/pthm-cable/gallery/components"
)

const refTick = 1.0 / 60.0

func testParams() ExplosionParams {
	return ExplosionParams{
		ParticleCount:  30,
		VelocityRange:  4.0,
		SizeMin:        0.2,
		SizeMax:        0.7,
		DampingFactor:  0.98,
		ShrinkFactor:   0.97,
		OpacityDecay:   0.8,
		ReferenceTick:  refTick,
		FlashIntensity: 50,
		Palette:        []components.Color{{R: 255, G: 160, B: 40}, {R: 255, G: 230, B: 90}},
	}
}

func testRNG() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

func TestNewExplosion_ParticleSpawn(t *testing.T) {
	origin := components.Position{X: 3, Y: 5, Z: -2}
	e := NewExplosion(1, origin, testRNG(), testParams())

	if len(e.Particles) != 30 {
		t.Fatalf("expected 30 particles, got %d", len(e.Particles))
	}
	if e.Opacity != 1.0 {
		t.Errorf("expected opacity 1.0, got %f", e.Opacity)
	}

	for i, p := range e.Particles {
		if p.X != origin.X || p.Y != origin.Y || p.Z != origin.Z {
			t.Errorf("particle %d not at origin: (%f, %f, %f)", i, p.X, p.Y, p.Z)
		}
		for _, v := range []float32{p.VX, p.VY, p.VZ} {
			if v < -4.0 || v > 4.0 {
				t.Errorf("particle %d velocity %f out of [-4, 4]", i, v)
			}
		}
		if p.Size < 0.2 || p.Size > 0.7 {
			t.Errorf("particle %d size %f out of [0.2, 0.7]", i, p.Size)
		}
	}
}

func TestExplosion_VelocityDampingOverTicks(t *testing.T) {
	e := NewExplosion(1, components.Position{}, testRNG(), testParams())
	initial := e.Particles[0].VX

	// At dt == referenceTick the decay is exactly the per-tick factor
	for i := 0; i < 10; i++ {
		e.Update(refTick)
	}

	want := initial * float32(math.Pow(0.98, 10))
	got := e.Particles[0].VX
	if math.Abs(float64(got-want)) > 1e-4 {
		t.Errorf("expected velocity %.6f after 10 ticks, got %.6f", want, got)
	}
}

func TestExplosion_SizeShrinksMonotonically(t *testing.T) {
	e := NewExplosion(1, components.Position{}, testRNG(), testParams())
	prev := e.Particles[0].Size

	for i := 0; i < 20; i++ {
		e.Update(refTick)
		size := e.Particles[0].Size
		if size >= prev {
			t.Fatalf("size did not shrink at tick %d: %f >= %f", i, size, prev)
		}
		prev = size
	}
}

func TestExplosion_OpacityReachesZeroNearExpectedAge(t *testing.T) {
	e := NewExplosion(1, components.Position{}, testRNG(), testParams())

	dt := 0.05
	for !e.Completed() {
		e.Update(dt)
		if e.Opacity < 0 {
			t.Fatalf("opacity went negative: %f", e.Opacity)
		}
	}

	// Decay 0.8/s from 1.0 gives a 1.25s lifetime
	if math.Abs(e.Age-1.25) > dt {
		t.Errorf("expected completion near age 1.25, got %f", e.Age)
	}
	if e.Opacity != 0 {
		t.Errorf("expected final opacity exactly 0, got %f", e.Opacity)
	}
}

func TestExplosion_CompletesExactlyOnce(t *testing.T) {
	e := NewExplosion(1, components.Position{}, testRNG(), testParams())

	completions := 0
	for i := 0; i < 200; i++ {
		if e.Update(0.05) {
			completions++
		}
	}

	if completions != 1 {
		t.Errorf("expected exactly one completion signal, got %d", completions)
	}
	if !e.Completed() {
		t.Error("expected effect to be completed")
	}
}

func TestExplosion_UpdateAfterCompletionIsNoOp(t *testing.T) {
	e := NewExplosion(1, components.Position{}, testRNG(), testParams())
	for !e.Completed() {
		e.Update(0.1)
	}

	pos := e.Particles[0]
	e.Update(0.1)
	if e.Particles[0] != pos {
		t.Error("particles moved after completion")
	}
}

func TestExplosion_FlashFadesWithOpacity(t *testing.T) {
	e := NewExplosion(1, components.Position{}, testRNG(), testParams())

	if e.FlashIntensity() != 50 {
		t.Errorf("expected initial flash 50, got %f", e.FlashIntensity())
	}

	e.Update(refTick)
	want := 50 * e.Opacity
	if math.Abs(float64(e.FlashIntensity()-want)) > 1e-5 {
		t.Errorf("expected flash %.6f, got %.6f", want, e.FlashIntensity())
	}

	for !e.Completed() {
		e.Update(0.1)
	}
	if e.FlashIntensity() != 0 {
		t.Errorf("expected zero flash after completion, got %f", e.FlashIntensity())
	}
}

func TestExplosionParams_Sanitized(t *testing.T) {
	p := ExplosionParams{
		ParticleCount: -3,
		SizeMin:       -1,
		SizeMax:       -2,
		ReferenceTick: 0,
	}
	e := NewExplosion(1, components.Position{}, testRNG(), p)

	if len(e.Particles) != 1 {
		t.Errorf("expected particle count clamped to 1, got %d", len(e.Particles))
	}
	if e.Particles[0].Size <= 0 {
		t.Errorf("expected positive size, got %f", e.Particles[0].Size)
	}
	if e.Particles[0].Color == (components.Color{}) {
		t.Error("expected fallback palette color")
	}
}
