package game

import (
	"math"
	"math/rand"

	"github.com/pthm-cable/gallery/components"
	"github.com/pthm-cable/gallery/config"
	"github.com/pthm-cable/gallery/systems"
)

// spawnBodies creates the configured population of ships and asteroids.
// Bodies live for the whole scene; destruction only toggles their hit phase.
func (s *Scene) spawnBodies() {
	for i := 0; i < s.cfg.Scene.Ships; i++ {
		s.spawnBody(components.KindShip, &s.cfg.Orbits.Ship)
	}
	for i := 0; i < s.cfg.Scene.Asteroids; i++ {
		s.spawnBody(components.KindAsteroid, &s.cfg.Orbits.Asteroid)
	}
}

// spawnBody creates one body with orbit parameters drawn from the kind's
// configured ranges.
func (s *Scene) spawnBody(kind components.Kind, kc *config.OrbitKindConfig) {
	id := s.nextBodyID
	s.nextBodyID++

	orbit := randomOrbit(s.rng, kc, s.cfg.Orbits.MinRadius)
	pos, att := systems.OrbitPose(&orbit, 0)
	body := components.Body{ID: id, Kind: kind, Radius: float32(kc.BodyRadius)}
	hit := components.Hit{Phase: components.PhaseActive}

	entity := s.mapper.NewEntity(&pos, &att, &orbit, &body, &hit)
	s.entities[id] = entity
}

// randomOrbit draws orbit parameters uniformly from the configured ranges.
// The radius is clamped to minRadius so every body orbits at a positive
// distance even if a user config allows a degenerate draw.
func randomOrbit(rng *rand.Rand, kc *config.OrbitKindConfig, minRadius float64) components.Orbit {
	radius := drawRange(rng, kc.Radius)
	if radius < minRadius {
		radius = minRadius
	}

	return components.Orbit{
		Radius:            float32(radius),
		Speed:             float32(drawRange(rng, kc.Speed)),
		PhaseOffset:       rng.Float32() * 2 * math.Pi,
		BaseY:             float32(drawRange(rng, kc.BaseY)),
		VerticalAmplitude: float32(drawRange(rng, kc.VerticalAmplitude)),
		VerticalFrequency: float32(drawRange(rng, kc.VerticalFrequency)),
		SpinSpeed:         float32(drawRange(rng, kc.SpinSpeed)),
		RollAmplitude:     float32(kc.RollAmplitude),
	}
}

// drawRange samples uniformly from [r.Min, r.Max].
func drawRange(rng *rand.Rand, r config.Range) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}
