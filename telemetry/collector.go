// Package telemetry provides windowed gameplay statistics and CSV output.
package telemetry

import "github.com/pthm-cable/gallery/components"

// Collector accumulates gameplay events within time windows and produces
// WindowStats. Windows are measured in simulation seconds so they stay
// meaningful at any frame rate.
type Collector struct {
	windowSec   float64
	windowStart float64

	// Event counters for the current window
	shipKills        int
	asteroidKills    int
	clicksIgnored    int
	respawns         int
	effectsSpawned   int
	effectsCompleted int

	// Lifetimes of effects completed during the window
	effectLifetimes []float64
}

// NewCollector creates a collector with the given window length in
// simulation seconds.
func NewCollector(windowSec float64) *Collector {
	if windowSec <= 0 {
		windowSec = 5.0
	}
	return &Collector{windowSec: windowSec}
}

// RecordDestruction records a body destruction.
func (c *Collector) RecordDestruction(kind components.Kind) {
	if kind == components.KindShip {
		c.shipKills++
	} else {
		c.asteroidKills++
	}
}

// RecordClickIgnored records a click resolved to a non-Active body.
func (c *Collector) RecordClickIgnored() {
	c.clicksIgnored++
}

// RecordRespawn records a body returning to Active.
func (c *Collector) RecordRespawn() {
	c.respawns++
}

// RecordEffectSpawned records a new explosion effect.
func (c *Collector) RecordEffectSpawned() {
	c.effectsSpawned++
}

// RecordEffectCompleted records a fully decayed effect and its lifetime.
func (c *Collector) RecordEffectCompleted(lifetime float64) {
	c.effectsCompleted++
	c.effectLifetimes = append(c.effectLifetimes, lifetime)
}

// ShouldFlush returns true once the current window has elapsed.
func (c *Collector) ShouldFlush(elapsed float64) bool {
	return elapsed-c.windowStart >= c.windowSec
}

// Flush produces a WindowStats for the closing window and resets counters.
// The caller supplies current scene-level gauges.
func (c *Collector) Flush(elapsed float64, shipsActive, asteroidsActive, activeEffects, score int) WindowStats {
	mean, p50, p90 := lifetimeStats(c.effectLifetimes)

	stats := WindowStats{
		WindowStart: c.windowStart,
		WindowEnd:   elapsed,

		ShipsActive:     shipsActive,
		AsteroidsActive: asteroidsActive,
		ActiveEffects:   activeEffects,
		Score:           score,

		ShipKills:        c.shipKills,
		AsteroidKills:    c.asteroidKills,
		ClicksIgnored:    c.clicksIgnored,
		Respawns:         c.respawns,
		EffectsSpawned:   c.effectsSpawned,
		EffectsCompleted: c.effectsCompleted,

		EffectLifetimeMean: mean,
		EffectLifetimeP50:  p50,
		EffectLifetimeP90:  p90,
	}

	// Reset for next window
	c.windowStart = elapsed
	c.shipKills = 0
	c.asteroidKills = 0
	c.clicksIgnored = 0
	c.respawns = 0
	c.effectsSpawned = 0
	c.effectsCompleted = 0
	c.effectLifetimes = c.effectLifetimes[:0]

	return stats
}
