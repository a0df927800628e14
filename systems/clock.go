// Package systems implements the gallery's simulation systems:
// the clock, orbit kinematics, the hit state machine, and explosions.
package systems

// Clock supplies monotonically increasing elapsed time and the per-tick
// delta to the rest of the simulation. Deltas are clamped to a maximum so
// a stalled or backgrounded host cannot produce unbounded position jumps.
type Clock struct {
	elapsed  float64
	delta    float64
	maxDelta float64
}

// NewClock creates a clock with the given delta clamp.
// A non-positive maxDelta disables clamping.
func NewClock(maxDelta float64) *Clock {
	return &Clock{maxDelta: maxDelta}
}

// Tick advances the clock by delta seconds and returns the clamped delta.
// Negative deltas are treated as zero so elapsed time never goes backwards.
func (c *Clock) Tick(delta float64) float64 {
	if delta < 0 {
		delta = 0
	}
	if c.maxDelta > 0 && delta > c.maxDelta {
		delta = c.maxDelta
	}
	c.elapsed += delta
	c.delta = delta
	return delta
}

// Elapsed returns seconds since scene start.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Delta returns the clamped delta of the most recent tick.
func (c *Clock) Delta() float64 {
	return c.delta
}
