package systems

import (
	"math"

	"github.com/pthm-cable/gallery/components"
)

// OrbitPose computes a body's position and orientation at elapsed time t.
// The pose is a pure function of t and the orbit parameters: the horizontal
// projection always lies on the circle of the orbit radius, and there is no
// accumulated state, so replays are deterministic.
func OrbitPose(o *components.Orbit, t float64) (components.Position, components.Attitude) {
	theta := t*float64(o.Speed) + float64(o.PhaseOffset)

	pos := components.Position{
		X: float32(math.Cos(theta)) * o.Radius,
		Y: o.BaseY + o.VerticalAmplitude*float32(math.Sin(theta*float64(o.VerticalFrequency))),
		Z: float32(math.Sin(theta)) * o.Radius,
	}

	att := components.Attitude{
		// Tangent-following heading: face the direction of travel.
		Yaw:  float32(-theta + math.Pi/2),
		Roll: float32(math.Sin(theta*3)) * o.RollAmplitude,
		Spin: float32(t * float64(o.SpinSpeed)),
	}

	return pos, att
}
