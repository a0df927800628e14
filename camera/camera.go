// Package camera provides an orbit camera for viewing the scene.
package camera

import "math"

// Camera orbits the scene origin at a yaw/pitch/distance. The math is
// kept free of rendering types so it can be tested without a window.
type Camera struct {
	Yaw      float32 // Radians around the vertical axis
	Pitch    float32 // Radians above the horizontal plane
	Distance float32

	// Distance constraints
	MinDistance, MaxDistance float32
}

// pitchLimit keeps the camera away from the poles where the view basis
// degenerates.
const pitchLimit = 1.45

// New creates a camera at the given distance and pitch, looking at the origin.
func New(distance, minDistance, maxDistance, pitch float32) *Camera {
	c := &Camera{
		Pitch:       pitch,
		MinDistance: minDistance,
		MaxDistance: maxDistance,
	}
	c.SetDistance(distance)
	c.SetPitch(pitch)
	return c
}

// Rotate adjusts yaw and pitch by the given deltas, clamping pitch.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw += dYaw
	c.SetPitch(c.Pitch + dPitch)
}

// SetPitch sets the pitch, clamped away from the poles.
func (c *Camera) SetPitch(pitch float32) {
	c.Pitch = clamp(pitch, -pitchLimit, pitchLimit)
}

// SetDistance sets the orbit distance, clamped to min/max.
func (c *Camera) SetDistance(distance float32) {
	c.Distance = clamp(distance, c.MinDistance, c.MaxDistance)
}

// ZoomBy multiplies the current distance by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetDistance(c.Distance * factor)
}

// Position returns the camera's world position.
func (c *Camera) Position() (x, y, z float32) {
	cosP := float32(math.Cos(float64(c.Pitch)))
	x = c.Distance * cosP * float32(math.Cos(float64(c.Yaw)))
	y = c.Distance * float32(math.Sin(float64(c.Pitch)))
	z = c.Distance * cosP * float32(math.Sin(float64(c.Yaw)))
	return x, y, z
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
