package camera

import (
	"math"
	"testing"
)

func TestNew_ClampsDistance(t *testing.T) {
	c := New(500, 15, 140, 0.5)
	if c.Distance != 140 {
		t.Errorf("expected distance clamped to 140, got %f", c.Distance)
	}

	c = New(1, 15, 140, 0.5)
	if c.Distance != 15 {
		t.Errorf("expected distance clamped to 15, got %f", c.Distance)
	}
}

func TestSetPitch_ClampedAwayFromPoles(t *testing.T) {
	c := New(50, 15, 140, 0)
	c.SetPitch(3.0)
	if c.Pitch > pitchLimit {
		t.Errorf("pitch %f exceeds limit %f", c.Pitch, pitchLimit)
	}
	c.SetPitch(-3.0)
	if c.Pitch < -pitchLimit {
		t.Errorf("pitch %f below limit %f", c.Pitch, -pitchLimit)
	}
}

func TestZoomBy_RespectsBounds(t *testing.T) {
	c := New(50, 15, 140, 0.5)
	for i := 0; i < 20; i++ {
		c.ZoomBy(0.5)
	}
	if c.Distance != c.MinDistance {
		t.Errorf("expected distance at min after zooming in, got %f", c.Distance)
	}
	for i := 0; i < 20; i++ {
		c.ZoomBy(2.0)
	}
	if c.Distance != c.MaxDistance {
		t.Errorf("expected distance at max after zooming out, got %f", c.Distance)
	}
}

func TestPosition_OnSphereOfDistance(t *testing.T) {
	c := New(55, 15, 140, 0.55)

	for _, yaw := range []float32{0, 0.7, 1.9, 3.5, 5.8} {
		c.Yaw = yaw
		x, y, z := c.Position()
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(r-float64(c.Distance)) > 1e-4 {
			t.Errorf("yaw %f: camera at radius %f, want %f", yaw, r, c.Distance)
		}
	}
}

func TestPosition_PitchZeroStaysInPlane(t *testing.T) {
	c := New(55, 15, 140, 0)
	c.Yaw = 1.2
	_, y, _ := c.Position()
	if math.Abs(float64(y)) > 1e-5 {
		t.Errorf("expected y=0 at zero pitch, got %f", y)
	}
}
