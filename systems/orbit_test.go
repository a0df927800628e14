package systems

import (
	"math"
	"testing"

	"github.com/pthm-cable/gallery/components"
)

func testOrbit() *components.Orbit {
	return &components.Orbit{
		Radius:            15,
		Speed:             0.4,
		PhaseOffset:       1.2,
		BaseY:             5,
		VerticalAmplitude: 1.5,
		VerticalFrequency: 2,
		SpinSpeed:         0.7,
		RollAmplitude:     0.25,
	}
}

func TestOrbitPose_MatchesClosedForm(t *testing.T) {
	o := testOrbit()
	tt := 5.0

	pos, att := OrbitPose(o, tt)

	theta := tt*float64(o.Speed) + float64(o.PhaseOffset)
	wantX := float32(math.Cos(theta)) * o.Radius
	wantZ := float32(math.Sin(theta)) * o.Radius
	wantY := o.BaseY + o.VerticalAmplitude*float32(math.Sin(theta*float64(o.VerticalFrequency)))

	if math.Abs(float64(pos.X-wantX)) > 1e-5 {
		t.Errorf("expected x %.6f, got %.6f", wantX, pos.X)
	}
	if math.Abs(float64(pos.Z-wantZ)) > 1e-5 {
		t.Errorf("expected z %.6f, got %.6f", wantZ, pos.Z)
	}
	if math.Abs(float64(pos.Y-wantY)) > 1e-5 {
		t.Errorf("expected y %.6f, got %.6f", wantY, pos.Y)
	}

	wantYaw := float32(-theta + math.Pi/2)
	if math.Abs(float64(att.Yaw-wantYaw)) > 1e-5 {
		t.Errorf("expected yaw %.6f, got %.6f", wantYaw, att.Yaw)
	}
	wantRoll := float32(math.Sin(theta*3)) * o.RollAmplitude
	if math.Abs(float64(att.Roll-wantRoll)) > 1e-5 {
		t.Errorf("expected roll %.6f, got %.6f", wantRoll, att.Roll)
	}
}

func TestOrbitPose_HorizontalProjectionStaysOnCircle(t *testing.T) {
	o := testOrbit()

	for i := 0; i < 500; i++ {
		tt := float64(i) * 0.137
		pos, _ := OrbitPose(o, tt)

		dist := math.Hypot(float64(pos.X), float64(pos.Z))
		if math.Abs(dist-float64(o.Radius)) > 1e-3 {
			t.Fatalf("at t=%.3f horizontal distance %.6f deviates from radius %.1f", tt, dist, o.Radius)
		}
	}
}

func TestOrbitPose_PureFunctionOfTime(t *testing.T) {
	o := testOrbit()

	pos1, att1 := OrbitPose(o, 42.0)
	// Calls at other times must not affect a later recomputation
	OrbitPose(o, 1.0)
	OrbitPose(o, 99.0)
	pos2, att2 := OrbitPose(o, 42.0)

	if pos1 != pos2 {
		t.Errorf("position not deterministic: %+v vs %+v", pos1, pos2)
	}
	if att1 != att2 {
		t.Errorf("attitude not deterministic: %+v vs %+v", att1, att2)
	}
}

func TestOrbitPose_ZeroVerticalAmplitudeKeepsBaseY(t *testing.T) {
	o := testOrbit()
	o.VerticalAmplitude = 0

	for i := 0; i < 50; i++ {
		pos, _ := OrbitPose(o, float64(i)*0.5)
		if pos.Y != o.BaseY {
			t.Fatalf("expected y pinned at %.1f, got %.6f", o.BaseY, pos.Y)
		}
	}
}
