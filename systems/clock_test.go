package systems

import (
	"math"
	"testing"
)

func TestClock_TickAccumulatesElapsed(t *testing.T) {
	c := NewClock(0.25)

	c.Tick(1.0 / 60.0)
	c.Tick(1.0 / 60.0)

	expected := 2.0 / 60.0
	if math.Abs(c.Elapsed()-expected) > 1e-9 {
		t.Errorf("expected elapsed %.6f, got %.6f", expected, c.Elapsed())
	}
}

func TestClock_ClampsLargeDelta(t *testing.T) {
	c := NewClock(0.25)

	got := c.Tick(3.0)

	if got != 0.25 {
		t.Errorf("expected clamped delta 0.25, got %f", got)
	}
	if c.Elapsed() != 0.25 {
		t.Errorf("expected elapsed 0.25, got %f", c.Elapsed())
	}
	if c.Delta() != 0.25 {
		t.Errorf("expected stored delta 0.25, got %f", c.Delta())
	}
}

func TestClock_NegativeDeltaTreatedAsZero(t *testing.T) {
	c := NewClock(0.25)
	c.Tick(0.1)

	got := c.Tick(-5.0)

	if got != 0 {
		t.Errorf("expected zero delta, got %f", got)
	}
	if c.Elapsed() != 0.1 {
		t.Errorf("elapsed should not go backwards, got %f", c.Elapsed())
	}
}

func TestClock_ZeroMaxDeltaDisablesClamp(t *testing.T) {
	c := NewClock(0)

	got := c.Tick(10.0)

	if got != 10.0 {
		t.Errorf("expected unclamped delta 10.0, got %f", got)
	}
}
