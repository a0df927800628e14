package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/gallery/components"
)

func TestCollector_ShouldFlushAfterWindow(t *testing.T) {
	c := NewCollector(5.0)

	if c.ShouldFlush(4.99) {
		t.Error("flushed before window elapsed")
	}
	if !c.ShouldFlush(5.0) {
		t.Error("did not flush at window boundary")
	}
}

func TestCollector_FlushAggregatesAndResets(t *testing.T) {
	c := NewCollector(5.0)

	c.RecordDestruction(components.KindShip)
	c.RecordDestruction(components.KindShip)
	c.RecordDestruction(components.KindAsteroid)
	c.RecordClickIgnored()
	c.RecordRespawn()
	c.RecordEffectSpawned()
	c.RecordEffectCompleted(1.2)
	c.RecordEffectCompleted(1.3)

	stats := c.Flush(5.1, 10, 24, 1, 300)

	if stats.ShipKills != 2 || stats.AsteroidKills != 1 {
		t.Errorf("expected 2 ship and 1 asteroid kills, got %d and %d", stats.ShipKills, stats.AsteroidKills)
	}
	if stats.Kills() != 3 {
		t.Errorf("expected 3 total kills, got %d", stats.Kills())
	}
	if stats.ClicksIgnored != 1 || stats.Respawns != 1 {
		t.Errorf("unexpected event counts: %+v", stats)
	}
	if stats.EffectsSpawned != 1 || stats.EffectsCompleted != 2 {
		t.Errorf("unexpected effect counts: %+v", stats)
	}
	if stats.ShipsActive != 10 || stats.AsteroidsActive != 24 || stats.ActiveEffects != 1 || stats.Score != 300 {
		t.Errorf("gauges not carried through: %+v", stats)
	}
	if math.Abs(stats.EffectLifetimeMean-1.25) > 1e-9 {
		t.Errorf("expected lifetime mean 1.25, got %f", stats.EffectLifetimeMean)
	}
	if stats.WindowEnd != 5.1 {
		t.Errorf("expected window end 5.1, got %f", stats.WindowEnd)
	}

	// Counters reset, window start moves forward
	if c.ShouldFlush(5.2) {
		t.Error("window did not reset after flush")
	}
	next := c.Flush(10.2, 12, 25, 0, 300)
	if next.Kills() != 0 || next.EffectsCompleted != 0 {
		t.Errorf("counters leaked into next window: %+v", next)
	}
	if next.WindowStart != 5.1 {
		t.Errorf("expected next window start 5.1, got %f", next.WindowStart)
	}
}

func TestLifetimeStats_EmptyWindow(t *testing.T) {
	mean, p50, p90 := lifetimeStats(nil)
	if mean != 0 || p50 != 0 || p90 != 0 {
		t.Errorf("expected zeros for empty window, got %f %f %f", mean, p50, p90)
	}
}

func TestLifetimeStats_Percentiles(t *testing.T) {
	lifetimes := []float64{1.0, 1.1, 1.2, 1.3, 1.4, 1.5, 1.6, 1.7, 1.8, 1.9}

	mean, p50, p90 := lifetimeStats(lifetimes)

	if math.Abs(mean-1.45) > 1e-9 {
		t.Errorf("expected mean 1.45, got %f", mean)
	}
	if p50 < 1.4 || p50 > 1.5 {
		t.Errorf("p50 out of range: %f", p50)
	}
	if p90 < 1.8 || p90 > 1.9 {
		t.Errorf("p90 out of range: %f", p90)
	}
}
