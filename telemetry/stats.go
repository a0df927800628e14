package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated gameplay statistics for one time window.
type WindowStats struct {
	WindowStart float64 `csv:"-"`
	WindowEnd   float64 `csv:"window_end"`

	// Gauges sampled at window end
	ShipsActive     int `csv:"ships_active"`
	AsteroidsActive int `csv:"asteroids_active"`
	ActiveEffects   int `csv:"active_effects"`
	Score           int `csv:"score"`

	// Events during the window
	ShipKills        int `csv:"ship_kills"`
	AsteroidKills    int `csv:"asteroid_kills"`
	ClicksIgnored    int `csv:"clicks_ignored"`
	Respawns         int `csv:"respawns"`
	EffectsSpawned   int `csv:"effects_spawned"`
	EffectsCompleted int `csv:"effects_completed"`

	// Explosion decay durations (seconds)
	EffectLifetimeMean float64 `csv:"effect_lifetime_mean"`
	EffectLifetimeP50  float64 `csv:"effect_lifetime_p50"`
	EffectLifetimeP90  float64 `csv:"effect_lifetime_p90"`
}

// Kills returns total destructions in the window.
func (s *WindowStats) Kills() int {
	return s.ShipKills + s.AsteroidKills
}

// LogStats writes the window to slog as a structured record.
func (s *WindowStats) LogStats() {
	slog.Info("window_stats",
		"window_end", s.WindowEnd,
		"ships_active", s.ShipsActive,
		"asteroids_active", s.AsteroidsActive,
		"active_effects", s.ActiveEffects,
		"score", s.Score,
		"ship_kills", s.ShipKills,
		"asteroid_kills", s.AsteroidKills,
		"clicks_ignored", s.ClicksIgnored,
		"respawns", s.Respawns,
		"effects_spawned", s.EffectsSpawned,
		"effects_completed", s.EffectsCompleted,
		"effect_lifetime_mean", s.EffectLifetimeMean,
		"effect_lifetime_p50", s.EffectLifetimeP50,
		"effect_lifetime_p90", s.EffectLifetimeP90,
	)
}

// lifetimeStats computes mean and percentiles of effect lifetimes.
// Returns zeros for an empty window.
func lifetimeStats(lifetimes []float64) (mean, p50, p90 float64) {
	if len(lifetimes) == 0 {
		return 0, 0, 0
	}
	sorted := make([]float64, len(lifetimes))
	copy(sorted, lifetimes)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	return mean, p50, p90
}
