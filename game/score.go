package game

// ScoreTracker accumulates score on destruction events.
// Purely additive; there is no decrement path.
type ScoreTracker struct {
	score   int
	perKill int
}

// NewScoreTracker creates a tracker awarding perKill points per destruction.
func NewScoreTracker(perKill int) *ScoreTracker {
	return &ScoreTracker{perKill: perKill}
}

// OnDestruction adds the fixed per-kill amount.
func (s *ScoreTracker) OnDestruction() {
	s.score += s.perKill
}

// Score returns the current score.
func (s *ScoreTracker) Score() int {
	return s.score
}
