package game

import "github.com/pthm-cable/gallery/components"

// DestructionEvent is emitted exactly once per Active -> Destroyed
// transition. The position is the body's true kinematic position at the
// click's logical instant.
type DestructionEvent struct {
	EntityID uint32
	Kind     components.Kind
	Position components.Position
	Elapsed  float64
}

// CompletionEvent is emitted exactly once when an explosion effect has
// fully decayed and may be removed.
type CompletionEvent struct {
	EffectID uint32
	Lifetime float64
}
