package systems

import "github.com/pthm-cable/gallery/components"

// TryDestroy transitions an Active body to Destroyed and arms its respawn
// deadline. Returns true if the transition happened; a click on a body in
// any other phase is a no-op, which makes repeated clicks idempotent.
func TryDestroy(h *components.Hit, elapsed, respawnDelay float64) bool {
	if h.Phase != components.PhaseActive {
		return false
	}
	h.Phase = components.PhaseDestroyed
	h.RespawnDeadline = elapsed + respawnDelay
	return true
}

// AdvanceRespawn steps the post-destruction lifecycle one tick.
// Destroyed bodies move to Respawning (the two phases are externally
// identical; the distinction marks that the destruction has been handled),
// and Respawning bodies return to Active once their deadline has elapsed.
// Returns true on the tick the body becomes Active again.
//
// The deadline is checked against the clock each tick rather than armed on
// a timer, so tearing a scene down before the deadline needs no cancellation.
func AdvanceRespawn(h *components.Hit, elapsed float64) bool {
	switch h.Phase {
	case components.PhaseDestroyed:
		h.Phase = components.PhaseRespawning
	case components.PhaseRespawning:
		if elapsed >= h.RespawnDeadline {
			h.Phase = components.PhaseActive
			h.RespawnDeadline = 0
			return true
		}
	}
	return false
}
