package game

import (
	"log/slog"

	"github.com/pthm-cable/gallery/systems"
)

// Step runs a single simulation tick with the given frame delta in seconds.
// Ordering within a tick: kinematics for all Active bodies complete first,
// then respawn and click transitions, then explosion updates. A destroyed
// body's last rendered position is therefore its true kinematic position at
// the click's logical instant.
func (s *Scene) Step(delta float64) {
	dt := s.clock.Tick(delta)
	elapsed := s.clock.Elapsed()

	// 1. Kinematics
	s.updateKinematics(elapsed)

	// 2. Respawn transitions (deadline check, no timers)
	s.updateRespawns(elapsed)

	// 3. Click transitions
	events := s.applyClicks(elapsed)

	// 4. Explosion decay; completed effects are removed exactly once.
	s.updateExplosions(dt)

	// 5. New effects spawn after the decay pass so they render once at
	// full flash intensity before their first integration.
	s.spawnExplosions(events)

	s.tick++

	// Telemetry window flush
	if s.collector.ShouldFlush(elapsed) {
		ships, asteroids := s.activeCounts()
		stats := s.collector.Flush(elapsed, ships, asteroids, len(s.explosions), s.score.Score())
		if s.logStats {
			stats.LogStats()
		}
		if err := s.output.WriteTelemetry(stats); err != nil {
			slog.Error("writing telemetry", "error", err)
		}
	}
}

// updateKinematics recomputes pose for all Active bodies as a pure function
// of elapsed time. Non-Active bodies are frozen and skipped.
func (s *Scene) updateKinematics(elapsed float64) {
	query := s.filter.Query()
	for query.Next() {
		pos, att, orbit, _, hit := query.Get()
		if !hit.Active() {
			continue
		}
		*pos, *att = systems.OrbitPose(orbit, elapsed)
	}
}

// updateRespawns advances the post-destruction lifecycle for every body.
func (s *Scene) updateRespawns(elapsed float64) {
	query := s.filter.Query()
	for query.Next() {
		_, _, _, body, hit := query.Get()
		if systems.AdvanceRespawn(hit, elapsed) {
			s.collector.RecordRespawn()
			slog.Debug("body_respawned", "id", body.ID, "kind", body.Kind.String())
		}
	}
}

// applyClicks processes the queued pointer hits. Clicks on non-Active
// bodies (including a second click on a body destroyed earlier in the same
// queue) are no-ops, so the first click per body per tick is authoritative
// and exactly one DestructionEvent fires per Active -> Destroyed transition.
func (s *Scene) applyClicks(elapsed float64) []DestructionEvent {
	var events []DestructionEvent

	for _, id := range s.pendingClicks {
		entity, ok := s.entities[id]
		if !ok {
			continue
		}
		hit := s.hitMap.Get(entity)
		if !systems.TryDestroy(hit, elapsed, s.cfg.Interaction.RespawnDelay) {
			s.collector.RecordClickIgnored()
			continue
		}

		body := s.bodyMap.Get(entity)
		pos := s.posMap.Get(entity)
		events = append(events, DestructionEvent{
			EntityID: id,
			Kind:     body.Kind,
			Position: *pos,
			Elapsed:  elapsed,
		})

		s.score.OnDestruction()
		s.collector.RecordDestruction(body.Kind)
		slog.Debug("body_destroyed", "id", id, "kind", body.Kind.String(), "elapsed", elapsed)
	}

	s.pendingClicks = s.pendingClicks[:0]
	return events
}

// updateExplosions integrates all live effects and removes the ones that
// completed this tick. Removal happens exactly once per effect; a completed
// effect never receives further updates.
func (s *Scene) updateExplosions(dt float64) {
	var completed []CompletionEvent

	for id, e := range s.explosions {
		if e.Update(dt) {
			completed = append(completed, CompletionEvent{EffectID: id, Lifetime: e.Age})
		}
	}

	for _, ev := range completed {
		delete(s.explosions, ev.EffectID)
		s.collector.RecordEffectCompleted(ev.Lifetime)
	}
}

// spawnExplosions creates one effect per destruction event of this tick.
func (s *Scene) spawnExplosions(events []DestructionEvent) {
	for _, ev := range events {
		id := s.nextEffectID
		s.nextEffectID++
		s.explosions[id] = systems.NewExplosion(id, ev.Position, s.rng, s.explosionParams)
		s.collector.RecordEffectSpawned()
	}
}
