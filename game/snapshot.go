package game

import "github.com/pthm-cable/gallery/components"

// BodyState is the per-entity render state exposed to collaborators
// each tick.
type BodyState struct {
	ID       uint32
	Kind     components.Kind
	Position components.Position
	Yaw      float32
	Roll     float32
	Spin     float32
	Radius   float32
	Visible  bool
}

// ParticleState is the render state of one explosion particle.
type ParticleState struct {
	Position components.Position
	Size     float32
	Color    components.Color
	Opacity  float32
}

// ExplosionState is the per-effect render state exposed each tick.
type ExplosionState struct {
	ID             uint32
	Origin         components.Position
	Particles      []ParticleState
	Opacity        float32
	FlashIntensity float32
}

// BodyStates returns a snapshot of all bodies' render state.
func (s *Scene) BodyStates() []BodyState {
	states := make([]BodyState, 0, len(s.entities))

	query := s.filter.Query()
	for query.Next() {
		pos, att, _, body, hit := query.Get()
		states = append(states, BodyState{
			ID:       body.ID,
			Kind:     body.Kind,
			Position: *pos,
			Yaw:      att.Yaw,
			Roll:     att.Roll,
			Spin:     att.Spin,
			Radius:   body.Radius,
			Visible:  hit.Active(),
		})
	}
	return states
}

// BodyState returns the render state of one body by id.
func (s *Scene) BodyState(id uint32) (BodyState, bool) {
	entity, ok := s.entities[id]
	if !ok {
		return BodyState{}, false
	}
	pos := s.posMap.Get(entity)
	body := s.bodyMap.Get(entity)
	hit := s.hitMap.Get(entity)

	return BodyState{
		ID:       body.ID,
		Kind:     body.Kind,
		Position: *pos,
		Radius:   body.Radius,
		Visible:  hit.Active(),
	}, true
}

// ExplosionStates returns a snapshot of all live effects' render state.
func (s *Scene) ExplosionStates() []ExplosionState {
	states := make([]ExplosionState, 0, len(s.explosions))

	for _, e := range s.explosions {
		particles := make([]ParticleState, len(e.Particles))
		for i, p := range e.Particles {
			particles[i] = ParticleState{
				Position: components.Position{X: p.X, Y: p.Y, Z: p.Z},
				Size:     p.Size,
				Color:    p.Color,
				Opacity:  e.Opacity,
			}
		}
		states = append(states, ExplosionState{
			ID:             e.ID,
			Origin:         e.Origin,
			Particles:      particles,
			Opacity:        e.Opacity,
			FlashIntensity: e.FlashIntensity(),
		})
	}
	return states
}
