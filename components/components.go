// Package components defines ECS components for the gallery simulation.
package components

// Kind identifies the type of an orbiting body.
type Kind uint8

const (
	KindShip Kind = iota
	KindAsteroid
)

// String returns the kind name for logging.
func (k Kind) String() string {
	if k == KindShip {
		return "ship"
	}
	return "asteroid"
}

// HitPhase is the interaction state of an orbiting body.
// The only legal cycle is Active -> Destroyed -> Respawning -> Active.
type HitPhase uint8

const (
	PhaseActive HitPhase = iota
	PhaseDestroyed
	PhaseRespawning
)

// String returns the phase name for logging.
func (p HitPhase) String() string {
	switch p {
	case PhaseActive:
		return "active"
	case PhaseDestroyed:
		return "destroyed"
	default:
		return "respawning"
	}
}

// Position represents a body's world position.
type Position struct {
	X, Y, Z float32
}

// Attitude represents a body's orientation.
// Yaw follows the orbit tangent, roll is a banking oscillation,
// and spin is the body's own tumble angle.
type Attitude struct {
	Yaw  float32
	Roll float32
	Spin float32
}

// Orbit holds the fixed parameters that define a body's closed path.
// The pose is a pure function of these parameters and elapsed time,
// so there is no integrator state to drift.
type Orbit struct {
	Radius            float32 // Horizontal orbit radius, always > 0
	Speed             float32 // Angular speed in rad/s
	PhaseOffset       float32 // Initial angle along the orbit
	BaseY             float32
	VerticalAmplitude float32
	VerticalFrequency float32
	SpinSpeed         float32 // Tumble speed in rad/s
	RollAmplitude     float32
}

// Body holds a body's identity and extent.
type Body struct {
	ID     uint32
	Kind   Kind
	Radius float32 // Sphere radius used for picking and rendering
}

// Hit holds the interaction state machine for one body.
type Hit struct {
	Phase           HitPhase
	RespawnDeadline float64 // Elapsed-time deadline, valid while not Active
}

// Active reports whether the body is visible and clickable.
func (h *Hit) Active() bool {
	return h.Phase == PhaseActive
}

// Color is an RGB color used by explosion particles.
// Kept raylib-free so the simulation packages stay testable without a window.
type Color struct {
	R, G, B uint8
}
