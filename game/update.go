package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gallery/camera"
	"github.com/pthm-cable/gallery/renderer"
	"github.com/pthm-cable/gallery/ui"
)

// graphics holds the rendering collaborators, created only in windowed mode.
type graphics struct {
	camera    *camera.Camera
	starfield *renderer.Starfield
	hud       *ui.HUD
	tuning    *ui.TuningPanel

	flashEnabled bool
}

// InitGraphics creates the rendering collaborators. Must be called after
// the raylib window exists and before Update/Draw.
func (s *Scene) InitGraphics() {
	camCfg := s.cfg.Camera
	s.gfx = &graphics{
		camera: camera.New(
			float32(camCfg.Distance),
			float32(camCfg.MinDistance),
			float32(camCfg.MaxDistance),
			float32(camCfg.Pitch),
		),
		starfield: renderer.NewStarfield(
			s.cfg.Starfield.Count,
			float32(s.cfg.Starfield.Radius),
			s.rng,
		),
		hud: ui.NewHUD(),
		tuning: ui.NewTuningPanel(
			float32(s.cfg.Interaction.RespawnDelay),
			float32(s.cfg.Explosion.OpacityDecay),
		),
		flashEnabled: true,
	}
}

// Update runs input handling and one or more simulation steps using the
// real frame delta. Graphical driver only.
func (s *Scene) Update() {
	s.handleInput()

	if s.paused {
		return
	}

	dt := float64(rl.GetFrameTime())
	for i := 0; i < s.stepsPerUpdate; i++ {
		s.Step(dt)
	}
}

// UpdateHeadless runs one fixed-delta simulation step without raylib.
func (s *Scene) UpdateHeadless() {
	s.Step(s.cfg.Derived.FixedDT)
}
