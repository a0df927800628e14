package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// mouseSensitivity converts drag pixels to camera radians.
const mouseSensitivity = 0.005

// handleInput processes keyboard and mouse input for the graphical driver.
func (s *Scene) handleInput() {
	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		s.paused = !s.paused
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && s.stepsPerUpdate > 1 {
		s.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && s.stepsPerUpdate < 10 {
		s.stepsPerUpdate++
	}

	if rl.IsKeyPressed(rl.KeyT) {
		s.gfx.tuning.Toggle()
	}

	s.applyTuning()
	s.handleCameraInput()
	s.handlePicking()
}

// applyTuning feeds the tuning panel values back into the live parameters.
func (s *Scene) applyTuning() {
	t := s.gfx.tuning
	s.cfg.Interaction.RespawnDelay = float64(t.RespawnDelay)
	s.explosionParams.OpacityDecay = t.OpacityDecay
	s.gfx.flashEnabled = t.FlashEnabled
}

// handleCameraInput processes camera orbit/zoom controls.
func (s *Scene) handleCameraInput() {
	cam := s.gfx.camera

	// Right-drag orbits the camera
	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		d := rl.GetMouseDelta()
		cam.Rotate(d.X*mouseSensitivity, -d.Y*mouseSensitivity)
	}

	// Arrow keys orbit too
	if rl.IsKeyDown(rl.KeyRight) {
		cam.Rotate(0.02, 0)
	}
	if rl.IsKeyDown(rl.KeyLeft) {
		cam.Rotate(-0.02, 0)
	}

	wheelMove := rl.GetMouseWheelMove()
	if wheelMove != 0 {
		cam.ZoomBy(1.0 - wheelMove*0.1)
	}
}

// handlePicking resolves a left click to the nearest Active body under the
// cursor and queues it for the next step. Non-Active bodies are excluded
// from the hit test entirely.
func (s *Scene) handlePicking() {
	if !rl.IsMouseButtonPressed(rl.MouseLeftButton) || s.paused {
		return
	}

	ray := rl.GetScreenToWorldRay(rl.GetMousePosition(), s.camera3D())

	bestDist := float32(math.MaxFloat32)
	var bestID uint32
	found := false

	query := s.filter.Query()
	for query.Next() {
		pos, _, _, body, hit := query.Get()
		if !hit.Active() {
			continue
		}

		center := rl.Vector3{X: pos.X, Y: pos.Y, Z: pos.Z}
		collision := rl.GetRayCollisionSphere(ray, center, body.Radius)
		if collision.Hit && collision.Distance < bestDist {
			bestDist = collision.Distance
			bestID = body.ID
			found = true
		}
	}

	if found {
		s.Click(bestID)
	}
}

// camera3D builds the raylib camera from the orbit camera state.
func (s *Scene) camera3D() rl.Camera3D {
	x, y, z := s.gfx.camera.Position()
	return rl.Camera3D{
		Position:   rl.Vector3{X: x, Y: y, Z: z},
		Target:     rl.Vector3{Y: 4},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
}
