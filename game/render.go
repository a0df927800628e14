package game

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/gallery/components"
	"github.com/pthm-cable/gallery/ui"
)

const rad2deg = 180 / math.Pi

// Draw renders the scene.
func (s *Scene) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 6, G: 8, B: 16, A: 255})

	cam := s.camera3D()
	rl.BeginMode3D(cam)

	s.gfx.starfield.Draw()
	s.drawOrbitRings()
	s.drawBodies()
	s.drawExplosions()

	rl.EndMode3D()

	ships, asteroids := s.activeCounts()
	s.gfx.hud.Draw(ui.HUDData{
		Score:           s.score.Score(),
		Tick:            s.tick,
		FPS:             rl.GetFPS(),
		ShipsActive:     ships,
		AsteroidsActive: asteroids,
		ActiveEffects:   len(s.explosions),
		Paused:          s.paused,
	})
	s.gfx.tuning.Draw(s.cfg.Derived.ScreenW32)

	rl.EndDrawing()
}

// drawOrbitRings draws a faint circle per body at its orbit radius and
// base height.
func (s *Scene) drawOrbitRings() {
	ringColor := rl.Color{R: 80, G: 90, B: 120, A: 40}

	query := s.filter.Query()
	for query.Next() {
		_, _, orbit, _, _ := query.Get()
		center := rl.Vector3{Y: orbit.BaseY}
		rl.DrawCircle3D(center, orbit.Radius, rl.Vector3{X: 1}, 90, ringColor)
	}
}

// drawBodies draws all visible bodies. Destroyed and respawning bodies
// are skipped entirely.
func (s *Scene) drawBodies() {
	query := s.filter.Query()
	for query.Next() {
		pos, att, _, body, hit := query.Get()
		if !hit.Active() {
			continue
		}

		switch body.Kind {
		case components.KindShip:
			drawShip(pos, att, body.Radius)
		default:
			drawAsteroid(pos, att, body.Radius)
		}
	}
}

// drawShip draws an oriented hull with a nose marker so the facing along
// the orbit tangent reads clearly.
func drawShip(pos *components.Position, att *components.Attitude, radius float32) {
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(att.Yaw*rad2deg, 0, 1, 0)
	rl.Rotatef(att.Roll*rad2deg, 0, 0, 1)

	hull := rl.Vector3{X: radius * 2, Y: radius * 0.5, Z: radius * 0.8}
	rl.DrawCubeV(rl.Vector3{}, hull, rl.Color{R: 140, G: 180, B: 255, A: 255})
	rl.DrawCubeWiresV(rl.Vector3{}, hull, rl.Color{R: 210, G: 230, B: 255, A: 255})

	// Nose marker on the +X axis, the forward direction after yaw
	rl.DrawCubeV(
		rl.Vector3{X: radius * 1.1},
		rl.Vector3{X: radius * 0.4, Y: radius * 0.3, Z: radius * 0.3},
		rl.Color{R: 255, G: 120, B: 80, A: 255},
	)

	rl.PopMatrix()
}

// drawAsteroid draws a tumbling rock as a sphere with a spinning wire
// overlay.
func drawAsteroid(pos *components.Position, att *components.Attitude, radius float32) {
	rl.PushMatrix()
	rl.Translatef(pos.X, pos.Y, pos.Z)
	rl.Rotatef(att.Spin*rad2deg, 0.4, 1, 0.2)

	rl.DrawSphere(rl.Vector3{}, radius, rl.Color{R: 120, G: 110, B: 100, A: 255})
	rl.DrawSphereWires(rl.Vector3{}, radius*1.02, 6, 8, rl.Color{R: 70, G: 64, B: 58, A: 255})

	rl.PopMatrix()
}

// drawExplosions draws particle bursts with additive blending plus a
// central flash sphere that fades with the effect.
func (s *Scene) drawExplosions() {
	rl.BeginBlendMode(rl.BlendAdditive)

	for _, e := range s.explosions {
		for i := range e.Particles {
			p := &e.Particles[i]
			tint := rl.Fade(rl.Color{R: p.Color.R, G: p.Color.G, B: p.Color.B, A: 255}, e.Opacity)
			rl.DrawCubeV(
				rl.Vector3{X: p.X, Y: p.Y, Z: p.Z},
				rl.Vector3{X: p.Size, Y: p.Size, Z: p.Size},
				tint,
			)
		}

		if s.gfx.flashEnabled && e.Opacity > 0 {
			origin := rl.Vector3{X: e.Origin.X, Y: e.Origin.Y, Z: e.Origin.Z}
			flashRadius := 0.04 * e.FlashIntensity()
			rl.DrawSphere(origin, flashRadius, rl.Fade(rl.White, e.Opacity*0.35))
		}
	}

	rl.EndBlendMode()
}
