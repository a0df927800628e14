// Package ui renders the HUD and the tuning panel.
package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Score           int
	Tick            int64
	FPS             int32
	ShipsActive     int
	AsteroidsActive int
	ActiveEffects   int
	Paused          bool
}

// HUD renders the main heads-up display.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD. Must be called outside 3D mode.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(fmt.Sprintf("Score: %d", data.Score), 10, 10, 28, rl.White)
	rl.DrawText(fmt.Sprintf("Ships: %d  Asteroids: %d  Effects: %d",
		data.ShipsActive, data.AsteroidsActive, data.ActiveEffects), 10, 44, 18, rl.LightGray)
	rl.DrawText(fmt.Sprintf("Tick: %d  FPS: %d", data.Tick, data.FPS), 10, 66, 18, rl.LightGray)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 92, 22, rl.Yellow)
	}
}
