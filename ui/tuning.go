package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// TuningPanel is a toggleable side panel with live gameplay tuning controls.
// The driver reads the public fields back each frame and applies them.
type TuningPanel struct {
	visible bool

	RespawnDelay float32 // Seconds from destruction to respawn
	OpacityDecay float32 // Explosion opacity loss per second
	FlashEnabled bool
}

// NewTuningPanel creates a panel seeded with the current config values.
func NewTuningPanel(respawnDelay, opacityDecay float32) *TuningPanel {
	return &TuningPanel{
		RespawnDelay: respawnDelay,
		OpacityDecay: opacityDecay,
		FlashEnabled: true,
	}
}

// Toggle switches panel visibility.
func (t *TuningPanel) Toggle() {
	t.visible = !t.visible
}

// Visible returns whether the panel is shown.
func (t *TuningPanel) Visible() bool {
	return t.visible
}

// Draw renders the panel on the right edge of the screen.
func (t *TuningPanel) Draw(screenW float32) {
	if !t.visible {
		return
	}

	x := screenW - 250
	y := float32(10)

	rl.DrawRectangle(int32(x-10), 0, 260, 170, rl.Fade(rl.Black, 0.6))
	rl.DrawText("Tuning [T]", int32(x), int32(y), 18, rl.White)
	y += 30

	rl.DrawText("Respawn delay (s)", int32(x), int32(y), 14, rl.Gray)
	y += 18
	t.RespawnDelay = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: 180, Height: 18},
		"0.5", "5.0",
		t.RespawnDelay, 0.5, 5.0,
	)
	rl.DrawText(fmt.Sprintf("%.1f", t.RespawnDelay), int32(x+190), int32(y), 16, rl.LightGray)
	y += 30

	rl.DrawText("Explosion decay (1/s)", int32(x), int32(y), 14, rl.Gray)
	y += 18
	t.OpacityDecay = gui.SliderBar(
		rl.Rectangle{X: x, Y: y, Width: 180, Height: 18},
		"0.2", "3.0",
		t.OpacityDecay, 0.2, 3.0,
	)
	rl.DrawText(fmt.Sprintf("%.2f", t.OpacityDecay), int32(x+190), int32(y), 16, rl.LightGray)
	y += 30

	t.FlashEnabled = gui.CheckBox(
		rl.Rectangle{X: x, Y: y, Width: 18, Height: 18},
		"Explosion flash", t.FlashEnabled,
	)
}
