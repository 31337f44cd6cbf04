package components

import (
	"fmt"

	"interaction3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIHoldProgress is the fill bar shown while a hold interaction charges.
type UIHoldProgress struct {
	engine.BaseComponent

	ShowPercent bool

	value   float32
	visible bool
}

func NewUIHoldProgress() *UIHoldProgress {
	return &UIHoldProgress{ShowPercent: true}
}

// SetProgress shows the bar at value, clamped to [0, 1].
func (b *UIHoldProgress) SetProgress(value float32) {
	b.value = min(max(value, 0), 1)
	b.visible = true
}

// Hide empties and hides the bar.
func (b *UIHoldProgress) Hide() {
	b.value = 0
	b.visible = false
}

func (b *UIHoldProgress) Value() float32 { return b.value }
func (b *UIHoldProgress) Visible() bool  { return b.visible }

func (b *UIHoldProgress) Draw(rect rl.Rectangle) {
	if !b.visible {
		return
	}
	right := ""
	if b.ShowPercent {
		right = fmt.Sprintf("%d%%", int(b.value*100))
	}
	gui.ProgressBar(rect, "", right, b.value, 0, 1)
}
