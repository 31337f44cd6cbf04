package components

import (
	"interaction3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIInventory lists the player's items on a translucent panel.
type UIInventory struct {
	engine.BaseComponent

	Title       string
	Items       func() []string
	RowHeight   float32
	Color       rl.Color
	BorderColor rl.Color
}

func NewUIInventory(items func() []string) *UIInventory {
	return &UIInventory{
		Title:       "Inventory",
		Items:       items,
		RowHeight:   22,
		Color:       rl.NewColor(30, 30, 40, 200),
		BorderColor: rl.NewColor(60, 60, 75, 255),
	}
}

// Draw renders nothing while the inventory is empty. The panel grows with the item count.
func (u *UIInventory) Draw(rect rl.Rectangle) {
	if u.Items == nil {
		return
	}
	names := u.Items()
	if len(names) == 0 {
		return
	}

	panel := rect
	panel.Height = u.RowHeight * float32(len(names)+1)
	rl.DrawRectangleRec(panel, u.Color)
	rl.DrawRectangleLinesEx(panel, 1, u.BorderColor)

	row := rl.Rectangle{X: rect.X + 8, Y: rect.Y, Width: rect.Width - 16, Height: u.RowHeight}
	gui.Label(row, u.Title)
	for _, name := range names {
		row.Y += u.RowHeight
		gui.Label(row, "- "+name)
	}
}
