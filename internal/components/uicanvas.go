package components

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UICanvas is the root of the HUD. Attach it to a GameObject and add HUD
// elements as children, each with a RectTransform.
type UICanvas struct {
	engine.BaseComponent

	Crosshair      bool
	CrosshairColor rl.Color
}

func NewUICanvas() *UICanvas {
	return &UICanvas{
		Crosshair:      true,
		CrosshairColor: rl.NewColor(255, 255, 255, 180),
	}
}

// Draw renders the canvas subtree in screen space. Call after EndMode3D.
func (c *UICanvas) Draw() {
	g := c.GetGameObject()
	if g == nil {
		return
	}
	screen := rl.Rectangle{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}
	if c.Crosshair {
		cx, cy := int32(screen.Width/2), int32(screen.Height/2)
		rl.DrawLine(cx-8, cy, cx+8, cy, c.CrosshairColor)
		rl.DrawLine(cx, cy-8, cx, cy+8, c.CrosshairColor)
	}
	c.drawElement(g, screen)
}

func (c *UICanvas) drawElement(g *engine.GameObject, parent rl.Rectangle) {
	if !g.Active {
		return
	}
	rect := parent
	if rt := engine.GetComponent[*RectTransform](g); rt != nil {
		rect = rt.CalculateRect(parent)
	}

	if p := engine.GetComponent[*UIPrompt](g); p != nil {
		p.Draw(rect)
	}
	if bar := engine.GetComponent[*UIHoldProgress](g); bar != nil {
		bar.Draw(rect)
	}
	if inv := engine.GetComponent[*UIInventory](g); inv != nil {
		inv.Draw(rect)
	}

	for _, child := range g.Children {
		c.drawElement(child, rect)
	}
}
