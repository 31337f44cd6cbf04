package game

import (
	"interaction3d/internal/components"
	"interaction3d/internal/engine"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUD palette.
var (
	colorBgDark    = rl.NewColor(10, 10, 15, 220)
	colorBgElement = rl.NewColor(28, 28, 38, 230)
	colorAccent    = rl.NewColor(108, 99, 255, 255)
	colorText      = rl.NewColor(230, 230, 238, 255)
	colorBorder    = rl.NewColor(50, 50, 65, 255)
)

// HUD is the screen-space overlay: prompt, hold progress and inventory.
type HUD struct {
	Root      *engine.GameObject
	Canvas    *components.UICanvas
	Prompt    *components.UIPrompt
	Progress  *components.UIHoldProgress
	Inventory *components.UIInventory
}

// NewHUD builds the canvas tree. Nothing here touches the window, so it can be
// built before InitWindow.
func NewHUD(items func() []string) *HUD {
	h := &HUD{
		Root:      engine.NewGameObject("HUD"),
		Canvas:    components.NewUICanvas(),
		Prompt:    components.NewUIPrompt(),
		Progress:  components.NewUIHoldProgress(),
		Inventory: components.NewUIInventory(items),
	}
	h.Root.AddComponent(h.Canvas)

	prompt := engine.NewGameObject("Prompt")
	prompt.AddComponent(components.Anchored(components.AnchorMiddleCenter,
		rl.Vector2{Y: 60}, rl.Vector2{X: 480, Y: 32}))
	prompt.AddComponent(h.Prompt)
	h.Root.AddChild(prompt)

	bar := engine.NewGameObject("HoldProgress")
	bar.AddComponent(components.Anchored(components.AnchorMiddleCenter,
		rl.Vector2{Y: 96}, rl.Vector2{X: 240, Y: 14}))
	bar.AddComponent(h.Progress)
	h.Root.AddChild(bar)

	inv := engine.NewGameObject("Inventory")
	inv.AddComponent(components.Anchored(components.AnchorTopRight,
		rl.Vector2{X: -12, Y: 12}, rl.Vector2{X: 200, Y: 0}))
	inv.AddComponent(h.Inventory)
	h.Root.AddChild(inv)

	return h
}

// Update advances HUD animations. The HUD is not part of the scene.
func (h *HUD) Update(deltaTime float32) {
	updateTree(h.Root, deltaTime)
}

func updateTree(g *engine.GameObject, deltaTime float32) {
	g.Update(deltaTime)
	for _, c := range g.Children {
		updateTree(c, deltaTime)
	}
}

func (h *HUD) Draw() {
	h.Canvas.Draw()
}

// applyHUDStyle sets the raygui theme. Requires a window.
func applyHUDStyle() {
	gui.SetStyle(gui.DEFAULT, gui.BACKGROUND_COLOR, gui.NewColorPropertyValue(colorBgDark))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_NORMAL, gui.NewColorPropertyValue(colorBgElement))
	gui.SetStyle(gui.DEFAULT, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_COLOR_NORMAL, gui.NewColorPropertyValue(colorText))
	gui.SetStyle(gui.DEFAULT, gui.BORDER_COLOR_NORMAL, gui.NewColorPropertyValue(colorBorder))
	gui.SetStyle(gui.DEFAULT, gui.TEXT_SIZE, 16)
	// The progress fill uses the pressed base color.
	gui.SetStyle(gui.PROGRESSBAR, gui.BASE_COLOR_PRESSED, gui.NewColorPropertyValue(colorAccent))
}
