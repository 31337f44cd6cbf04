package components

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Anchor presets for the HUD layouts in use.
type AnchorPreset int

const (
	AnchorTopLeft AnchorPreset = iota
	AnchorTopRight
	AnchorMiddleCenter
	AnchorBottomCenter
	AnchorStretchAll
)

// RectTransform positions a HUD element relative to its parent's rectangle.
// Anchors are fractions of the parent; with both anchors on one point the
// element has a fixed SizeDelta, otherwise SizeDelta is added to the stretched span.
type RectTransform struct {
	engine.BaseComponent

	AnchorMin rl.Vector2
	AnchorMax rl.Vector2
	Pivot     rl.Vector2

	// Offset from the anchor in pixels.
	AnchoredPosition rl.Vector2
	SizeDelta        rl.Vector2

	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	return &RectTransform{
		AnchorMin: rl.Vector2{X: 0.5, Y: 0.5},
		AnchorMax: rl.Vector2{X: 0.5, Y: 0.5},
		Pivot:     rl.Vector2{X: 0.5, Y: 0.5},
		SizeDelta: rl.Vector2{X: 100, Y: 30},
	}
}

// Anchored is a shorthand for NewRectTransform with a preset, offset and size.
func Anchored(preset AnchorPreset, offset, size rl.Vector2) *RectTransform {
	rt := NewRectTransform()
	rt.SetAnchorPreset(preset)
	rt.AnchoredPosition = offset
	rt.SizeDelta = size
	return rt
}

func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	var a, pivot rl.Vector2
	switch preset {
	case AnchorTopLeft:
		a, pivot = rl.Vector2{}, rl.Vector2{}
	case AnchorTopRight:
		a, pivot = rl.Vector2{X: 1}, rl.Vector2{X: 1}
	case AnchorMiddleCenter:
		a = rl.Vector2{X: 0.5, Y: 0.5}
		pivot = a
	case AnchorBottomCenter:
		a, pivot = rl.Vector2{X: 0.5, Y: 1}, rl.Vector2{X: 0.5, Y: 1}
	case AnchorStretchAll:
		rt.AnchorMin = rl.Vector2{}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
		return
	}
	rt.AnchorMin, rt.AnchorMax, rt.Pivot = a, a, pivot
}

func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// CalculateRect computes the screen rectangle inside parentRect.
func (rt *RectTransform) CalculateRect(parentRect rl.Rectangle) rl.Rectangle {
	minX := parentRect.X + parentRect.Width*rt.AnchorMin.X
	minY := parentRect.Y + parentRect.Height*rt.AnchorMin.Y
	maxX := parentRect.X + parentRect.Width*rt.AnchorMax.X
	maxY := parentRect.Y + parentRect.Height*rt.AnchorMax.Y

	var r rl.Rectangle
	if rt.AnchorMin == rt.AnchorMax {
		r.Width = rt.SizeDelta.X
		r.Height = rt.SizeDelta.Y
		r.X = minX + rt.AnchoredPosition.X - r.Width*rt.Pivot.X
		r.Y = minY + rt.AnchoredPosition.Y - r.Height*rt.Pivot.Y
	} else {
		r.X = minX + rt.AnchoredPosition.X
		r.Y = minY + rt.AnchoredPosition.Y
		r.Width = (maxX - minX) + rt.SizeDelta.X
		r.Height = (maxY - minY) + rt.SizeDelta.Y
	}
	rt.screenRect = r
	return r
}
