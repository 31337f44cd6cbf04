// Package interactables provides the stock interactable objects: pickups,
// buttons, toggles, switches, doors, hold actions and chests. Each is an engine
// component built from small parts (Base, ToggleState, Lock, hooks) rather than
// a type hierarchy.
package interactables

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Base carries what every interactable shares: its owner, an optional
// interaction point, the prompt label and focus events.
type Base struct {
	engine.BaseComponent

	// Label is the prompt shown while focused.
	Label string
	// Point overrides the owner's position for distance ranking.
	Point *engine.GameObject
	// PointName is resolved into Point on Start when Point is unset.
	PointName string

	Log *zap.Logger

	Focused   engine.Event
	Defocused engine.Event

	focused bool
}

func (b *Base) Start() {
	if b.Point == nil && b.PointName != "" {
		b.Point = findRef(b.GetGameObject(), b.PointName)
	}
}

// InteractionPoint returns the point object's world position, falling back to
// the owner's.
func (b *Base) InteractionPoint() rl.Vector3 {
	if b.Point != nil {
		return b.Point.WorldPosition()
	}
	if g := b.GetGameObject(); g != nil {
		return g.WorldPosition()
	}
	return rl.Vector3{}
}

func (b *Base) PromptText() string {
	return b.Label
}

func (b *Base) OnFocus() {
	b.focused = true
	b.logger().Debug("focus")
	b.Focused.Invoke()
}

func (b *Base) OnDefocus() {
	b.focused = false
	b.logger().Debug("defocus")
	b.Defocused.Invoke()
}

// IsFocused reports whether a tracker currently focuses this object.
func (b *Base) IsFocused() bool {
	return b.focused
}

// alive reports whether the owner can still be interacted with.
func (b *Base) alive() bool {
	g := b.GetGameObject()
	return g != nil && g.ActiveInHierarchy()
}

func (b *Base) logger() *zap.Logger {
	l := b.Log
	if l == nil {
		l = zap.L().Named("interactables")
	}
	if g := b.GetGameObject(); g != nil {
		l = l.With(zap.String("object", g.Name))
	}
	return l
}

// deactivate hides the owner, which also removes it from focus on the next step.
func (b *Base) deactivate() {
	if g := b.GetGameObject(); g != nil {
		g.SetActive(false)
	}
}

// destroy removes the owner through its world, or deactivates it when it has none.
func (b *Base) destroy() {
	g := b.GetGameObject()
	if g == nil {
		return
	}
	if g.Scene != nil && g.Scene.World != nil {
		g.Scene.World.Destroy(g)
		return
	}
	g.SetActive(false)
}

// findRef looks for a named object among g's descendants, then in g's scene.
func findRef(g *engine.GameObject, name string) *engine.GameObject {
	ref := engine.Ref(name)
	return ref.Get(g)
}

func actorName(actor *engine.GameObject) string {
	if actor == nil {
		return ""
	}
	return actor.Name
}
