// Package world ties a scene to its query world and exposes both to the
// interaction tracker.
package world

import (
	"interaction3d/internal/components"
	"interaction3d/internal/engine"
	"interaction3d/internal/physics"

	"go.uber.org/zap"
)

type World struct {
	Scene   *engine.Scene
	Physics *physics.PhysicsWorld
	Log     *zap.Logger
}

var _ engine.WorldAccess = (*World)(nil)

func New(name string) *World {
	w := &World{
		Scene:   engine.NewScene(name),
		Physics: physics.NewPhysicsWorld(),
		Log:     zap.NewNop(),
	}
	w.Scene.World = w
	return w
}

// Add puts g and its children into the scene and registers their colliders.
func (w *World) Add(g *engine.GameObject) {
	w.Scene.AddGameObject(g)
	w.Physics.AddObject(g)
}

// Destroy removes g from the scene and the query world. Handles issued for g
// stop resolving.
func (w *World) Destroy(g *engine.GameObject) {
	if g == nil {
		return
	}
	w.Log.Debug("destroy", zap.String("object", g.Name), zap.Stringer("handle", g.Handle()))
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	w.Physics.RemoveObject(g)
	w.Scene.RemoveGameObject(g)
}

// GetCollidableObjects returns every object carrying a collider.
func (w *World) GetCollidableObjects() []*engine.GameObject {
	out := make([]*engine.GameObject, len(w.Physics.Objects))
	copy(out, w.Physics.Objects)
	return out
}

// Start starts every object in the scene.
func (w *World) Start() {
	w.Scene.Start()
}

// Update steps scene components and then refreshes the query grid so that
// queries made after Update see this step's positions.
func (w *World) Update(deltaTime float32) {
	w.Scene.Update(deltaTime)
	w.Physics.Update(deltaTime)
}

// Draw renders every Shape in the scene. Must be called inside BeginMode3D.
func (w *World) Draw() {
	for _, g := range w.Scene.GameObjects {
		if s := engine.GetComponent[*components.Shape](g); s != nil {
			s.Draw()
		}
	}
}
