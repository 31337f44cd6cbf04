package components

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ShapeKind is the primitive a Shape draws.
type ShapeKind string

const (
	ShapeCube   ShapeKind = "cube"
	ShapeSphere ShapeKind = "sphere"
)

// Shape draws a colored primitive with the object's world transform. It loads
// nothing onto the GPU, so scenes using it can be built without a window.
type Shape struct {
	engine.BaseComponent
	Kind  ShapeKind
	Size  rl.Vector3
	Color rl.Color
}

func NewShape(kind ShapeKind, size rl.Vector3, color rl.Color) *Shape {
	return &Shape{Kind: kind, Size: size, Color: color}
}

func (s *Shape) Draw() {
	g := s.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}

	rl.PushMatrix()
	applyTransform(g)
	switch s.Kind {
	case ShapeSphere:
		rl.DrawSphere(rl.Vector3{}, s.Size.X, s.Color)
		rl.DrawSphereWires(rl.Vector3{}, s.Size.X, 8, 8, rl.Fade(rl.Black, 0.3))
	default:
		rl.DrawCubeV(rl.Vector3{}, s.Size, s.Color)
		rl.DrawCubeWiresV(rl.Vector3{}, s.Size, rl.Fade(rl.Black, 0.3))
	}
	rl.PopMatrix()
}

// applyTransform multiplies the current matrix by g's local transforms from the
// root down.
func applyTransform(g *engine.GameObject) {
	if g.Parent != nil {
		applyTransform(g.Parent)
	}
	t := g.Transform
	rl.Translatef(t.Position.X, t.Position.Y, t.Position.Z)
	rl.Rotatef(t.Rotation.Z, 0, 0, 1)
	rl.Rotatef(t.Rotation.Y, 0, 1, 0)
	rl.Rotatef(t.Rotation.X, 1, 0, 0)
	rl.Scalef(t.Scale.X, t.Scale.Y, t.Scale.Z)
}
