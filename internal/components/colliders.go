package components

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Collider is a shape the query world can hit. Interaction scans only see
// objects carrying one; the collider may sit on a child of the interactable.
type Collider interface {
	engine.Component
	GetCenter() rl.Vector3
	// BoundingRadius is the radius of a sphere around GetCenter enclosing the shape.
	BoundingRadius() float32
}

var (
	_ Collider = (*BoxCollider)(nil)
	_ Collider = (*SphereCollider)(nil)
)

// BoxCollider is an oriented box following the owner's world rotation.
type BoxCollider struct {
	engine.BaseComponent
	Size   rl.Vector3
	Offset rl.Vector3
}

func NewBoxCollider(size rl.Vector3) *BoxCollider {
	return &BoxCollider{Size: size}
}

// GetCenter offsets the owner's world position; Offset is not rotated.
func (b *BoxCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(b.GetGameObject().WorldPosition(), b.Offset)
}

func (b *BoxCollider) GetWorldSize() rl.Vector3 {
	s := b.GetGameObject().WorldScale()
	return rl.Vector3{X: b.Size.X * s.X, Y: b.Size.Y * s.Y, Z: b.Size.Z * s.Z}
}

func (b *BoxCollider) BoundingRadius() float32 {
	return rl.Vector3Length(b.GetWorldSize()) * 0.5
}

type SphereCollider struct {
	engine.BaseComponent
	Radius float32
	Offset rl.Vector3
}

func NewSphereCollider(radius float32) *SphereCollider {
	return &SphereCollider{Radius: radius}
}

func (s *SphereCollider) GetCenter() rl.Vector3 {
	return rl.Vector3Add(s.GetGameObject().WorldPosition(), s.Offset)
}

// GetWorldRadius scales Radius by the largest world scale axis, so a
// non-uniformly scaled sphere is treated as its enclosing sphere.
func (s *SphereCollider) GetWorldRadius() float32 {
	sc := s.GetGameObject().WorldScale()
	return s.Radius * max(sc.X, sc.Y, sc.Z)
}

func (s *SphereCollider) BoundingRadius() float32 {
	return s.GetWorldRadius()
}
