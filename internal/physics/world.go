package physics

import (
	"math"

	"interaction3d/internal/components"
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Spatial grid cell size - objects whose bounds touch a cell are stored in it
const CellSize = 5.0

// Cell key for spatial hashing
type CellKey struct {
	X, Y, Z int
}

func posToCell(pos rl.Vector3) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X / CellSize))),
		Y: int(math.Floor(float64(pos.Y / CellSize))),
		Z: int(math.Floor(float64(pos.Z / CellSize))),
	}
}

// PhysicsWorld answers spatial queries over objects carrying Box or Sphere colliders.
// Every collider component is a separate shape; an object with several colliders
// (or collider children) can be hit more than once by the same query.
type PhysicsWorld struct {
	Objects []*engine.GameObject
	grid    map[CellKey][]*engine.GameObject
	dirty   bool
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Objects: make([]*engine.GameObject, 0),
		grid:    make(map[CellKey][]*engine.GameObject),
	}
}

// AddObject registers g and any descendants that carry colliders.
func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	if hasCollider(g) && !p.contains(g) {
		p.Objects = append(p.Objects, g)
		p.dirty = true
	}
	for _, child := range g.Children {
		p.AddObject(child)
	}
}

// RemoveObject unregisters g and its descendants.
func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for _, child := range g.Children {
		p.RemoveObject(child)
	}
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			p.dirty = true
			return
		}
	}
}

func (p *PhysicsWorld) contains(g *engine.GameObject) bool {
	for _, obj := range p.Objects {
		if obj == g {
			return true
		}
	}
	return false
}

func hasCollider(g *engine.GameObject) bool {
	return engine.GetComponent[components.Collider](g) != nil
}

// Update rebuilds the spatial hash. Call once per step after objects have moved.
func (p *PhysicsWorld) Update(deltaTime float32) {
	p.rebuildGrid()
}

// rebuildGrid clears and repopulates the spatial hash grid
func (p *PhysicsWorld) rebuildGrid() {
	for k := range p.grid {
		delete(p.grid, k)
	}

	for _, obj := range p.Objects {
		center, radius := boundingSphere(obj)
		minCell := posToCell(rl.Vector3SubtractValue(center, radius))
		maxCell := posToCell(rl.Vector3AddValue(center, radius))
		for x := minCell.X; x <= maxCell.X; x++ {
			for y := minCell.Y; y <= maxCell.Y; y++ {
				for z := minCell.Z; z <= maxCell.Z; z++ {
					key := CellKey{x, y, z}
					p.grid[key] = append(p.grid[key], obj)
				}
			}
		}
	}
	p.dirty = false
}

// boundingSphere returns a sphere enclosing every collider on obj.
func boundingSphere(obj *engine.GameObject) (rl.Vector3, float32) {
	center := obj.WorldPosition()
	var radius float32
	for _, c := range obj.Components() {
		if col, ok := c.(components.Collider); ok {
			radius = max(radius, rl.Vector3Distance(center, col.GetCenter())+col.BoundingRadius())
		}
	}
	return center, radius
}

// candidatesNear returns the de-duplicated objects in the cells touched by the sphere,
// in registration order.
func (p *PhysicsWorld) candidatesNear(center rl.Vector3, radius float32) []*engine.GameObject {
	if p.dirty {
		p.rebuildGrid()
	}
	minCell := posToCell(rl.Vector3SubtractValue(center, radius))
	maxCell := posToCell(rl.Vector3AddValue(center, radius))

	seen := make(map[*engine.GameObject]bool)
	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			for z := minCell.Z; z <= maxCell.Z; z++ {
				for _, obj := range p.grid[CellKey{x, y, z}] {
					seen[obj] = true
				}
			}
		}
	}

	query := NewAABBFromSphere(center, radius)
	result := make([]*engine.GameObject, 0, len(seen))
	for _, obj := range p.Objects {
		if !seen[obj] {
			continue
		}
		if c, r := boundingSphere(obj); !query.Intersects(NewAABBFromSphere(c, r)) {
			continue
		}
		result = append(result, obj)
	}
	return result
}

// BoxOBB builds the world-space box of a collider.
func BoxOBB(box *components.BoxCollider) OBB {
	return NewOBB(box.GetCenter(), box.GetWorldSize(), box.GetGameObject().WorldRotation())
}

// OverlapSphere returns one entry per collider that intersects the sphere.
// Inactive objects are skipped.
func (p *PhysicsWorld) OverlapSphere(center rl.Vector3, radius float32) []*engine.GameObject {
	var result []*engine.GameObject
	for _, obj := range p.candidatesNear(center, radius) {
		if !obj.ActiveInHierarchy() {
			continue
		}
		for _, c := range obj.Components() {
			switch col := c.(type) {
			case *components.SphereCollider:
				r := col.GetWorldRadius() + radius
				if rl.Vector3DistanceSqr(center, col.GetCenter()) <= r*r {
					result = append(result, obj)
				}
			case *components.BoxCollider:
				if BoxOBB(col).IntersectsSphere(center, radius) {
					result = append(result, obj)
				}
			}
		}
	}
	return result
}

// SphereCastAll sweeps a sphere from origin along direction and returns one hit
// per collider touched within maxDistance, in registration order. A radius of
// zero behaves like a ray that reports every hit instead of the closest one.
func (p *PhysicsWorld) SphereCastAll(origin, direction rl.Vector3, radius, maxDistance float32) []RaycastHit {
	direction = rl.Vector3Normalize(direction)
	if rl.Vector3Length(direction) == 0 {
		return nil
	}

	// The swept volume is contained in the sphere around the segment midpoint.
	mid := rl.Vector3Add(origin, rl.Vector3Scale(direction, maxDistance/2))
	reach := maxDistance/2 + radius

	var hits []RaycastHit
	for _, obj := range p.candidatesNear(mid, reach) {
		if !obj.ActiveInHierarchy() {
			continue
		}
		for _, c := range obj.Components() {
			var (
				hit RaycastHit
				ok  bool
			)
			switch col := c.(type) {
			case *components.SphereCollider:
				hit, ok = castSphere(origin, direction, col.GetCenter(), col.GetWorldRadius(), radius, maxDistance)
			case *components.BoxCollider:
				hit, ok = castOBB(origin, direction, BoxOBB(col), radius, maxDistance)
			}
			if ok {
				hit.GameObject = obj
				hits = append(hits, hit)
			}
		}
	}
	return hits
}

// Raycast returns the closest hit along the ray.
func (p *PhysicsWorld) Raycast(origin, direction rl.Vector3, maxDistance float32) (RaycastHit, bool) {
	var closest RaycastHit
	found := false
	for _, hit := range p.SphereCastAll(origin, direction, 0, maxDistance) {
		if !found || hit.Distance < closest.Distance {
			closest = hit
			found = true
		}
	}
	return closest, found
}
