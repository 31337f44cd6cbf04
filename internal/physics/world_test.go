package physics

import (
	"math"
	"testing"

	"interaction3d/internal/components"
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func boxAt(name string, pos, size rl.Vector3) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewBoxCollider(size))
	return g
}

func sphereAt(name string, pos rl.Vector3, radius float32) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.Transform.Position = pos
	g.AddComponent(components.NewSphereCollider(radius))
	return g
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

var unit = rl.Vector3{X: 1, Y: 1, Z: 1}

func TestRaycastClosest(t *testing.T) {
	w := NewPhysicsWorld()
	far := boxAt("Far", rl.Vector3{Z: -6}, unit)
	near := boxAt("Near", rl.Vector3{Z: -3}, unit)
	w.AddObject(far)
	w.AddObject(near)

	hit, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 10)
	if !ok {
		t.Fatal("expected a hit")
	}
	if hit.GameObject != near {
		t.Errorf("hit %s, want Near", hit.GameObject.Name)
	}
	if !approx(hit.Distance, 2.5) {
		t.Errorf("distance = %v, want 2.5", hit.Distance)
	}
	if !approx(hit.Normal.Z, 1) {
		t.Errorf("normal = %v, want +Z", hit.Normal)
	}
}

func TestRaycastRespectsMaxDistance(t *testing.T) {
	w := NewPhysicsWorld()
	w.AddObject(boxAt("Box", rl.Vector3{Z: -3}, unit))

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 2); ok {
		t.Error("box beyond max distance was hit")
	}
}

func TestSphereCastRadiusWidensRay(t *testing.T) {
	w := NewPhysicsWorld()
	// Box edge sits 0.3 to the side of the ray.
	w.AddObject(boxAt("Side", rl.Vector3{X: 0.8, Z: -3}, unit))

	if hits := w.SphereCastAll(rl.Vector3{}, rl.Vector3{Z: -1}, 0.1, 10); len(hits) != 0 {
		t.Errorf("thin cast hit %d colliders", len(hits))
	}
	if hits := w.SphereCastAll(rl.Vector3{}, rl.Vector3{Z: -1}, 0.5, 10); len(hits) != 1 {
		t.Errorf("wide cast hit %d colliders, want 1", len(hits))
	}
}

func TestSphereCastStartingInside(t *testing.T) {
	w := NewPhysicsWorld()
	w.AddObject(sphereAt("Ball", rl.Vector3{}, 1))

	hits := w.SphereCastAll(rl.Vector3{}, rl.Vector3{X: 1}, 0, 5)
	if len(hits) != 1 || hits[0].Distance != 0 {
		t.Fatalf("hits = %+v, want one at distance 0", hits)
	}
}

func TestSphereCastRotatedBox(t *testing.T) {
	w := NewPhysicsWorld()
	// A thin wall turned 90 degrees faces the ray with its long side.
	wall := boxAt("Wall", rl.Vector3{Z: -3}, rl.Vector3{X: 0.1, Y: 2, Z: 4})
	wall.Transform.Rotation.Y = 90
	w.AddObject(wall)

	hits := w.SphereCastAll(rl.Vector3{X: 1.5}, rl.Vector3{Z: -1}, 0, 10)
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if !approx(hits[0].Distance, 2.95) {
		t.Errorf("distance = %v, want 2.95", hits[0].Distance)
	}
}

func TestOverlapSphere(t *testing.T) {
	w := NewPhysicsWorld()
	in := boxAt("In", rl.Vector3{X: 2}, unit)
	ball := sphereAt("Ball", rl.Vector3{Z: 2.8}, 0.5)
	out := boxAt("Out", rl.Vector3{X: 12}, unit)
	w.AddObject(in)
	w.AddObject(ball)
	w.AddObject(out)

	got := w.OverlapSphere(rl.Vector3{}, 2.5)
	if len(got) != 2 || got[0] != in || got[1] != ball {
		t.Errorf("overlap = %v", names(got))
	}
}

func TestOverlapSkipsInactive(t *testing.T) {
	w := NewPhysicsWorld()
	g := boxAt("Box", rl.Vector3{}, unit)
	w.AddObject(g)
	g.SetActive(false)

	if got := w.OverlapSphere(rl.Vector3{}, 1); len(got) != 0 {
		t.Errorf("overlap = %v", names(got))
	}
}

func TestChildCollidersRegisteredAndRemoved(t *testing.T) {
	w := NewPhysicsWorld()
	parent := engine.NewGameObject("Parent")
	child := boxAt("Child", rl.Vector3{Z: -2}, unit)
	parent.AddChild(child)

	w.AddObject(parent)
	if len(w.Objects) != 1 || w.Objects[0] != child {
		t.Fatalf("objects = %v, want [Child]", names(w.Objects))
	}
	w.AddObject(parent)
	if len(w.Objects) != 1 {
		t.Fatalf("re-adding duplicated objects: %v", names(w.Objects))
	}

	w.RemoveObject(parent)
	if len(w.Objects) != 0 {
		t.Errorf("objects after remove = %v", names(w.Objects))
	}
	if hits := w.SphereCastAll(rl.Vector3{}, rl.Vector3{Z: -1}, 0, 5); len(hits) != 0 {
		t.Errorf("removed collider still hit")
	}
}

func TestGridFollowsMovement(t *testing.T) {
	w := NewPhysicsWorld()
	g := boxAt("Mover", rl.Vector3{X: 50}, unit)
	w.AddObject(g)
	w.Update(0)

	g.Transform.Position = rl.Vector3{Z: -2}
	w.Update(0)

	if _, ok := w.Raycast(rl.Vector3{}, rl.Vector3{Z: -1}, 5); !ok {
		t.Error("moved object not found after Update")
	}
}

func names(objs []*engine.GameObject) []string {
	out := make([]string, len(objs))
	for i, o := range objs {
		out[i] = o.Name
	}
	return out
}
