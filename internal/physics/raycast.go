package physics

import (
	"math"

	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type RaycastHit struct {
	GameObject *engine.GameObject
	Point      rl.Vector3
	Normal     rl.Vector3
	Distance   float32
}

// castOBB sweeps a sphere of the given radius along the ray and tests it against
// the box inflated by that radius. A radius of zero is a plain ray test. Rays
// starting inside the (inflated) box hit at distance zero.
func castOBB(origin, direction rl.Vector3, box OBB, radius, maxDistance float32) (RaycastHit, bool) {
	rel := rl.Vector3Subtract(origin, box.Center)
	half := [3]float32{box.HalfSize.X + radius, box.HalfSize.Y + radius, box.HalfSize.Z + radius}

	var o, d [3]float32
	for i := 0; i < 3; i++ {
		o[i] = rl.Vector3DotProduct(rel, box.Axes[i])
		d[i] = rl.Vector3DotProduct(direction, box.Axes[i])
	}

	tmin := float32(-1e30)
	tmax := float32(1e30)
	hitAxis := -1
	var hitSign float32

	for i := 0; i < 3; i++ {
		if d[i] == 0 {
			if o[i] < -half[i] || o[i] > half[i] {
				return RaycastHit{}, false
			}
			continue
		}
		t1 := (-half[i] - o[i]) / d[i]
		t2 := (half[i] - o[i]) / d[i]
		sign := float32(-1)
		if t1 > t2 {
			t1, t2 = t2, t1
			sign = 1
		}
		if t1 > tmin {
			tmin = t1
			hitAxis = i
			hitSign = sign
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	if tmax < 0 || tmin > maxDistance {
		return RaycastHit{}, false
	}

	t := tmin
	var normal rl.Vector3
	if t < 0 || hitAxis < 0 {
		// Started inside: report contact at the origin, facing back along the ray.
		t = 0
		normal = rl.Vector3Negate(direction)
	} else {
		normal = rl.Vector3Scale(box.Axes[hitAxis], hitSign)
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}

// castSphere sweeps a sphere of the given radius against a sphere collider.
func castSphere(origin, direction, center rl.Vector3, sphereRadius, radius, maxDistance float32) (RaycastHit, bool) {
	r := sphereRadius + radius

	oc := rl.Vector3Subtract(origin, center)
	a := rl.Vector3DotProduct(direction, direction)
	b := 2.0 * rl.Vector3DotProduct(oc, direction)
	c := rl.Vector3DotProduct(oc, oc) - r*r

	if c <= 0 {
		return RaycastHit{Point: origin, Normal: rl.Vector3Negate(direction), Distance: 0}, true
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return RaycastHit{}, false
	}

	t := (-b - float32(math.Sqrt(float64(discriminant)))) / (2 * a)
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))
	normal := rl.Vector3Normalize(rl.Vector3Subtract(point, center))

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
