package world

import (
	"interaction3d/internal/engine"
	"interaction3d/internal/interaction"
	"interaction3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Space answers interaction queries against a World's colliders. Query returns
// the handle of every collider-bearing object hit, once per collider; Resolve
// walks up from the hit object to the nearest ancestor carrying an
// interactable.
type Space struct {
	world *World
}

var _ interaction.Space = (*Space)(nil)

func NewSpace(w *World) *Space {
	return &Space{world: w}
}

func (s *Space) Query(q interaction.Query) []engine.Handle {
	var hits []*engine.GameObject
	switch q.Mode {
	case interaction.ModeSphere:
		hits = s.world.Physics.OverlapSphere(q.Origin, q.Range)
	default:
		for _, hit := range s.world.Physics.SphereCastAll(q.Origin, q.Direction, q.Radius, q.Range) {
			hits = append(hits, hit.GameObject)
		}
	}

	handles := make([]engine.Handle, 0, len(hits))
	for _, g := range hits {
		if h := g.Handle(); !h.IsNil() {
			handles = append(handles, h)
		}
	}
	return handles
}

func (s *Space) Resolve(h engine.Handle) (interaction.Target, bool) {
	g := s.world.Scene.ResolveActive(h)
	if g == nil {
		return interaction.Target{}, false
	}
	i, owner, ok := engine.FindComponentInParent[interaction.Interactable](g)
	if !ok || owner.Handle().IsNil() {
		return interaction.Target{}, false
	}
	return interaction.Target{Handle: owner.Handle(), Interactable: i}, true
}

// Hits returns the raw collider hits behind Query, for debug overlays. Sphere
// mode reports each overlapping object at its position.
func (s *Space) Hits(q interaction.Query) []physics.RaycastHit {
	if q.Mode != interaction.ModeSphere {
		return s.world.Physics.SphereCastAll(q.Origin, q.Direction, q.Radius, q.Range)
	}
	objs := s.world.Physics.OverlapSphere(q.Origin, q.Range)
	hits := make([]physics.RaycastHit, 0, len(objs))
	for _, g := range objs {
		p := g.WorldPosition()
		hits = append(hits, physics.RaycastHit{
			GameObject: g,
			Point:      p,
			Distance:   rl.Vector3Distance(q.Origin, p),
		})
	}
	return hits
}
