package interaction

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Mode selects how a Space gathers candidates.
type Mode int

const (
	// ModeCone sweeps a sphere of Query.Radius forward from the origin.
	ModeCone Mode = iota
	// ModeSphere collects everything within Query.Range of the origin.
	ModeSphere
)

func (m Mode) String() string {
	switch m {
	case ModeCone:
		return "cone"
	case ModeSphere:
		return "sphere"
	default:
		return "unknown"
	}
}

// Query describes one candidate scan.
type Query struct {
	Origin    rl.Vector3
	Direction rl.Vector3
	Range     float32
	Radius    float32
	Mode      Mode
}

// Target is a resolved candidate: the interactable and the handle of the object
// that owns it. Two query results naming the same owner are the same candidate.
type Target struct {
	Handle       engine.Handle
	Interactable Interactable
}

// Space is the spatial query collaborator.
type Space interface {
	// Query returns opaque handles, possibly duplicated, for everything in range.
	Query(q Query) []engine.Handle
	// Resolve maps a query handle to its interactable. It fails for handles whose
	// object is gone, inactive, or carries no interactable.
	Resolve(h engine.Handle) (Target, bool)
}

// Input is the per-step input state collaborator.
type Input interface {
	Pressed(action string) bool
	Held(action string) bool
	Released(action string) bool
}

// Prompt displays the focused object's prompt text.
type Prompt interface {
	Show(text string)
	Hide()
}

// ProgressBar displays hold progress. Variants drive it; the Tracker does not.
type ProgressBar interface {
	SetProgress(value float32)
	Hide()
}

// Origin is where scans start and which way the cone faces.
type Origin interface {
	Position() rl.Vector3
	Forward() rl.Vector3
}

type objectOrigin struct {
	object *engine.GameObject
}

// ObjectOrigin aims from a GameObject. When the object (or an ancestor) carries
// an engine.LookProvider, the origin sits at eye height and faces the look
// direction; otherwise it uses the world position and transform forward.
// A nil object yields a nil Origin, which scans nothing.
func ObjectOrigin(g *engine.GameObject) Origin {
	if g == nil {
		return nil
	}
	return objectOrigin{object: g}
}

func (o objectOrigin) Position() rl.Vector3 {
	pos := o.object.WorldPosition()
	if look, _, ok := engine.FindComponentInParent[engine.LookProvider](o.object); ok {
		pos.Y += look.GetEyeHeight()
	}
	return pos
}

func (o objectOrigin) Forward() rl.Vector3 {
	if look, _, ok := engine.FindComponentInParent[engine.LookProvider](o.object); ok {
		x, y, z := look.GetLookDirection()
		return rl.Vector3Normalize(rl.Vector3{X: x, Y: y, Z: z})
	}
	t := o.object.Transform
	t.Rotation = o.object.WorldRotation()
	return t.Forward()
}
