package components

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Projection rl.CameraProjection
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        70.0,
		Projection: rl.CameraPerspective,
	}
}

// GetRaylibCamera places the camera at the eye of the nearest LookProvider on
// this object or its parents, or at the object facing its transform forward.
func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	var forward rl.Vector3

	if look, owner, ok := engine.FindComponentInParent[engine.LookProvider](g); ok {
		// A camera on the controller's own object sits at eye height; a child
		// camera keeps its local offset.
		if owner == g {
			eyePos.Y += look.GetEyeHeight()
		}
		x, y, z := look.GetLookDirection()
		forward = rl.Vector3{X: x, Y: y, Z: z}
	} else {
		t := g.Transform
		t.Rotation = g.WorldRotation()
		forward = t.Forward()
	}

	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, forward),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}
