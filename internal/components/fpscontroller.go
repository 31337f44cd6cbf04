package components

import (
	"math"

	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FPSController moves its object with WASD and turns it with the mouse. It is
// the actor's engine.LookProvider: trackers and cameras aim along its look
// direction from EyeHeight above the object.
type FPSController struct {
	engine.BaseComponent
	Yaw       float32
	Pitch     float32
	MoveSpeed float32
	LookSpeed float32
	Velocity  rl.Vector3
	EyeHeight float32
	// Enabled gates keyboard and mouse polling; look state is kept while off.
	Enabled bool
}

var _ engine.LookProvider = (*FPSController)(nil)

func NewFPSController() *FPSController {
	return &FPSController{
		Yaw:       -90.0,
		Pitch:     0,
		MoveSpeed: 4.0,
		LookSpeed: 0.1,
		EyeHeight: 1.7,
		Enabled:   true,
	}
}

func (f *FPSController) Update(deltaTime float32) {
	g := f.GetGameObject()
	if g == nil || !f.Enabled {
		return
	}

	// Mouse look
	mouseDelta := rl.GetMouseDelta()
	f.Look(mouseDelta.X*f.LookSpeed, -mouseDelta.Y*f.LookSpeed)

	var forwardAxis, rightAxis float32
	if rl.IsKeyDown(rl.KeyW) {
		forwardAxis++
	}
	if rl.IsKeyDown(rl.KeyS) {
		forwardAxis--
	}
	if rl.IsKeyDown(rl.KeyD) {
		rightAxis++
	}
	if rl.IsKeyDown(rl.KeyA) {
		rightAxis--
	}
	f.Move(forwardAxis, rightAxis, deltaTime)
}

// Look turns by yaw and pitch degrees. Pitch is clamped to ±89.
func (f *FPSController) Look(yaw, pitch float32) {
	f.Yaw += yaw
	f.Pitch += pitch
	if f.Pitch > 89 {
		f.Pitch = 89
	}
	if f.Pitch < -89 {
		f.Pitch = -89
	}
}

// Move walks on the horizontal plane. Diagonal input is normalized.
func (f *FPSController) Move(forwardAxis, rightAxis, deltaTime float32) {
	g := f.GetGameObject()
	if g == nil {
		return
	}
	forward, right := f.getDirections()

	var moveDir rl.Vector3
	moveDir.X = forward.X*forwardAxis + right.X*rightAxis
	moveDir.Z = forward.Z*forwardAxis + right.Z*rightAxis

	moveLen := float32(math.Sqrt(float64(moveDir.X*moveDir.X + moveDir.Z*moveDir.Z)))
	if moveLen > 0 {
		moveDir.X /= moveLen
		moveDir.Z /= moveLen
	}

	f.Velocity.X = moveDir.X * f.MoveSpeed
	f.Velocity.Z = moveDir.Z * f.MoveSpeed

	g.Transform.Position.X += f.Velocity.X * deltaTime
	g.Transform.Position.Z += f.Velocity.Z * deltaTime
}

func (f *FPSController) getDirections() (forward, right rl.Vector3) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	forward = rl.Vector3{
		X: float32(math.Cos(yawRad)),
		Y: 0,
		Z: float32(math.Sin(yawRad)),
	}
	right = rl.Vector3{
		X: float32(-math.Sin(yawRad)),
		Y: 0,
		Z: float32(math.Cos(yawRad)),
	}
	return
}

func (f *FPSController) GetLookDirection() (x, y, z float32) {
	yawRad := float64(f.Yaw) * math.Pi / 180
	pitchRad := float64(f.Pitch) * math.Pi / 180
	return float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		float32(math.Sin(pitchRad)),
		float32(math.Sin(yawRad) * math.Cos(pitchRad))
}

func (f *FPSController) GetEyeHeight() float32 {
	return f.EyeHeight
}
