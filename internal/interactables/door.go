package interactables

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"interaction3d/internal/engine"
)

// Door is a lockable toggle. With an animator it sets OpenParam; otherwise it
// swings Pivot (or itself) around Y between its closed yaw and OpenAngle.
type Door struct {
	Toggle

	Lock Lock

	Animator  Animator
	OpenParam string

	Pivot     *engine.GameObject
	PivotName string
	// OpenAngle is added to the closed yaw, in degrees.
	OpenAngle float32
	SwingTime float32

	closedYaw float32
	swing     *gween.Tween
	started   bool
}

func NewDoor() *Door {
	d := &Door{
		OpenParam: "Open",
		OpenAngle: 90,
		SwingTime: 0.6,
	}
	d.Precondition = d.Lock.Check
	d.ApplyState = d.applyDoor
	return d
}

func (d *Door) Start() {
	d.Toggle.Start()
	d.ensureStarted()
}

func (d *Door) ensureStarted() {
	if d.started {
		return
	}
	d.started = true
	if d.Pivot == nil && d.PivotName != "" {
		d.Pivot = findRef(d.GetGameObject(), d.PivotName)
	}
	if d.Pivot == nil {
		d.Pivot = d.GetGameObject()
	}
	if d.Pivot != nil {
		d.closedYaw = d.Pivot.Transform.Rotation.Y
	}
}

// Locked reports whether the lock still blocks the door.
func (d *Door) Locked() bool {
	return d.Lock.IsLocked()
}

func (d *Door) PromptText() string {
	if d.Lock.IsLocked() {
		return d.Lock.prompt()
	}
	return d.Toggle.PromptText()
}

// Swinging reports whether the pivot tween is still running.
func (d *Door) Swinging() bool {
	return d.swing != nil
}

func (d *Door) Update(deltaTime float32) {
	if d.swing == nil || d.Pivot == nil {
		return
	}
	yaw, done := d.swing.Update(deltaTime)
	d.Pivot.Transform.Rotation.Y = yaw
	if done {
		d.swing = nil
	}
}

func (d *Door) applyDoor(on bool) {
	if a := animatorOn(d.Animator, d.GetGameObject()); a != nil {
		a.SetBool(d.OpenParam, on)
		return
	}
	d.ensureStarted()
	if d.Pivot == nil {
		return
	}
	target := d.closedYaw
	if on {
		target += d.OpenAngle
	}
	if d.SwingTime <= 0 {
		d.Pivot.Transform.Rotation.Y = target
		d.swing = nil
		return
	}
	d.swing = gween.New(d.Pivot.Transform.Rotation.Y, target, d.SwingTime, ease.InOutCubic)
}
