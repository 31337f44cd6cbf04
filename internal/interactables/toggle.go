package interactables

import (
	"go.uber.org/zap"

	"interaction3d/internal/engine"
	"interaction3d/internal/interaction"
)

// Toggle flips between on and off on every successful interaction.
type Toggle struct {
	Base

	State  ToggleState
	Labels Labels

	// Precondition, when set, must pass for the toggle to flip.
	Precondition Precondition
	// ApplyState runs after every flip. When nil the toggle shows or hides
	// Visual instead.
	ApplyState func(on bool)
	// Visual is activated while on when ApplyState is nil. VisualName
	// resolves it at Start, like PointName.
	Visual     *engine.GameObject
	VisualName string

	Script *ScriptEffect

	Changed engine.EventWithArg[bool]
}

func NewToggle() *Toggle {
	return &Toggle{}
}

func (t *Toggle) Start() {
	t.Base.Start()
	if t.Visual == nil {
		t.Visual = findRef(t.GetGameObject(), t.VisualName)
	}
}

func (t *Toggle) Capability() interaction.Capability {
	return interaction.CapabilityToggle
}

// IsOn reports the current state.
func (t *Toggle) IsOn() bool {
	return t.State.On
}

// PromptText prefers an explicit label, otherwise describes the next action.
func (t *Toggle) PromptText() string {
	if t.Label != "" {
		return t.Label
	}
	return t.Labels.For(t.State.On)
}

func (t *Toggle) Interact(actor *engine.GameObject) {
	if !t.alive() {
		return
	}
	if t.Precondition != nil && !t.Precondition(actor) {
		t.logger().Debug("toggle blocked", zap.String("actor", actorName(actor)))
		return
	}
	t.flip(actor)
}

// SetState drives the toggle directly, skipping the precondition.
func (t *Toggle) SetState(on bool) {
	if t.State.On == on {
		return
	}
	t.flip(nil)
}

func (t *Toggle) flip(actor *engine.GameObject) {
	on := t.State.Flip()
	log := t.logger()
	log.Debug("toggled", zap.Bool("on", on), zap.String("actor", actorName(actor)))

	t.apply(on)
	t.Script.runLogged("state", t.GetGameObject(), actor, on, log)
	t.Changed.Invoke(on)
}

func (t *Toggle) apply(on bool) {
	if t.ApplyState != nil {
		t.ApplyState(on)
		return
	}
	if t.Visual != nil {
		t.Visual.SetActive(on)
	}
}

// Switch is a toggle that broadcasts every state it applies.
type Switch struct {
	Toggle

	Switched engine.EventWithArg[bool]
}

func NewSwitch() *Switch {
	s := &Switch{}
	s.ApplyState = s.applySwitch
	return s
}

func (s *Switch) applySwitch(on bool) {
	if s.Visual != nil {
		s.Visual.SetActive(on)
	}
	s.Switched.Invoke(on)
}
