package interactables

import (
	"go.uber.org/zap"

	"interaction3d/internal/engine"
	"interaction3d/internal/interaction"
)

// HoldToggle flips a toggle each time a hold gesture completes. Unlike Hold it
// can complete any number of times.
type HoldToggle struct {
	Base

	Duration float32
	State    ToggleState
	Labels   Labels
	Lock     Lock

	ApplyState func(on bool)
	Visual     *engine.GameObject
	VisualName string
	Progress   interaction.ProgressBar

	Changed engine.EventWithArg[bool]
}

func NewHoldToggle() *HoldToggle {
	return &HoldToggle{Duration: DefaultHoldDuration}
}

func (h *HoldToggle) Start() {
	h.Base.Start()
	if h.Visual == nil {
		h.Visual = findRef(h.GetGameObject(), h.VisualName)
	}
}

func (h *HoldToggle) Capability() interaction.Capability {
	return interaction.CapabilityComposite
}

func (h *HoldToggle) UseProgress(bar interaction.ProgressBar) {
	if h.Progress == nil {
		h.Progress = bar
	}
}

func (h *HoldToggle) IsOn() bool {
	return h.State.On
}

// PromptText is the locked prompt while locked, then the explicit label, then
// the toggle label.
func (h *HoldToggle) PromptText() string {
	if h.Lock.IsLocked() {
		return h.Lock.prompt()
	}
	if h.Label != "" {
		return h.Label
	}
	return "Hold to " + h.Labels.For(h.State.On)
}

func (h *HoldToggle) Interact(*engine.GameObject) {}

func (h *HoldToggle) HoldDuration() float32 {
	return h.Duration
}

func (h *HoldToggle) OnHoldStart(*engine.GameObject) {
	if h.Progress != nil {
		h.Progress.SetProgress(0)
	}
}

func (h *HoldToggle) OnHoldProgress(progress float32) {
	if h.Progress != nil {
		h.Progress.SetProgress(progress)
	}
}

func (h *HoldToggle) OnHoldComplete(actor *engine.GameObject) {
	if h.Progress != nil {
		h.Progress.Hide()
	}
	if !h.alive() {
		return
	}
	if !h.Lock.Check(actor) {
		h.logger().Debug("hold toggle blocked", zap.String("actor", actorName(actor)))
		return
	}
	on := h.State.Flip()
	h.logger().Debug("hold toggled", zap.Bool("on", on), zap.String("actor", actorName(actor)))
	if h.ApplyState != nil {
		h.ApplyState(on)
	} else if h.Visual != nil {
		h.Visual.SetActive(on)
	}
	h.Changed.Invoke(on)
}

func (h *HoldToggle) OnHoldCancelled() {
	if h.Progress != nil {
		h.Progress.Hide()
	}
}
