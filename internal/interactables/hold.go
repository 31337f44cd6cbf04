package interactables

import (
	"go.uber.org/zap"

	"interaction3d/internal/engine"
	"interaction3d/internal/interaction"
)

// DefaultHoldDuration is the hold time used when none is configured.
const DefaultHoldDuration = 1.5

// Hold completes only after the interact action is held for Duration seconds.
// Its completion effect runs at most once; by default it deactivates the object.
type Hold struct {
	Base

	Duration float32

	// Progress mirrors the gesture when set.
	Progress interaction.ProgressBar
	Animator Animator
	// ActiveParam is set on the animator while a gesture runs.
	ActiveParam string

	// OnComplete replaces the default completion effect.
	OnComplete func(actor *engine.GameObject)
	Script     *ScriptEffect

	Started   engine.Event
	Completed engine.EventWithArg[*engine.GameObject]
	Cancelled engine.Event

	completed bool
}

func NewHold() *Hold {
	return &Hold{
		Base:        Base{Label: "Hold E to Interact"},
		Duration:    DefaultHoldDuration,
		ActiveParam: "HoldActive",
	}
}

func (h *Hold) Capability() interaction.Capability {
	return interaction.CapabilityHold
}

// Interact does nothing; holds only respond to hold callbacks.
func (h *Hold) Interact(*engine.GameObject) {}

// Done reports whether the completion effect has run.
func (h *Hold) Done() bool {
	return h.completed
}

// UseProgress sets the bar unless one is already assigned.
func (h *Hold) UseProgress(bar interaction.ProgressBar) {
	if h.Progress == nil {
		h.Progress = bar
	}
}

func (h *Hold) HoldDuration() float32 {
	return h.Duration
}

func (h *Hold) OnHoldStart(actor *engine.GameObject) {
	h.logger().Debug("hold start", zap.String("actor", actorName(actor)))
	h.setActive(true)
	if h.Progress != nil {
		h.Progress.SetProgress(0)
	}
	h.Started.Invoke()
}

func (h *Hold) OnHoldProgress(progress float32) {
	if h.Progress != nil {
		h.Progress.SetProgress(progress)
	}
}

func (h *Hold) OnHoldComplete(actor *engine.GameObject) {
	h.setActive(false)
	if h.Progress != nil {
		h.Progress.Hide()
	}
	if h.completed || !h.alive() {
		return
	}
	h.completed = true
	log := h.logger()
	log.Debug("hold complete", zap.String("actor", actorName(actor)))

	h.Script.runLogged("hold_complete", h.GetGameObject(), actor, false, log)
	h.Completed.Invoke(actor)
	if h.OnComplete != nil {
		h.OnComplete(actor)
		return
	}
	h.deactivate()
}

func (h *Hold) OnHoldCancelled() {
	h.logger().Debug("hold cancelled")
	h.setActive(false)
	if h.Progress != nil {
		h.Progress.Hide()
	}
	h.Cancelled.Invoke()
}

func (h *Hold) setActive(active bool) {
	if a := animatorOn(h.Animator, h.GetGameObject()); a != nil && h.ActiveParam != "" {
		a.SetBool(h.ActiveParam, active)
	}
}

// Chest is a hold that opens once and grants RewardItem. An opened chest shows
// no prompt.
type Chest struct {
	Hold

	RewardItem  string
	OpenTrigger string

	opened bool
}

func NewChest() *Chest {
	c := &Chest{
		Hold:        *NewHold(),
		OpenTrigger: "Open",
	}
	c.OnComplete = c.open
	return c
}

func (c *Chest) Opened() bool {
	return c.opened
}

func (c *Chest) PromptText() string {
	if c.opened {
		return ""
	}
	return c.Hold.PromptText()
}

func (c *Chest) open(actor *engine.GameObject) {
	if c.opened {
		return
	}
	c.opened = true
	if a := animatorOn(c.Animator, c.GetGameObject()); a != nil && c.OpenTrigger != "" {
		a.SetTrigger(c.OpenTrigger)
	}
	if c.RewardItem != "" {
		if inv, ok := holderOf(actor); ok {
			inv.AddItem(c.RewardItem)
		}
	}
	c.logger().Info("chest opened", zap.String("reward", c.RewardItem), zap.String("actor", actorName(actor)))
}
