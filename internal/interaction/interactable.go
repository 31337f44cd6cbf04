// Package interaction implements focus selection and interaction dispatch for an
// actor scanning the scene for interactable objects.
//
// A Tracker runs once per simulation step. It asks a Space for nearby candidates,
// focuses the one whose interaction point is closest to the origin, notifies the
// previous and new focus, and then routes the interact action either to the
// focused object's Interact method or, for hold-capable objects, through a hold
// gesture (start, progress, complete, cancel).
package interaction

import (
	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Interactable is the contract every object taking part in interaction implements.
type Interactable interface {
	// InteractionPoint is the world position used for distance ranking.
	InteractionPoint() rl.Vector3
	// PromptText is shown while focused. An empty string hides the prompt.
	PromptText() string
	// Interact is called at most once per press of the interact action. It must
	// ignore calls made after the object has been deactivated.
	Interact(actor *engine.GameObject)
	OnFocus()
	OnDefocus()
}

// Holdable is the optional facet of interactables that complete only after the
// interact action has been held for HoldDuration seconds.
type Holdable interface {
	HoldDuration() float32
	OnHoldStart(actor *engine.GameObject)
	// OnHoldProgress receives elapsed/duration clamped to [0,1], never decreasing
	// within a gesture.
	OnHoldProgress(progress float32)
	OnHoldComplete(actor *engine.GameObject)
	OnHoldCancelled()
}

// Capability tags the interaction shape of an interactable.
type Capability int

const (
	CapabilityInstant Capability = iota
	CapabilityToggle
	CapabilityHold
	CapabilityComposite
)

func (c Capability) String() string {
	switch c {
	case CapabilityInstant:
		return "instant"
	case CapabilityToggle:
		return "toggle"
	case CapabilityHold:
		return "hold"
	case CapabilityComposite:
		return "composite"
	default:
		return "unknown"
	}
}

// Tagged lets an interactable report its capability explicitly.
type Tagged interface {
	Capability() Capability
}

// CapabilityOf returns the explicit tag when present, otherwise Hold for
// hold-capable objects and Instant for everything else.
func CapabilityOf(i Interactable) Capability {
	if t, ok := i.(Tagged); ok {
		return t.Capability()
	}
	if _, ok := i.(Holdable); ok {
		return CapabilityHold
	}
	return CapabilityInstant
}

// HoldFacet returns the hold capability of i, if any.
func HoldFacet(i Interactable) (Holdable, bool) {
	h, ok := i.(Holdable)
	return h, ok
}
