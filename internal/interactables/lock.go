package interactables

import "interaction3d/internal/engine"

// Precondition gates an interaction on the acting object.
type Precondition func(actor *engine.GameObject) bool

// DefaultLockedPrompt is shown by locked objects that set no prompt of their own.
const DefaultLockedPrompt = "Locked - Key Required"

// Lock is a precondition that requires an item. The first check that finds the
// item unlocks it for good.
type Lock struct {
	Locked       bool
	RequiredItem string
	// Prompt replaces the object's prompt while locked.
	Prompt string
}

// Check unlocks when possible and reports whether the interaction may proceed.
// A nil Lock never blocks.
func (l *Lock) Check(actor *engine.GameObject) bool {
	if l == nil || !l.Locked {
		return true
	}
	if l.RequiredItem == "" || !HasItem(actor, l.RequiredItem) {
		return false
	}
	l.Locked = false
	return true
}

// IsLocked is nil-safe.
func (l *Lock) IsLocked() bool {
	return l != nil && l.Locked
}

func (l *Lock) prompt() string {
	if l.Prompt != "" {
		return l.Prompt
	}
	return DefaultLockedPrompt
}
