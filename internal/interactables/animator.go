package interactables

import (
	"interaction3d/internal/engine"
)

// Animator is the effect collaborator driven by variants. Variants only set
// parameters; what the parameters look like is up to the host.
type Animator interface {
	SetTrigger(name string)
	SetBool(name string, value bool)
}

// ParamAnimator is an Animator component that stores parameters and reports
// changes through events, for hosts that poll or listen instead of animating.
type ParamAnimator struct {
	engine.BaseComponent

	bools    map[string]bool
	triggers map[string]int

	Triggered   engine.EventWithArg[string]
	BoolChanged engine.EventWithArg[string]
}

func NewParamAnimator() *ParamAnimator {
	return &ParamAnimator{
		bools:    make(map[string]bool),
		triggers: make(map[string]int),
	}
}

func (a *ParamAnimator) SetTrigger(name string) {
	if a.triggers == nil {
		a.triggers = make(map[string]int)
	}
	a.triggers[name]++
	a.Triggered.Invoke(name)
}

func (a *ParamAnimator) SetBool(name string, value bool) {
	if a.bools == nil {
		a.bools = make(map[string]bool)
	}
	if prev, ok := a.bools[name]; ok && prev == value {
		return
	}
	a.bools[name] = value
	a.BoolChanged.Invoke(name)
}

func (a *ParamAnimator) Bool(name string) bool {
	return a.bools[name]
}

// TriggerCount returns how many times name has fired.
func (a *ParamAnimator) TriggerCount(name string) int {
	return a.triggers[name]
}

// animatorOn returns explicit when set, otherwise an Animator on the owner.
func animatorOn(explicit Animator, g *engine.GameObject) Animator {
	if explicit != nil {
		return explicit
	}
	if a, ok := engine.FindComponent[Animator](g); ok {
		return a
	}
	return nil
}
