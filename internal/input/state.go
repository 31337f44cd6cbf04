// Package input turns raw button state into the per-step pressed/held/released
// edges the interaction tracker reads.
package input

import "maps"

// State is an input source driven by explicit samples, used by tests and the
// headless simulator. Call Set for each action during a step and Advance once
// the step has been consumed.
type State struct {
	prev map[string]bool
	cur  map[string]bool
}

func NewState() *State {
	return &State{
		prev: make(map[string]bool),
		cur:  make(map[string]bool),
	}
}

// Set records whether action is down in the current step.
func (s *State) Set(action string, down bool) {
	if s.cur == nil {
		s.cur = make(map[string]bool)
	}
	s.cur[action] = down
}

// Advance carries the current sample into the next step. Actions keep their
// state until Set changes them.
func (s *State) Advance() {
	s.prev = maps.Clone(s.cur)
	if s.prev == nil {
		s.prev = make(map[string]bool)
	}
}

func (s *State) Pressed(action string) bool {
	return s.cur[action] && !s.prev[action]
}

func (s *State) Held(action string) bool {
	return s.cur[action]
}

func (s *State) Released(action string) bool {
	return !s.cur[action] && s.prev[action]
}
