package interactables

// ToggleState is a binary on/off flag flipped by interaction.
type ToggleState struct {
	On bool
}

// Flip inverts the state and returns the new value.
func (s *ToggleState) Flip() bool {
	s.On = !s.On
	return s.On
}

// Labels chooses a prompt for a toggle: the label that describes what the next
// interaction will do.
type Labels struct {
	// WhenOn is shown while on. Defaults to "Turn Off".
	WhenOn string
	// WhenOff is shown while off. Defaults to "Turn On".
	WhenOff string
}

func (l Labels) For(on bool) string {
	if on {
		if l.WhenOn == "" {
			return "Turn Off"
		}
		return l.WhenOn
	}
	if l.WhenOff == "" {
		return "Turn On"
	}
	return l.WhenOff
}
