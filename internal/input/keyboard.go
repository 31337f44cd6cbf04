package input

import (
	"fmt"
	"sort"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Bindings maps action names to the keys that trigger them.
type Bindings map[string][]int32

// DefaultBindings binds Interact to E.
func DefaultBindings() Bindings {
	return Bindings{"Interact": {rl.KeyE}}
}

// Keyboard polls raylib for bound keys. It must be used on the thread that owns
// the window.
type Keyboard struct {
	Bindings Bindings
}

func NewKeyboard(b Bindings) *Keyboard {
	if b == nil {
		b = DefaultBindings()
	}
	return &Keyboard{Bindings: b}
}

func (k *Keyboard) Pressed(action string) bool {
	for _, key := range k.Bindings[action] {
		if rl.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

func (k *Keyboard) Held(action string) bool {
	for _, key := range k.Bindings[action] {
		if rl.IsKeyDown(key) {
			return true
		}
	}
	return false
}

// Released is true when a bound key went up this frame and no other bound key
// is still down.
func (k *Keyboard) Released(action string) bool {
	released := false
	for _, key := range k.Bindings[action] {
		if rl.IsKeyDown(key) {
			return false
		}
		if rl.IsKeyReleased(key) {
			released = true
		}
	}
	return released
}

var keyNames = map[string]int32{
	"SPACE":      rl.KeySpace,
	"ENTER":      rl.KeyEnter,
	"TAB":        rl.KeyTab,
	"ESCAPE":     rl.KeyEscape,
	"BACKSPACE":  rl.KeyBackspace,
	"LEFT_SHIFT": rl.KeyLeftShift,
	"LEFT_CTRL":  rl.KeyLeftControl,
	"LEFT_ALT":   rl.KeyLeftAlt,
	"UP":         rl.KeyUp,
	"DOWN":       rl.KeyDown,
	"LEFT":       rl.KeyLeft,
	"RIGHT":      rl.KeyRight,
}

// ParseKey resolves a key name: a single letter or digit, F1-F12, or one of
// the named keys (SPACE, ENTER, LEFT_SHIFT, ...). Case-insensitive.
func ParseKey(name string) (int32, error) {
	n := strings.ToUpper(strings.TrimSpace(name))
	if len(n) == 1 {
		c := n[0]
		switch {
		case c >= 'A' && c <= 'Z':
			return rl.KeyA + int32(c-'A'), nil
		case c >= '0' && c <= '9':
			return rl.KeyZero + int32(c-'0'), nil
		}
	}
	if key, ok := keyNames[n]; ok {
		return key, nil
	}
	var fn int
	if _, err := fmt.Sscanf(n, "F%d", &fn); err == nil && fn >= 1 && fn <= 12 {
		return rl.KeyF1 + int32(fn-1), nil
	}
	return 0, fmt.Errorf("input: unknown key %q", name)
}

// ParseBindings converts named keys into Bindings.
func ParseBindings(named map[string][]string) (Bindings, error) {
	actions := make([]string, 0, len(named))
	for action := range named {
		actions = append(actions, action)
	}
	sort.Strings(actions)

	b := make(Bindings, len(named))
	for _, action := range actions {
		for _, name := range named[action] {
			key, err := ParseKey(name)
			if err != nil {
				return nil, fmt.Errorf("input: binding %q: %w", action, err)
			}
			b[action] = append(b[action], key)
		}
	}
	return b, nil
}
