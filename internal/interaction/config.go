package interaction

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid interaction config")

// HoldCancelPolicy decides when focus re-evaluation aborts an active hold.
type HoldCancelPolicy int

const (
	// CancelOnTargetChange aborts a hold only when the selected target is no
	// longer the held one (different object, nothing in range, or object gone).
	CancelOnTargetChange HoldCancelPolicy = iota
	// CancelOnReevaluate aborts a hold on every focus re-evaluation, even when
	// the same object stays focused.
	CancelOnReevaluate
)

func (p HoldCancelPolicy) String() string {
	switch p {
	case CancelOnTargetChange:
		return "target-change"
	case CancelOnReevaluate:
		return "reevaluate"
	default:
		return "unknown"
	}
}

// Config is the per-Tracker configuration surface.
type Config struct {
	Mode Mode
	// Range is the scan distance in world units. Must be positive.
	Range float32
	// Radius is the thickness of the cone sweep. Must not be negative.
	Radius float32
	// Action names the input action. Empty disables all input dispatch.
	Action     string
	HoldCancel HoldCancelPolicy
	// RefreshPrompt re-sends the prompt when the focused object's text changes
	// while focus stays on it. Unchanged text is never re-sent.
	RefreshPrompt bool
}

// DefaultConfig matches the stock detector: forward cone, 2.5 units, 0.1 radius.
func DefaultConfig() Config {
	return Config{
		Mode:       ModeCone,
		Range:      2.5,
		Radius:     0.1,
		Action:     "Interact",
		HoldCancel: CancelOnTargetChange,
	}
}

func (c Config) Validate() error {
	if !(c.Range > 0) {
		return fmt.Errorf("%w: range must be positive, got %v", ErrInvalidConfig, c.Range)
	}
	if c.Radius < 0 {
		return fmt.Errorf("%w: radius must not be negative, got %v", ErrInvalidConfig, c.Radius)
	}
	if c.Mode != ModeCone && c.Mode != ModeSphere {
		return fmt.Errorf("%w: unknown mode %d", ErrInvalidConfig, c.Mode)
	}
	if c.HoldCancel != CancelOnTargetChange && c.HoldCancel != CancelOnReevaluate {
		return fmt.Errorf("%w: unknown hold cancel policy %d", ErrInvalidConfig, c.HoldCancel)
	}
	return nil
}

// ParseMode accepts "cone"/"raycast" and "sphere"/"overlap", case-insensitive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cone", "raycast":
		return ModeCone, nil
	case "sphere", "overlap":
		return ModeSphere, nil
	}
	return 0, fmt.Errorf("%w: unknown detection mode %q", ErrInvalidConfig, s)
}

// ParseHoldCancelPolicy accepts "target-change" and "reevaluate".
func ParseHoldCancelPolicy(s string) (HoldCancelPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "target-change":
		return CancelOnTargetChange, nil
	case "reevaluate":
		return CancelOnReevaluate, nil
	}
	return 0, fmt.Errorf("%w: unknown hold cancel policy %q", ErrInvalidConfig, s)
}
