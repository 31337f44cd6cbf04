package interaction

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// holdGesture is the hold state owned by a Tracker.
type holdGesture struct {
	holding bool
	elapsed float32
	target  Focus
	facet   Holdable
	id      uuid.UUID
}

func (g *holdGesture) reset() {
	*g = holdGesture{}
}

func holdProgress(elapsed, duration float32) float32 {
	if duration <= 0 {
		return 1
	}
	p := elapsed / duration
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// handleHoldInput drives the gesture for a hold-capable focus. Instant dispatch
// never runs in the same step.
func (t *Tracker) handleHoldInput(facet Holdable, deltaTime float32) {
	action := t.cfg.Action

	if t.input.Pressed(action) && !t.hold.holding {
		t.hold = holdGesture{
			holding: true,
			target:  t.current.Focus,
			facet:   facet,
			id:      uuid.New(),
		}
		t.log.Debug("hold started",
			zap.Stringer("target", t.current.Handle),
			zap.Stringer("gesture", t.hold.id),
			zap.Float32("duration", facet.HoldDuration()))
		facet.OnHoldStart(t.actor())
		t.HoldStarted.Invoke(t.current.Focus)
	}

	if t.input.Held(action) && t.hold.holding {
		if deltaTime > 0 {
			t.hold.elapsed += deltaTime
		}
		progress := holdProgress(t.hold.elapsed, facet.HoldDuration())
		facet.OnHoldProgress(progress)

		if progress >= 1 {
			done := t.hold
			t.hold.reset()
			t.log.Debug("hold completed",
				zap.Stringer("target", done.target.Handle),
				zap.Stringer("gesture", done.id),
				zap.Float32("elapsed", done.elapsed))
			facet.OnHoldComplete(t.actor())
			t.HoldCompleted.Invoke(done.target)
			return
		}
	}

	if t.input.Released(action) && t.hold.holding {
		t.cancelHold("released")
	}
}

// cancelHold aborts the active gesture, if any, and notifies the held object.
func (t *Tracker) cancelHold(reason string) {
	if !t.hold.holding {
		return
	}
	cancelled := t.hold
	t.hold.reset()
	t.log.Debug("hold cancelled",
		zap.Stringer("target", cancelled.target.Handle),
		zap.Stringer("gesture", cancelled.id),
		zap.String("reason", reason),
		zap.Float32("elapsed", cancelled.elapsed))
	cancelled.facet.OnHoldCancelled()
	t.HoldCancelled.Invoke(cancelled.target)
}
