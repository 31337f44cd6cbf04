package interaction

import (
	"math"

	"interaction3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"
)

// Focus identifies the focused interactable.
type Focus = Target

// focusState caches what the Tracker learns about its focus once per change.
type focusState struct {
	Focus
	facet      Holdable
	capability Capability
	prompt     string
}

// Tracker selects the nearest interactable each step and dispatches interaction
// input to it. It is a component: attach it to the actor's GameObject and the
// scene drives it through Update, or call Step directly.
//
// The Tracker is the only mutator of its focus and hold state and is not safe
// for concurrent use.
type Tracker struct {
	engine.BaseComponent

	cfg    Config
	space  Space
	input  Input
	prompt Prompt
	origin Origin
	actorG *engine.GameObject
	log    *zap.Logger

	focused bool
	current focusState
	hold    holdGesture

	// FocusChanged fires after every focus transition with the new focus.
	// The zero Focus means nothing is focused.
	FocusChanged  engine.EventWithArg[Focus]
	HoldStarted   engine.EventWithArg[Focus]
	HoldCompleted engine.EventWithArg[Focus]
	HoldCancelled engine.EventWithArg[Focus]
}

type Option func(*Tracker)

// WithPrompt sets the prompt collaborator.
func WithPrompt(p Prompt) Option {
	return func(t *Tracker) { t.prompt = p }
}

// WithOrigin sets the scan origin. Without one the Tracker never focuses anything.
func WithOrigin(o Origin) Option {
	return func(t *Tracker) { t.origin = o }
}

// WithActor sets the object passed to Interact and hold callbacks. Defaults to
// the GameObject the Tracker is attached to.
func WithActor(g *engine.GameObject) Option {
	return func(t *Tracker) { t.actorG = g }
}

func WithLogger(l *zap.Logger) Option {
	return func(t *Tracker) {
		if l != nil {
			t.log = l
		}
	}
}

func NewTracker(cfg Config, space Space, input Input, opts ...Option) (*Tracker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Tracker{
		cfg:   cfg,
		space: space,
		input: input,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	t.log = t.log.Named("interaction")
	return t, nil
}

// Config returns the active configuration.
func (t *Tracker) Config() Config {
	return t.cfg
}

// Configure swaps the configuration between steps. An active hold is cancelled.
func (t *Tracker) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	t.cancelHold("reconfigured")
	t.cfg = cfg
	t.log.Info("detector configured",
		zap.Stringer("mode", cfg.Mode),
		zap.Float32("range", cfg.Range),
		zap.Float32("radius", cfg.Radius),
		zap.String("action", cfg.Action),
		zap.Stringer("hold_cancel", cfg.HoldCancel))
	return nil
}

// SetOrigin replaces the scan origin. nil disables scanning.
func (t *Tracker) SetOrigin(o Origin) {
	t.origin = o
}

// Current returns the focused interactable, if any.
func (t *Tracker) Current() (Focus, bool) {
	return t.current.Focus, t.focused
}

// Holding reports whether a hold gesture is in progress.
func (t *Tracker) Holding() bool {
	return t.hold.holding
}

// Cancel aborts an in-flight hold gesture immediately.
func (t *Tracker) Cancel() {
	t.cancelHold("external")
}

func (t *Tracker) Update(deltaTime float32) {
	t.Step(deltaTime)
}

// Step runs one evaluation: focus update first, then input dispatch.
func (t *Tracker) Step(deltaTime float32) {
	t.updateFocus()
	t.handleInput(deltaTime)
}

func (t *Tracker) actor() *engine.GameObject {
	if t.actorG != nil {
		return t.actorG
	}
	return t.GetGameObject()
}

func (t *Tracker) updateFocus() {
	next, found := t.selectNearest()

	if t.hold.holding {
		switch {
		case t.cfg.HoldCancel == CancelOnReevaluate:
			t.cancelHold("focus re-evaluated")
		case !found || next.Handle != t.hold.target.Handle:
			t.cancelHold("focus lost")
		}
	}

	switch {
	case found && (!t.focused || next.Handle != t.current.Handle):
		t.changeFocus(next)
	case !found && t.focused:
		t.clearFocus()
	case found && t.cfg.RefreshPrompt:
		t.refreshPrompt()
	}
}

// selectNearest scans the Space and returns the candidate whose interaction point
// is closest to the origin. Ties keep the first candidate encountered.
func (t *Tracker) selectNearest() (Target, bool) {
	if t.origin == nil || t.space == nil {
		return Target{}, false
	}

	originPos := t.origin.Position()
	handles := t.space.Query(Query{
		Origin:    originPos,
		Direction: t.origin.Forward(),
		Range:     t.cfg.Range,
		Radius:    t.cfg.Radius,
		Mode:      t.cfg.Mode,
	})

	var (
		best     Target
		bestDist = float32(math.Inf(1))
		found    bool
	)
	seen := make(map[engine.Handle]struct{}, len(handles))
	for _, h := range handles {
		target, ok := t.space.Resolve(h)
		if !ok || target.Interactable == nil {
			continue
		}
		if _, dup := seen[target.Handle]; dup {
			continue
		}
		seen[target.Handle] = struct{}{}

		d := rl.Vector3Distance(originPos, target.Interactable.InteractionPoint())
		if !found || d < bestDist {
			best, bestDist, found = target, d, true
		}
	}
	return best, found
}

func (t *Tracker) changeFocus(next Target) {
	prev := t.current
	if t.focused {
		prev.Interactable.OnDefocus()
	}

	facet, _ := HoldFacet(next.Interactable)
	t.current = focusState{
		Focus:      next,
		facet:      facet,
		capability: CapabilityOf(next.Interactable),
		prompt:     next.Interactable.PromptText(),
	}
	t.focused = true
	next.Interactable.OnFocus()
	t.showPrompt(t.current.prompt)

	t.log.Debug("focus changed",
		zap.Stringer("from", prev.Handle),
		zap.Stringer("to", next.Handle),
		zap.Stringer("capability", t.current.capability),
		zap.String("prompt", t.current.prompt))
	t.FocusChanged.Invoke(next)
}

func (t *Tracker) clearFocus() {
	prev := t.current
	t.current = focusState{}
	t.focused = false
	prev.Interactable.OnDefocus()
	if t.prompt != nil {
		t.prompt.Hide()
	}

	t.log.Debug("focus cleared", zap.Stringer("from", prev.Handle))
	t.FocusChanged.Invoke(Focus{})
}

func (t *Tracker) refreshPrompt() {
	text := t.current.Interactable.PromptText()
	if text == t.current.prompt {
		return
	}
	t.current.prompt = text
	t.showPrompt(text)
}

func (t *Tracker) showPrompt(text string) {
	if t.prompt == nil {
		return
	}
	if text == "" {
		t.prompt.Hide()
		return
	}
	t.prompt.Show(text)
}

func (t *Tracker) handleInput(deltaTime float32) {
	if t.cfg.Action == "" || t.input == nil || !t.focused {
		return
	}

	if t.current.facet != nil {
		t.handleHoldInput(t.current.facet, deltaTime)
		return
	}

	if t.input.Pressed(t.cfg.Action) {
		t.log.Debug("interact",
			zap.Stringer("target", t.current.Handle),
			zap.Stringer("capability", t.current.capability))
		t.current.Interactable.Interact(t.actor())
	}
}
