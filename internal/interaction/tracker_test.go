package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"interaction3d/internal/engine"
)

type trackerFixture struct {
	tracker *Tracker
	space   *fakeSpace
	input   *fakeInput
	prompt  *fakePrompt
	rec     *recorder
}

func newFixture(t *testing.T, mutate func(*Config)) *trackerFixture {
	t.Helper()
	cfg := DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	f := &trackerFixture{
		space:  newFakeSpace(),
		input:  &fakeInput{},
		prompt: &fakePrompt{},
		rec:    &recorder{},
	}
	tr, err := NewTracker(cfg, f.space, f.input,
		WithPrompt(f.prompt),
		WithOrigin(atOrigin),
		WithLogger(zaptest.NewLogger(t)),
	)
	require.NoError(t, err)
	f.tracker = tr
	return f
}

func (f *trackerFixture) instant(name string, dist float32, prompt string) *fakeInteractable {
	return &fakeInteractable{name: name, point: at(dist), prompt: prompt, rec: f.rec}
}

func (f *trackerFixture) holdable(name string, dist, duration float32) *fakeHoldable {
	return &fakeHoldable{
		fakeInteractable: fakeInteractable{name: name, point: at(dist), prompt: "Hold E", rec: f.rec},
		duration:         duration,
	}
}

func TestNewTrackerRejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Range = 0
	_, err := NewTracker(cfg, newFakeSpace(), &fakeInput{})
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTrackerFocusesNearest(t *testing.T) {
	f := newFixture(t, nil)
	a := f.instant("a", 3, "A")
	b := f.instant("b", 1, "B")
	f.space.add(h(1), a)
	f.space.add(h(2), b)

	f.tracker.Step(0.016)

	focus, ok := f.tracker.Current()
	require.True(t, ok)
	assert.Equal(t, h(2), focus.Handle)
	assert.Equal(t, 1, b.focuses)
	assert.Equal(t, 0, a.focuses)
	assert.Equal(t, []string{"B"}, f.prompt.shown)
}

func TestTrackerTieKeepsFirstCandidate(t *testing.T) {
	f := newFixture(t, nil)
	f.space.add(h(1), f.instant("a", 2, "A"))
	f.space.add(h(2), f.instant("b", 2, "B"))

	f.tracker.Step(0.016)

	focus, ok := f.tracker.Current()
	require.True(t, ok)
	assert.Equal(t, h(1), focus.Handle)
}

func TestTrackerPassesConfigToQuery(t *testing.T) {
	f := newFixture(t, func(c *Config) {
		c.Mode = ModeSphere
		c.Range = 4
		c.Radius = 0.5
	})

	f.tracker.Step(0.016)

	require.Len(t, f.space.queries, 1)
	q := f.space.queries[0]
	assert.Equal(t, ModeSphere, q.Mode)
	assert.Equal(t, float32(4), q.Range)
	assert.Equal(t, float32(0.5), q.Radius)
	assert.Equal(t, atOrigin.fwd, q.Direction)
}

func TestTrackerEmptySpaceStaysUnfocused(t *testing.T) {
	f := newFixture(t, nil)

	f.tracker.Step(0.016)

	_, ok := f.tracker.Current()
	assert.False(t, ok)
	assert.Empty(t, f.prompt.shown)
	assert.Zero(t, f.prompt.hides)
}

func TestTrackerWithoutOriginScansNothing(t *testing.T) {
	f := newFixture(t, nil)
	f.space.add(h(1), f.instant("a", 1, "A"))
	f.tracker.SetOrigin(nil)

	f.tracker.Step(0.016)

	_, ok := f.tracker.Current()
	assert.False(t, ok)
	assert.Empty(t, f.space.queries)
}

func TestTrackerFocusDefocusPairing(t *testing.T) {
	f := newFixture(t, nil)
	a := f.instant("a", 2, "A")
	b := f.instant("b", 1, "B")
	f.space.add(h(1), a)

	var changes []Focus
	f.tracker.FocusChanged.AddListener(func(fc Focus) { changes = append(changes, fc) })

	f.tracker.Step(0.016)
	f.tracker.Step(0.016)
	assert.Equal(t, 1, a.focuses, "same focus must not re-fire on_focus")

	f.space.add(h(2), b)
	f.tracker.Step(0.016)

	f.space.remove(h(2))
	f.space.remove(h(1))
	f.tracker.Step(0.016)

	assert.Equal(t, []string{"a.focus", "a.defocus", "b.focus", "b.defocus"}, f.rec.events)
	assert.Equal(t, []string{"A", "B"}, f.prompt.shown)
	assert.Equal(t, 1, f.prompt.hides)
	require.Len(t, changes, 3)
	assert.True(t, changes[2].Handle.IsNil())
}

func TestTrackerDeduplicatesOwner(t *testing.T) {
	f := newFixture(t, nil)
	a := f.instant("a", 1, "A")
	f.space.add(h(1), a)
	f.space.alias(h(5), h(1))
	f.space.alias(h(6), h(1))

	f.tracker.Step(0.016)

	focus, ok := f.tracker.Current()
	require.True(t, ok)
	assert.Equal(t, h(1), focus.Handle)
	assert.Equal(t, 1, a.focuses)
}

func TestTrackerEmptyPromptHides(t *testing.T) {
	f := newFixture(t, nil)
	f.space.add(h(1), f.instant("a", 1, ""))

	f.tracker.Step(0.016)

	assert.Empty(t, f.prompt.shown)
	assert.Equal(t, 1, f.prompt.hides)
}

func TestTrackerRefreshPrompt(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.RefreshPrompt = true })
	a := f.instant("a", 1, "Open")
	f.space.add(h(1), a)

	f.tracker.Step(0.016)
	f.tracker.Step(0.016)
	a.prompt = "Close"
	f.tracker.Step(0.016)
	f.tracker.Step(0.016)

	assert.Equal(t, []string{"Open", "Close"}, f.prompt.shown)
}

func TestTrackerPromptNotRefreshedByDefault(t *testing.T) {
	f := newFixture(t, nil)
	a := f.instant("a", 1, "Open")
	f.space.add(h(1), a)

	f.tracker.Step(0.016)
	a.prompt = "Close"
	f.tracker.Step(0.016)

	assert.Equal(t, []string{"Open"}, f.prompt.shown)
}

func TestTrackerInteractOncePerPress(t *testing.T) {
	f := newFixture(t, nil)
	a := f.instant("a", 1, "A")
	f.space.add(h(1), a)

	f.input.press()
	f.tracker.Step(0.016)
	f.input.hold()
	f.tracker.Step(0.016)
	f.tracker.Step(0.016)
	f.input.release()
	f.tracker.Step(0.016)
	f.input.press()
	f.tracker.Step(0.016)

	assert.Equal(t, 2, a.interacts)
}

func TestTrackerFocusBeforeInteractInSameStep(t *testing.T) {
	f := newFixture(t, nil)
	f.space.add(h(1), f.instant("a", 1, "A"))

	f.input.press()
	f.tracker.Step(0.016)

	assert.Equal(t, []string{"a.focus", "a.interact"}, f.rec.events)
}

func TestTrackerEmptyActionDisablesInput(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.Action = "" })
	a := f.instant("a", 1, "A")
	hd := f.holdable("h", 2, 1)
	f.space.add(h(1), a)

	f.input.press()
	f.tracker.Step(0.016)
	assert.Zero(t, a.interacts)

	f.space.remove(h(1))
	f.space.add(h(2), hd)
	f.input.press()
	f.tracker.Step(0.016)
	assert.Zero(t, hd.starts)
	assert.False(t, f.tracker.Holding())
}

func TestTrackerHoldCompletesOnce(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 1.5)
	f.space.add(h(1), hd)

	var completed int
	f.tracker.HoldCompleted.AddListener(func(Focus) { completed++ })

	f.input.press()
	f.tracker.Step(0.1)
	f.input.hold()
	for range 24 {
		f.tracker.Step(0.1)
	}

	assert.Equal(t, 1, hd.starts)
	assert.Equal(t, 1, hd.completes)
	assert.Equal(t, 1, completed)
	assert.Zero(t, hd.cancels)
	assert.Zero(t, hd.interacts, "hold targets never receive instant dispatch")
	assert.False(t, f.tracker.Holding())

	require.NotEmpty(t, hd.progress)
	for i := 1; i < len(hd.progress); i++ {
		assert.Greater(t, hd.progress[i], hd.progress[i-1])
	}
	assert.Equal(t, float32(1), hd.progress[len(hd.progress)-1])
	assert.GreaterOrEqual(t, len(hd.progress), 15)
	assert.LessOrEqual(t, len(hd.progress), 16)
}

func TestTrackerHoldStartPrecedesProgress(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 1)
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.25)

	assert.Equal(t, 1, hd.starts)
	assert.Equal(t, []float32{0.25}, hd.progress)
	assert.True(t, f.tracker.Holding())
}

func TestTrackerHoldReleaseCancels(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 1.5)
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.1)
	f.input.hold()
	f.tracker.Step(0.1)
	f.input.release()
	f.tracker.Step(0.1)

	assert.Equal(t, 1, hd.cancels)
	assert.Zero(t, hd.completes)
	assert.False(t, f.tracker.Holding())

	// Held without a fresh press edge does not restart.
	f.input.hold()
	f.tracker.Step(0.1)
	assert.Equal(t, 1, hd.starts)
}

func TestTrackerHoldNeedsNewPressAfterComplete(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 0.2)
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.1)
	f.input.hold()
	for range 5 {
		f.tracker.Step(0.1)
	}
	assert.Equal(t, 1, hd.completes)
	assert.Equal(t, 1, hd.starts)

	f.input.release()
	f.tracker.Step(0.1)
	assert.Zero(t, hd.cancels)
}

func TestTrackerZeroDurationCompletesImmediately(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 0)
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.016)

	assert.Equal(t, 1, hd.completes)
	assert.Equal(t, []float32{1}, hd.progress)
}

func TestTrackerNegativeDeltaDoesNotRewindProgress(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 1)
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.5)
	f.input.hold()
	f.tracker.Step(-0.3)

	require.Len(t, hd.progress, 2)
	assert.Equal(t, hd.progress[0], hd.progress[1])
}

func TestTrackerFocusChangeCancelsHoldBeforeNewFocus(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 2, 1.5)
	b := f.instant("b", 1, "B")
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.1)
	f.input.hold()
	f.tracker.Step(0.1)

	f.space.add(h(2), b)
	f.tracker.Step(0.1)

	assert.Equal(t, []string{
		"h.focus", "h.hold_start",
		"h.hold_cancel", "h.defocus", "b.focus",
	}, f.rec.events)
	assert.Zero(t, b.interacts, "held button is not a new press")
}

func TestTrackerTargetLostCancelsHold(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 1.5)
	f.space.add(h(1), hd)

	var cancelled []Focus
	f.tracker.HoldCancelled.AddListener(func(fc Focus) { cancelled = append(cancelled, fc) })

	f.input.press()
	f.tracker.Step(0.1)
	f.input.hold()
	f.space.remove(h(1))
	f.tracker.Step(0.1)

	assert.Equal(t, 1, hd.cancels)
	assert.Equal(t, 1, hd.defocuses)
	require.Len(t, cancelled, 1)
	assert.Equal(t, h(1), cancelled[0].Handle)
	_, ok := f.tracker.Current()
	assert.False(t, ok)
}

func TestTrackerReevaluatePolicyCancelsEveryStep(t *testing.T) {
	f := newFixture(t, func(c *Config) { c.HoldCancel = CancelOnReevaluate })
	hd := f.holdable("h", 1, 0.5)
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.1)
	f.input.hold()
	for range 10 {
		f.tracker.Step(0.1)
	}

	assert.Equal(t, 1, hd.starts)
	assert.Equal(t, 1, hd.cancels)
	assert.Zero(t, hd.completes)
	assert.Equal(t, 1, hd.focuses, "cancelling does not drop focus")
}

func TestTrackerExternalCancel(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 1)
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.1)
	f.tracker.Cancel()
	f.tracker.Cancel()

	assert.Equal(t, 1, hd.cancels)
	assert.False(t, f.tracker.Holding())
}

func TestTrackerConfigureCancelsHold(t *testing.T) {
	f := newFixture(t, nil)
	hd := f.holdable("h", 1, 1)
	f.space.add(h(1), hd)

	f.input.press()
	f.tracker.Step(0.1)

	bad := DefaultConfig()
	bad.Radius = -1
	require.ErrorIs(t, f.tracker.Configure(bad), ErrInvalidConfig)
	assert.True(t, f.tracker.Holding())

	require.NoError(t, f.tracker.Configure(DefaultConfig()))
	assert.Equal(t, 1, hd.cancels)
}

func TestTrackerAsComponent(t *testing.T) {
	f := newFixture(t, nil)
	a := f.instant("a", 1, "A")
	f.space.add(h(1), a)

	var got *engine.GameObject
	player := engine.NewGameObject("Player")
	player.AddComponent(f.tracker)
	f.space.targets[h(1)] = &actorCapture{fakeInteractable: a, got: &got}

	f.input.press()
	player.Update(0.016)

	assert.Same(t, player, got)
}

type actorCapture struct {
	*fakeInteractable
	got **engine.GameObject
}

func (c *actorCapture) Interact(actor *engine.GameObject) {
	*c.got = actor
	c.fakeInteractable.Interact(actor)
}
