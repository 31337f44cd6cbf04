package interactables

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"interaction3d/internal/engine"
	"interaction3d/internal/interaction"
)

func TestHoldIgnoresInstantInteract(t *testing.T) {
	h := NewHold()
	g := attach("Crate", h)

	h.Interact(nil)

	assert.True(t, g.Active)
	assert.False(t, h.Done())
	assert.Equal(t, interaction.CapabilityHold, interaction.CapabilityOf(h))
}

func TestHoldCompletesAtMostOnce(t *testing.T) {
	h := NewHold()
	attach("Crate", h)
	runs := 0
	h.OnComplete = func(*engine.GameObject) { runs++ }

	h.OnHoldStart(nil)
	h.OnHoldComplete(nil)
	h.OnHoldStart(nil)
	h.OnHoldComplete(nil)

	assert.Equal(t, 1, runs)
	assert.True(t, h.Done())
}

func TestHoldDefaultDeactivates(t *testing.T) {
	h := NewHold()
	g := attach("Crate", h)

	h.OnHoldComplete(nil)

	assert.False(t, g.Active)
}

func TestHoldDrivesProgressAndAnimator(t *testing.T) {
	h := NewHold()
	g := attach("Crate", h)
	anim := NewParamAnimator()
	g.AddComponent(anim)
	spy := &progressSpy{}
	h.Progress = spy

	h.OnHoldStart(nil)
	assert.True(t, anim.Bool("HoldActive"))
	h.OnHoldProgress(0.4)
	h.OnHoldCancelled()

	assert.False(t, anim.Bool("HoldActive"))
	assert.Equal(t, []float32{0, 0.4}, spy.values)
	assert.Equal(t, 1, spy.hides)
	assert.False(t, h.Done())
}

func TestChestOpensOnceAndRewards(t *testing.T) {
	c := NewChest()
	c.RewardItem = "gold_key"
	g := attach("Chest", c)
	anim := NewParamAnimator()
	g.AddComponent(anim)
	actor, inv := newActor()

	assert.Equal(t, "Hold E to Interact", c.PromptText())
	c.OnHoldStart(actor)
	c.OnHoldComplete(actor)
	c.OnHoldComplete(actor)

	assert.True(t, c.Opened())
	assert.True(t, g.Active, "an opened chest stays in the world")
	assert.Empty(t, c.PromptText())
	assert.Equal(t, []string{"gold_key"}, inv.items)
	assert.Equal(t, 1, anim.TriggerCount("Open"))
}

func TestChestThroughTracker(t *testing.T) {
	c := NewChest()
	c.RewardItem = "gem"
	chest := attach("Chest", c)
	chest.Transform.Position.Z = -1

	scene := engine.NewScene("test")
	scene.AddGameObject(chest)
	actor, inv := newActor()

	space := &listSpace{scene: scene, handles: []engine.Handle{chest.Handle()}}
	in := &pressInput{}
	tr, err := interaction.NewTracker(interaction.DefaultConfig(), space, in,
		interaction.WithOrigin(originAt{}), interaction.WithActor(actor))
	assert.NoError(t, err)

	in.pressed, in.held = true, true
	tr.Step(0.1)
	in.pressed = false
	for range 20 {
		tr.Step(0.1)
	}

	assert.True(t, c.Opened())
	assert.Equal(t, []string{"gem"}, inv.items)
}
