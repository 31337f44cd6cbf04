package interactables

import (
	"go.uber.org/zap"

	"interaction3d/internal/engine"
	"interaction3d/internal/interaction"
)

// InstantMode selects what an Instant does besides firing its events.
type InstantMode int

const (
	// ModePickup adds ItemID to the actor's inventory and removes the object.
	ModePickup InstantMode = iota
	// ModeButton fires the animator trigger.
	ModeButton
	// ModeCustom only fires events and the script.
	ModeCustom
)

func (m InstantMode) String() string {
	switch m {
	case ModePickup:
		return "pickup"
	case ModeButton:
		return "button"
	case ModeCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Instant completes its effect in a single press.
type Instant struct {
	Base

	Mode InstantMode

	// ItemID is granted on pickup. Empty grants nothing.
	ItemID string
	// DestroyOnPickup removes the object through its world instead of
	// deactivating it.
	DestroyOnPickup bool

	Animator Animator
	Trigger  string

	Script *ScriptEffect

	Interacted          engine.Event
	InteractedWithActor engine.EventWithArg[*engine.GameObject]
}

func NewInstant(mode InstantMode) *Instant {
	return &Instant{
		Base:    Base{Label: "Interact"},
		Mode:    mode,
		Trigger: "Press",
	}
}

func (i *Instant) Capability() interaction.Capability {
	return interaction.CapabilityInstant
}

func (i *Instant) Interact(actor *engine.GameObject) {
	if !i.alive() {
		return
	}
	log := i.logger()
	log.Debug("interact", zap.Stringer("mode", i.Mode), zap.String("actor", actorName(actor)))

	// Events fire before a pickup removes the object so listeners still see it.
	switch i.Mode {
	case ModePickup:
		i.grant(actor, log)
	case ModeButton:
		if a := animatorOn(i.Animator, i.GetGameObject()); a != nil && i.Trigger != "" {
			a.SetTrigger(i.Trigger)
		}
	}

	i.Script.runLogged("interact", i.GetGameObject(), actor, false, log)
	i.Interacted.Invoke()
	i.InteractedWithActor.Invoke(actor)

	if i.Mode == ModePickup {
		if i.DestroyOnPickup {
			i.destroy()
		} else {
			i.deactivate()
		}
	}
}

func (i *Instant) grant(actor *engine.GameObject, log *zap.Logger) {
	if i.ItemID == "" {
		return
	}
	inv, ok := holderOf(actor)
	if !ok {
		log.Warn("actor has no inventory", zap.String("actor", actorName(actor)), zap.String("item", i.ItemID))
		return
	}
	inv.AddItem(i.ItemID)
	log.Info("item picked up", zap.String("item", i.ItemID), zap.String("actor", actorName(actor)))
}

// Key is a pickup that is only consumed by an actor that can carry it.
type Key struct {
	Base

	ItemID string

	PickedUp engine.EventWithArg[string]
}

func NewKey(itemID string) *Key {
	return &Key{
		Base:   Base{Label: "Pick up"},
		ItemID: itemID,
	}
}

func (k *Key) Interact(actor *engine.GameObject) {
	if !k.alive() {
		return
	}
	inv, ok := holderOf(actor)
	if !ok {
		k.logger().Debug("key ignored, actor has no inventory", zap.String("actor", actorName(actor)))
		return
	}
	inv.AddItem(k.ItemID)
	k.logger().Info("key picked up", zap.String("item", k.ItemID), zap.String("actor", actorName(actor)))
	k.PickedUp.Invoke(k.ItemID)
	k.deactivate()
}
