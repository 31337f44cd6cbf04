package interactables

import "interaction3d/internal/engine"

// ItemHolder is the actor-side inventory consulted by pickups and locks.
type ItemHolder interface {
	AddItem(id string)
	HasItem(id string) bool
}

// holderOf finds the ItemHolder component on actor.
func holderOf(actor *engine.GameObject) (ItemHolder, bool) {
	return engine.FindComponent[ItemHolder](actor)
}

// HasItem reports whether actor carries an inventory holding id.
func HasItem(actor *engine.GameObject, id string) bool {
	inv, ok := holderOf(actor)
	return ok && inv.HasItem(id)
}
