package engine

// WorldAccess is the part of the owning world that components may call back
// into. The scene holds it so components reach it without importing world.
type WorldAccess interface {
	// GetCollidableObjects lists objects that carry a collider.
	GetCollidableObjects() []*GameObject
	// Destroy removes g and its subtree, invalidating their handles.
	Destroy(g *GameObject)
}
