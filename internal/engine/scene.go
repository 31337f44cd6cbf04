package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	World       WorldAccess
	uidMap      map[uint64]*GameObject
	handles     handleTable
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

// AddGameObject registers g and its whole subtree with the scene, issuing
// a fresh handle to each object.
func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	if g.Scene == s {
		return
	}
	g.Scene = s
	g.handle = s.handles.acquire(g)
	s.uidMap[g.UID] = g
	s.GameObjects = append(s.GameObjects, g)
	for _, child := range g.Children {
		s.AddGameObject(child)
	}
}

// RemoveGameObject removes g and its subtree. Handles to removed objects stop
// resolving immediately.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	if g.Scene != s {
		return
	}
	s.handles.release(g.handle)
	delete(s.uidMap, g.UID)
	g.handle = NilHandle
	g.Scene = nil
}

// Resolve returns the object behind h, or nil if it has been removed.
func (s *Scene) Resolve(h Handle) *GameObject {
	if s == nil {
		return nil
	}
	return s.handles.get(h)
}

// ResolveActive is Resolve restricted to objects active in the hierarchy.
func (s *Scene) ResolveActive(h Handle) *GameObject {
	g := s.Resolve(h)
	if g == nil || !g.ActiveInHierarchy() {
		return nil
	}
	return g
}

func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	// Components may destroy objects mid-update; iterate over a snapshot.
	objects := append([]*GameObject(nil), s.GameObjects...)
	for _, g := range objects {
		if g.Scene != s {
			continue
		}
		g.Update(deltaTime)
	}
}
