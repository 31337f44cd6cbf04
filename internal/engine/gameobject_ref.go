package engine

// ObjectRef is a by-name reference from one object to another, as written in
// scene files ("pivot": "DoorPivot"). It resolves against the referring
// object's descendants first, then its whole scene. Once resolved inside a
// scene the target is remembered by Handle, so a destroyed target stops
// resolving instead of being found again under the same name.
//
// Example:
//
//	type Door struct {
//	    engine.BaseComponent
//	    Pivot engine.ObjectRef
//	}
//
//	func (d *Door) Start() {
//	    if pivot := d.Pivot.Get(d.GetGameObject()); pivot != nil {
//	        // Use the pivot...
//	    }
//	}
type ObjectRef struct {
	Name string

	handle Handle
	scene  *Scene
}

// Ref returns a reference to name.
func Ref(name string) ObjectRef {
	return ObjectRef{Name: name}
}

// Get resolves the reference from the object holding it. It returns nil for an
// empty name, when nothing matches, or when the remembered target was removed.
func (r *ObjectRef) Get(from *GameObject) *GameObject {
	if r.Name == "" || from == nil {
		return nil
	}
	if !r.handle.IsNil() && r.scene != nil {
		return r.scene.Resolve(r.handle)
	}

	g := findDescendant(from, r.Name)
	if g == nil && from.Scene != nil {
		g = from.Scene.FindByName(r.Name)
	}
	if g != nil && g.Scene != nil {
		r.handle = g.Handle()
		r.scene = g.Scene
	}
	return g
}

// IsValid reports whether the reference names anything. It does not check that
// the target exists.
func (r ObjectRef) IsValid() bool {
	return r.Name != ""
}

// Set points the reference at g. Pass nil to clear it.
func (r *ObjectRef) Set(g *GameObject) {
	r.Clear()
	if g == nil {
		return
	}
	r.Name = g.Name
	if g.Scene != nil {
		r.handle = g.Handle()
		r.scene = g.Scene
	}
}

// Clear empties the reference.
func (r *ObjectRef) Clear() {
	*r = ObjectRef{}
}

func findDescendant(g *GameObject, name string) *GameObject {
	for _, c := range g.Children {
		if c.Name == name {
			return c
		}
		if found := findDescendant(c, name); found != nil {
			return found
		}
	}
	return nil
}
