package engine

import "fmt"

// Handle is a generation-checked reference to a GameObject slot in a Scene.
// A handle stops resolving once the object is removed from the scene, even if
// the slot is later reused by another object.
type Handle struct {
	Index      uint32
	Generation uint32
}

// NilHandle never resolves.
var NilHandle = Handle{}

// IsNil reports whether h was never issued by a scene.
func (h Handle) IsNil() bool {
	return h.Generation == 0
}

func (h Handle) String() string {
	if h.IsNil() {
		return "handle(nil)"
	}
	return fmt.Sprintf("handle(%d:%d)", h.Index, h.Generation)
}

type slot struct {
	obj *GameObject
	gen uint32
}

// handleTable hands out slots and bumps the generation on release.
type handleTable struct {
	slots []slot
	free  []uint32
}

func (t *handleTable) acquire(g *GameObject) Handle {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.slots))
		t.slots = append(t.slots, slot{})
	}
	s := &t.slots[idx]
	s.gen++
	s.obj = g
	return Handle{Index: idx, Generation: s.gen}
}

func (t *handleTable) release(h Handle) {
	if !t.valid(h) {
		return
	}
	s := &t.slots[h.Index]
	s.obj = nil
	s.gen++
	t.free = append(t.free, h.Index)
}

func (t *handleTable) valid(h Handle) bool {
	if h.IsNil() || int(h.Index) >= len(t.slots) {
		return false
	}
	s := t.slots[h.Index]
	return s.gen == h.Generation && s.obj != nil
}

func (t *handleTable) get(h Handle) *GameObject {
	if !t.valid(h) {
		return nil
	}
	return t.slots[h.Index].obj
}
