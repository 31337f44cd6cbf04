package interactables

import (
	"interaction3d/internal/engine"
)

type bag struct {
	engine.BaseComponent
	items []string
}

func (b *bag) AddItem(id string) {
	if !b.HasItem(id) {
		b.items = append(b.items, id)
	}
}

func (b *bag) HasItem(id string) bool {
	for _, it := range b.items {
		if it == id {
			return true
		}
	}
	return false
}

func newActor(items ...string) (*engine.GameObject, *bag) {
	g := engine.NewGameObject("Player")
	b := &bag{items: items}
	g.AddComponent(b)
	return g, b
}

func attach(name string, c engine.Component) *engine.GameObject {
	g := engine.NewGameObject(name)
	g.AddComponent(c)
	return g
}

type progressSpy struct {
	values []float32
	hides  int
}

func (p *progressSpy) SetProgress(v float32) { p.values = append(p.values, v) }
func (p *progressSpy) Hide()                 { p.hides++ }
