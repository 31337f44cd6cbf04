package interactables

import (
	"interaction3d/internal/engine"
	"interaction3d/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// listSpace returns a fixed set of scene handles.
type listSpace struct {
	scene   *engine.Scene
	handles []engine.Handle
}

func (s *listSpace) Query(interaction.Query) []engine.Handle {
	return s.handles
}

func (s *listSpace) Resolve(h engine.Handle) (interaction.Target, bool) {
	g := s.scene.ResolveActive(h)
	i, ok := engine.FindComponent[interaction.Interactable](g)
	if !ok {
		return interaction.Target{}, false
	}
	return interaction.Target{Handle: h, Interactable: i}, true
}

type pressInput struct {
	pressed, held, released bool
}

func (p *pressInput) Pressed(string) bool  { return p.pressed }
func (p *pressInput) Held(string) bool     { return p.held }
func (p *pressInput) Released(string) bool { return p.released }

type originAt struct{}

func (originAt) Position() rl.Vector3 { return rl.Vector3{} }
func (originAt) Forward() rl.Vector3  { return rl.Vector3{Z: -1} }
