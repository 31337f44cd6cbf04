package world

import (
	"interaction3d/internal/components"
	"interaction3d/internal/engine"
	"interaction3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// PlayerCollision keeps an FPS-controlled object on the floor and out of box
// colliders. The body is approximated by spheres at knee and chest height and
// is only pushed horizontally, so the player slides along walls.
type PlayerCollision struct {
	engine.BaseComponent
	BodyRadius float32
	FloorY     float32
}

func NewPlayerCollision() *PlayerCollision {
	return &PlayerCollision{BodyRadius: 0.35}
}

func (p *PlayerCollision) Update(deltaTime float32) {
	g := p.GetGameObject()
	if g == nil || g.Scene == nil || g.Scene.World == nil {
		return
	}
	p.Resolve(g.Scene.World.GetCollidableObjects())
}

// Resolve pushes the owner out of every box in objects.
func (p *PlayerCollision) Resolve(objects []*engine.GameObject) {
	g := p.GetGameObject()
	if g == nil {
		return
	}
	if g.Transform.Position.Y < p.FloorY {
		g.Transform.Position.Y = p.FloorY
	}

	eye := float32(1.7)
	if fps := engine.GetComponent[*components.FPSController](g); fps != nil {
		eye = fps.EyeHeight
	}
	heights := [2]float32{p.BodyRadius, eye - p.BodyRadius}

	for _, obj := range objects {
		if obj == g || !obj.ActiveInHierarchy() {
			continue
		}
		box := engine.GetComponent[*components.BoxCollider](obj)
		if box == nil {
			continue
		}
		obb := physics.BoxOBB(box)
		for _, h := range heights {
			center := g.Transform.Position
			center.Y += h
			closest := physics.ClosestPointOnOBB(obb, center)
			delta := rl.Vector3Subtract(center, closest)
			delta.Y = 0
			dist := rl.Vector3Length(delta)
			if dist >= p.BodyRadius || dist == 0 {
				continue
			}
			push := rl.Vector3Scale(delta, (p.BodyRadius-dist)/dist)
			g.Transform.Position = rl.Vector3Add(g.Transform.Position, push)
		}
	}
}
