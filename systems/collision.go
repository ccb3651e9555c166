package systems

import (
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// wallRestitution is the fraction of normal speed kept after a wall bounce.
const wallRestitution = 0.5

// UpdateCollisions keeps contained shapes inside the container wall, ring
// shapes between the container wall and the outer edge, and pushes
// overlapping shapes apart.
func UpdateCollisions(e *ecs.ECS) {
	container := GetContainer(e)
	ring := GetOuterRing(e)

	tags.Shape.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry)
		if !body.Dynamic {
			return
		}
		switch components.Shape.Get(entry).State {
		case cfg.Inside:
			confineOutward(body, container.Radius-body.Radius)
		case cfg.Outside:
			confineOutward(body, ring.OuterRadius-body.Radius)
			confineInward(body, container.Radius+body.Radius)
		}
	})

	UpdateObjects(e)
	separateShapes(e)
}

// confineOutward keeps the body within maxDist of the center.
func confineOutward(body *components.BodyData, maxDist float64) {
	dist := body.Position.Magnitude()
	if dist <= maxDist || dist == 0 {
		return
	}
	normal := body.Position.DivScalar(dist)
	body.Position = normal.MulScalar(maxDist)
	if vn := body.Velocity.Dot(&normal); vn > 0 {
		body.Velocity = body.Velocity.Sub(normal.MulScalar((1 + wallRestitution) * vn))
	}
}

// confineInward keeps the body at least minDist from the center.
func confineInward(body *components.BodyData, minDist float64) {
	dist := body.Position.Magnitude()
	if dist >= minDist {
		return
	}
	normal := math.Vec2{X: 1}
	if dist > 0 {
		normal = body.Position.DivScalar(dist)
	}
	body.Position = normal.MulScalar(minDist)
	if vn := body.Velocity.Dot(&normal); vn < 0 {
		body.Velocity = body.Velocity.Sub(normal.MulScalar((1 + wallRestitution) * vn))
	}
}

// separateShapes resolves circle overlaps between dynamic shapes found by
// the space's broad phase.
func separateShapes(e *ecs.ECS) {
	tags.Shape.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !obj.InSpace() {
			return
		}
		check := obj.Check(0, 0, tags.ResolvShape)
		if check == nil {
			return
		}
		self := entry.Entity()
		body := components.Body.Get(entry)
		for _, other := range check.Objects {
			otherEntity, ok := other.Data.(donburi.Entity)
			if !ok || otherEntity <= self {
				continue
			}
			otherEntry := shapeEntry(e, otherEntity)
			if otherEntry == nil {
				continue
			}
			resolveOverlap(body, components.Body.Get(otherEntry))
		}
	})
}

func resolveOverlap(a, b *components.BodyData) {
	if !a.Dynamic || !b.Dynamic {
		return
	}
	delta := b.Position.Sub(a.Position)
	dist := delta.Magnitude()
	minDist := a.Radius + b.Radius
	if dist >= minDist {
		return
	}
	normal := math.Vec2{X: 1}
	if dist > 0 {
		normal = delta.DivScalar(dist)
	}
	push := normal.MulScalar((minDist - dist) / 2)
	a.Position = a.Position.Sub(push)
	b.Position = b.Position.Add(push)

	// Exchange the velocity components along the contact normal
	rel := b.Velocity.Sub(a.Velocity).Dot(&normal)
	if rel < 0 {
		impulse := normal.MulScalar(rel)
		a.Velocity = a.Velocity.Add(impulse)
		b.Velocity = b.Velocity.Sub(impulse)
	}
}
