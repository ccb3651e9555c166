package systems

import (
	"github.com/automoto/starlock/components"
	"github.com/automoto/starlock/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateObjects moves every enabled collider to its body's position.
func UpdateObjects(e *ecs.ECS) {
	space := GetSpace(e)
	tags.Shape.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		if !obj.InSpace() {
			return
		}
		syncObject(space, obj, components.Body.Get(entry))
	})
}

func syncObject(space *components.SpaceData, obj *components.ObjectData, body *components.BodyData) {
	obj.X, obj.Y = space.ToSpace(math.Vec2{X: body.Position.X - body.Radius, Y: body.Position.Y - body.Radius})
	obj.Update()
}

// setCollider adds or removes a shape's collider from the space.
func setCollider(e *ecs.ECS, entry *donburi.Entry, enabled bool) {
	obj := components.Object.Get(entry)
	if obj.Object == nil {
		return
	}
	switch {
	case enabled && !obj.InSpace():
		space := GetSpace(e)
		syncObject(space, obj, components.Body.Get(entry))
		space.Add(obj.Object)
	case !enabled && obj.InSpace():
		obj.Space.Remove(obj.Object)
	}
}
