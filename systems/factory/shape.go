package factory

import (
	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateShape creates an Outside shape with a dynamic body at a local
// position and adds its collider to the space.
func CreateShape(ecs *ecs.ECS, space *components.SpaceData, kind cfg.ShapeKind, color cfg.ShapeColor, pos math.Vec2) *donburi.Entry {
	shape := archetypes.Shape.Spawn(ecs)

	data := &components.ShapeData{}
	data.Initialize(kind, color)
	components.Shape.Set(shape, data)

	radius := cfg.Shape.Radius
	components.Body.Set(shape, &components.BodyData{
		Position:   pos,
		Mass:       cfg.Shape.Mass,
		LinearDrag: cfg.Shape.LinearDrag,
		Radius:     radius,
		Dynamic:    true,
	})

	x, y := space.ToSpace(math.Vec2{X: pos.X - radius, Y: pos.Y - radius})
	size := 2 * radius * space.Scale
	obj := resolv.NewObject(x, y, size, size, tags.ResolvShape)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = shape.Entity()
	space.Add(obj)
	components.Object.Set(shape, &components.ObjectData{Object: obj})

	components.Transition.Set(shape, &components.TransitionData{})
	return shape
}

// CreateScorePopup creates a floating score label at a world position.
func CreateScorePopup(ecs *ecs.ECS, pos math.Vec2, points int, color cfg.ShapeColor) *donburi.Entry {
	popup := archetypes.ScorePopup.Spawn(ecs)
	components.ScorePopup.Set(popup, &components.ScorePopupData{
		Position: pos,
		Points:   points,
		Color:    color.RGBA(),
		Lifetime: cfg.HUD.ScorePopupTime,
	})
	return popup
}
