package factory

import (
	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera centers the world origin on the screen.
func CreateCamera(ecs *ecs.ECS, pixelsPerUnit float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{
			X: float64(cfg.C.Width) / 2,
			Y: float64(cfg.C.Height) / 2,
		},
		PixelsPerUnit: pixelsPerUnit,
	})
	return camera
}
