package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData maps the unrotated world frame onto the screen. Position is the
// screen point the world origin is drawn at.
type CameraData struct {
	Position      math.Vec2
	PixelsPerUnit float64
	ShakeOffset   math.Vec2
}

var Camera = donburi.NewComponentType[CameraData]()

// ScreenToWorld converts a screen point to world units.
func (c *CameraData) ScreenToWorld(x, y float64) math.Vec2 {
	return math.Vec2{
		X: (x - c.Position.X) / c.PixelsPerUnit,
		// Screen Y grows downward, world Y grows upward
		Y: -(y - c.Position.Y) / c.PixelsPerUnit,
	}
}

// WorldToScreen converts a world point to screen pixels, including shake.
func (c *CameraData) WorldToScreen(p math.Vec2) (float64, float64) {
	return c.Position.X + c.ShakeOffset.X + p.X*c.PixelsPerUnit,
		c.Position.Y + c.ShakeOffset.Y - p.Y*c.PixelsPerUnit
}
