package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SpaceData wraps the resolv space. Resolv works in non-negative cell
// coordinates, so local positions are scaled by Scale and shifted by Extent.
type SpaceData struct {
	*resolv.Space
	Extent float64 // Half-size of the simulated area in world units
	Scale  float64 // Space units per world unit
}

var Space = donburi.NewComponentType[SpaceData]()

// ToSpace converts a local position to space coordinates.
func (s *SpaceData) ToSpace(p math.Vec2) (float64, float64) {
	return (p.X + s.Extent) * s.Scale, (p.Y + s.Extent) * s.Scale
}

// FromSpace converts space coordinates back to a local position.
func (s *SpaceData) FromSpace(x, y float64) math.Vec2 {
	return math.Vec2{X: x/s.Scale - s.Extent, Y: y/s.Scale - s.Extent}
}
