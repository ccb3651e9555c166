package factory

import (
	"math"

	"github.com/automoto/starlock/archetypes"
	"github.com/automoto/starlock/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const spaceCellSize = 16

// CreateSpace creates a resolv space covering a square of half-size extent
// world units, at scale space units per world unit.
func CreateSpace(ecs *ecs.ECS, extent, scale float64) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	size := int(math.Ceil(2 * extent * scale))
	components.Space.Set(space, &components.SpaceData{
		Space:  resolv.NewSpace(size, size, spaceCellSize, spaceCellSize),
		Extent: extent,
		Scale:  scale,
	})
	return space
}
