package systems

import "github.com/yohamta/donburi/ecs"

// UpdateRotation advances the shared pivot by one step.
func UpdateRotation(e *ecs.ECS) {
	GetRotation(e).Tick(GetClock(e).Delta)
}
