package components

import "github.com/yohamta/donburi"

// EndlessData paces endless mode. This is a singleton component.
type EndlessData struct {
	SpawnTimer      float64
	SpawnInterval   float64
	SpeedTimer      float64
	DifficultyLevel int
	Spawned         int
}

var Endless = donburi.NewComponentType[EndlessData]()
