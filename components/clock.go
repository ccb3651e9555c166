package components

import (
	"math/rand"

	"github.com/yohamta/donburi"
)

// ClockData is simulation time. It only advances while gameplay runs.
type ClockData struct {
	Now   float64 // Seconds since the round started
	Delta float64 // Seconds per fixed step
	Frame int
}

var Clock = donburi.NewComponentType[ClockData]()

// RandomData is the round's random source.
type RandomData struct {
	*rand.Rand
}

var Random = donburi.NewComponentType[RandomData]()
