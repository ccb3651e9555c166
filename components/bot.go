package components

import "github.com/yohamta/donburi"

// BotData drives the auto-tapper used by headless simulations.
type BotData struct {
	Interval float64 // Seconds between taps
	Timer    float64
	Taps     int // Taps that launched a shape
	Misses   int // Taps that were refused
}

var Bot = donburi.NewComponentType[BotData]()
