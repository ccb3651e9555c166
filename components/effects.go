package components

import (
	"image/color"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  float64 // seconds
	Elapsed   float64 // seconds elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// ScorePopupData is a floating "+points" label at a match position.
type ScorePopupData struct {
	Position math.Vec2 // World position
	Points   int
	Color    color.RGBA
	Age      float64
	Lifetime float64
}

var ScorePopup = donburi.NewComponentType[ScorePopupData]()
