package tags

import "github.com/yohamta/donburi"

var (
	Shape      = donburi.NewTag().SetName("Shape")
	ScorePopup = donburi.NewTag().SetName("ScorePopup")
)

// Resolv tags for collision queries
const (
	ResolvShape    = "shape"
	ResolvTapQuery = "tapquery"
)
