package components

import "github.com/yohamta/donburi"

// TapRouterData is the tap routing configuration. This is a singleton
// component.
type TapRouterData struct {
	Enabled bool
	Radius  float64
}

var TapRouter = donburi.NewComponentType[TapRouterData]()

func (t *TapRouterData) SetInputEnabled(enabled bool) {
	t.Enabled = enabled
}

// SetTapRadius changes the pick radius. Non-positive values are ignored.
func (t *TapRouterData) SetTapRadius(r float64) {
	if r > 0 {
		t.Radius = r
	}
}
