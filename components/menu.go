package components

import "github.com/yohamta/donburi"

// MenuData stores the current state of the level select menu
type MenuData struct {
	SelectedLevel int   // 1-based
	Unlocked      int   // Highest playable level
	Stars         []int // Best stars per level, index 0 is level 1
	BestEndless   int
	Armed         bool // Set once keys held from the previous scene are released
}

// Menu is the component type for level select state
var Menu = donburi.NewComponentType[MenuData]()
