package config

import "github.com/yohamta/donburi/ecs"

// Default is the only render layer the game uses.
const Default ecs.LayerID = ecs.LayerDefault
