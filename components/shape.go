package components

import (
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
)

// ShapeData is the identity and lifecycle state of one shape.
type ShapeData struct {
	Kind  cfg.ShapeKind
	Color cfg.ShapeColor
	State cfg.LifecycleState
	Scale float64 // Render scale, animated during the Matched scale-out
	Spin  float64 // Render rotation in degrees
}

var Shape = donburi.NewComponentType[ShapeData]()

// Initialize sets the identity and resets the shape to Outside.
func (s *ShapeData) Initialize(kind cfg.ShapeKind, color cfg.ShapeColor) {
	s.Kind = kind
	s.Color = color
	s.State = cfg.Outside
	s.Scale = 1
	s.Spin = 0
}

// MatchesWith reports whether both shapes have the same kind and color.
func (s *ShapeData) MatchesWith(other *ShapeData) bool {
	if s == nil || other == nil {
		return false
	}
	return s.Kind == other.Kind && s.Color == other.Color
}
