package config

import "image/color"

// ShapeKind is the geometric kind of a shape.
type ShapeKind int

const (
	Circle ShapeKind = iota
	Square
	Triangle
	Diamond
	Hexagon
	ShapeKindCount // Must be last - used for random selection
)

func (k ShapeKind) String() string {
	switch k {
	case Circle:
		return "Circle"
	case Square:
		return "Square"
	case Triangle:
		return "Triangle"
	case Diamond:
		return "Diamond"
	case Hexagon:
		return "Hexagon"
	}
	return "Unknown"
}

// ShapeColor is the color identity of a shape.
type ShapeColor int

const (
	Red ShapeColor = iota
	Blue
	Green
	Yellow
	Purple
	ShapeColorCount // Must be last - used for random selection
)

func (c ShapeColor) String() string {
	switch c {
	case Red:
		return "Red"
	case Blue:
		return "Blue"
	case Green:
		return "Green"
	case Yellow:
		return "Yellow"
	case Purple:
		return "Purple"
	}
	return "Unknown"
}

// RGBA returns the render color for a shape color.
func (c ShapeColor) RGBA() color.RGBA {
	switch c {
	case Red:
		return color.RGBA{R: 255, G: 107, B: 107, A: 255}
	case Blue:
		return color.RGBA{R: 78, G: 205, B: 196, A: 255}
	case Green:
		return color.RGBA{R: 168, G: 230, B: 207, A: 255}
	case Yellow:
		return color.RGBA{R: 255, G: 230, B: 109, A: 255}
	case Purple:
		return color.RGBA{R: 196, G: 77, B: 255, A: 255}
	}
	return White
}

// LifecycleState is where a shape is in its Outside->Matched lifecycle.
type LifecycleState int

const (
	Outside LifecycleState = iota
	MovingInside
	Inside
	Matched
)

func (s LifecycleState) String() string {
	switch s {
	case Outside:
		return "Outside"
	case MovingInside:
		return "MovingInside"
	case Inside:
		return "Inside"
	case Matched:
		return "Matched"
	}
	return "Unknown"
}

// HasCollider reports whether a shape in this state takes part in physics.
func (s LifecycleState) HasCollider() bool {
	return s == Outside || s == Inside
}

// GameModeID selects between the level ladder and endless play.
type GameModeID int

const (
	GameModeNone GameModeID = iota
	GameModeLevels
	GameModeEndless
)

func (m GameModeID) String() string {
	switch m {
	case GameModeLevels:
		return "levels"
	case GameModeEndless:
		return "endless"
	}
	return "none"
}

// RoundStateID is the round controller state machine.
type RoundStateID int

const (
	RoundPlaying RoundStateID = iota
	RoundGameOver
	RoundVictory
)
