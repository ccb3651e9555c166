// Package notify holds the presentation notifications published by the
// gameplay systems. Publishing only queues an event; subscribers run when the
// host drains the queue with events.ProcessAllEvents, so they never run
// inside a gameplay system.
package notify

import (
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

type ScoreChangedEvent struct {
	Score int
}

type MatchFoundEvent struct {
	First, Second donburi.Entity
	Points        int
	Midpoint      math.Vec2 // Local position halfway between the pair
	Color         cfg.ShapeColor
}

type ShapeTappedEvent struct {
	Shape    donburi.Entity
	Position math.Vec2
}

type ShapeEnteredEvent struct {
	Shape donburi.Entity
}

type ShapeMatchedEvent struct {
	Shape donburi.Entity
}

type GameOverEvent struct {
	Mode    cfg.GameModeID
	Level   int
	Score   int
	Elapsed float64
}

type VictoryEvent struct {
	Level        int
	Pairs        int
	Score        int
	HasNextLevel bool
}

// SummaryEvent fires when the end-of-round summary should be shown.
type SummaryEvent struct {
	Victory bool
	Score   int
}

var (
	ScoreChanged = events.NewEventType[ScoreChangedEvent]()
	MatchFound   = events.NewEventType[MatchFoundEvent]()
	ShapeTapped  = events.NewEventType[ShapeTappedEvent]()
	ShapeEntered = events.NewEventType[ShapeEnteredEvent]()
	ShapeMatched = events.NewEventType[ShapeMatchedEvent]()
	GameOver     = events.NewEventType[GameOverEvent]()
	Victory      = events.NewEventType[VictoryEvent]()
	Summary      = events.NewEventType[SummaryEvent]()
)
