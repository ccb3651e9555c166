package components

import (
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
)

// RoundData is the round controller state. This is a singleton component.
type RoundData struct {
	State        cfg.RoundStateID
	Mode         cfg.GameModeID
	Level        int
	Pairs        int
	Elapsed      float64 // Seconds of unpaused play
	FinalScore   int
	HasNextLevel bool
	ShowSummary  bool // Set once the end-of-round delay has passed
}

var Round = donburi.NewComponentType[RoundData]()

func (r *RoundData) IsGameOver() bool {
	return r.State == cfg.RoundGameOver
}

func (r *RoundData) IsVictory() bool {
	return r.State == cfg.RoundVictory
}

// IsTerminal reports whether the round has ended either way.
func (r *RoundData) IsTerminal() bool {
	return r.IsGameOver() || r.IsVictory()
}
