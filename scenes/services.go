package scenes

import (
	"time"

	"github.com/automoto/starlock/arena"
	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/notify"
	"github.com/automoto/starlock/persistence"
	"github.com/charmbracelet/log"
)

// Services are the collaborators the scenes share. Progress and Highscores
// may be nil when storage is unavailable.
type Services struct {
	Progress   *persistence.Progress
	Highscores *persistence.Highscores
	Layout     arena.Layout
	Seed       int64 // Zero seeds every round from the clock

	rounds int64
}

// NextSeed returns the seed for the next round.
func (s *Services) NextSeed() int64 {
	s.rounds++
	if s.Seed == 0 {
		return time.Now().UnixNano()
	}
	return s.Seed + s.rounds - 1
}

// RecordVictory stores the stars and score of a won level.
func (s *Services) RecordVictory(ev notify.VictoryEvent) {
	stars := persistence.Stars(ev.Score, ev.Pairs, cfg.Match.PointsPerMatch)
	if s.Progress == nil {
		return
	}
	if err := s.Progress.CompleteLevel(ev.Level, ev.Score, stars); err != nil {
		log.Warn("could not save progress", "level", ev.Level, "err", err)
		return
	}
	log.Info("level complete", "level", ev.Level, "score", ev.Score, "stars", stars)
}

// RecordGameOver submits endless runs to the highscore table.
func (s *Services) RecordGameOver(ev notify.GameOverEvent) {
	if ev.Mode != cfg.GameModeEndless || s.Highscores == nil {
		return
	}
	best, rank, err := s.Highscores.Submit(ev.Score, ev.Elapsed)
	if err != nil {
		log.Warn("could not save highscore", "score", ev.Score, "err", err)
		return
	}
	if rank > 0 {
		log.Info("endless highscore", "score", ev.Score, "time", persistence.FormatTime(ev.Elapsed), "rank", rank, "best", best)
	}
}

// bestEndless returns the top endless score, 0 when there is none.
func (s *Services) bestEndless() int {
	if s.Highscores == nil {
		return 0
	}
	top, err := s.Highscores.Top()
	if err != nil || len(top) == 0 {
		return 0
	}
	return top[0].Score
}
