package components

import (
	"github.com/automoto/starlock/signal"
	"github.com/yohamta/donburi"
)

// MatchFound describes one matched pair.
type MatchFound struct {
	First, Second donburi.Entity
	Points        int
}

// MatchEvents are the synchronous notifications of the match engine.
type MatchEvents struct {
	MatchFound   signal.Signal[MatchFound]
	ScoreChanged signal.Signal[int]
}

// MatchData is the match engine state. This is a singleton component.
type MatchData struct {
	Score          int
	PointsPerMatch int
	CheckDelay     float64
	Matches        int

	tracked      EntitySet
	pendingCheck uint64 // Scheduler task ID, 0 when no check is pending

	Events *MatchEvents
}

var Match = donburi.NewComponentType[MatchData]()

// NewMatch builds the match engine state.
func NewMatch(pointsPerMatch int, checkDelay float64) MatchData {
	return MatchData{
		PointsPerMatch: pointsPerMatch,
		CheckDelay:     checkDelay,
		Events:         &MatchEvents{},
	}
}

// Track starts tracking an inside shape. Tracking twice is a no-op.
func (m *MatchData) Track(e donburi.Entity) bool {
	return m.tracked.Add(e)
}

// Untrack stops tracking a shape.
func (m *MatchData) Untrack(e donburi.Entity) bool {
	return m.tracked.Remove(e)
}

// IsTracked reports whether e is tracked.
func (m *MatchData) IsTracked(e donburi.Entity) bool {
	return m.tracked.Contains(e)
}

// Tracked returns the tracked shapes in insertion order.
func (m *MatchData) Tracked() []donburi.Entity {
	return m.tracked.Snapshot()
}

// Purge drops tracked shapes for which keep returns false.
func (m *MatchData) Purge(keep func(donburi.Entity) bool) {
	m.tracked.Purge(keep)
}

// TrackedCount returns the raw number of tracked shapes.
func (m *MatchData) TrackedCount() int {
	return m.tracked.Len()
}

// AddPoints adds to the score and returns the new total.
func (m *MatchData) AddPoints(points int) int {
	m.Score += points
	m.Matches++
	return m.Score
}

// CheckPending reports whether a match check is scheduled.
func (m *MatchData) CheckPending() bool {
	return m.pendingCheck != 0
}

// SetPendingCheck records the scheduled check, 0 to clear it.
func (m *MatchData) SetPendingCheck(id uint64) {
	m.pendingCheck = id
}

// PendingCheck returns the scheduled check task ID.
func (m *MatchData) PendingCheck() uint64 {
	return m.pendingCheck
}

// ResetScore sets the score back to zero.
func (m *MatchData) ResetScore() {
	m.Score = 0
	m.Matches = 0
	m.Events.ScoreChanged.Emit(0)
}

// Clear stops tracking every shape.
func (m *MatchData) Clear() {
	m.tracked.Clear()
}
