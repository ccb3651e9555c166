package systems

import (
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateClock advances simulation time by one fixed step.
func UpdateClock(e *ecs.ECS) {
	clock := GetClock(e)
	if clock.Delta <= 0 {
		clock.Delta = 1 / float64(cfg.C.TPS)
	}
	clock.Frame++
	clock.Now += clock.Delta

	round := GetRound(e)
	if !round.IsTerminal() {
		round.Elapsed += clock.Delta
	}
}

// Schedule runs action after delay seconds of simulation time and returns
// the task ID.
func Schedule(e *ecs.ECS, delay float64, action func()) uint64 {
	clock := GetClock(e)
	return GetScheduler(e).Schedule(clock.Now+delay, action)
}

// CancelScheduled drops a scheduled task.
func CancelScheduled(e *ecs.ECS, id uint64) bool {
	return GetScheduler(e).Cancel(id)
}

// UpdateScheduler fires every task that is due.
func UpdateScheduler(e *ecs.ECS) {
	now := GetClock(e).Now
	for _, task := range GetScheduler(e).PopDue(now) {
		task.Action()
	}
}
