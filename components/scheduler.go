package components

import (
	"sort"

	"github.com/yohamta/donburi"
)

// ScheduledTask is a deferred callback.
type ScheduledTask struct {
	ID     uint64
	At     float64 // Clock time in seconds
	Action func()
}

// SchedulerData is a queue of deferred callbacks fired by clock time. This is
// a singleton component.
type SchedulerData struct {
	tasks  []ScheduledTask
	nextID uint64
}

var Scheduler = donburi.NewComponentType[SchedulerData]()

// Schedule queues action to fire at time at and returns its non-zero ID.
func (s *SchedulerData) Schedule(at float64, action func()) uint64 {
	s.nextID++
	s.tasks = append(s.tasks, ScheduledTask{ID: s.nextID, At: at, Action: action})
	return s.nextID
}

// Cancel removes a queued task and reports whether it was still queued.
func (s *SchedulerData) Cancel(id uint64) bool {
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// PopDue removes and returns every task due at or before now, ordered by
// fire time and then by scheduling order.
func (s *SchedulerData) PopDue(now float64) []ScheduledTask {
	var due []ScheduledTask
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if t.At <= now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	sort.SliceStable(due, func(i, j int) bool {
		if due[i].At != due[j].At {
			return due[i].At < due[j].At
		}
		return due[i].ID < due[j].ID
	})
	return due
}

// Len returns the number of queued tasks.
func (s *SchedulerData) Len() int {
	return len(s.tasks)
}

// Clear drops every queued task.
func (s *SchedulerData) Clear() {
	s.tasks = nil
}
