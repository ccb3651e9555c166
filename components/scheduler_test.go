package components

import "testing"

func TestSchedulerPopDueOrder(t *testing.T) {
	var s SchedulerData
	var fired []string
	s.Schedule(0.2, func() { fired = append(fired, "late") })
	s.Schedule(0.1, func() { fired = append(fired, "first") })
	s.Schedule(0.1, func() { fired = append(fired, "second") })
	s.Schedule(5, func() { fired = append(fired, "future") })

	for _, task := range s.PopDue(0.2) {
		task.Action()
	}

	want := []string{"first", "second", "late"}
	if len(fired) != len(want) {
		t.Fatalf("fired %v, want %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Errorf("fired[%d] = %q, want %q", i, fired[i], want[i])
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestSchedulerCancel(t *testing.T) {
	var s SchedulerData
	id := s.Schedule(1, func() { t.Error("cancelled task fired") })
	if id == 0 {
		t.Fatal("Schedule returned the zero ID")
	}
	if !s.Cancel(id) {
		t.Fatal("Cancel returned false for a queued task")
	}
	if s.Cancel(id) {
		t.Error("second Cancel returned true")
	}
	for _, task := range s.PopDue(10) {
		task.Action()
	}
}
