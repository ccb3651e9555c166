package signal

import "testing"

func TestEmitCallsHandlersInOrder(t *testing.T) {
	var s Signal[int]
	var got []int
	s.Subscribe(func(v int) { got = append(got, v*10) })
	s.Subscribe(func(v int) { got = append(got, v*100) })

	s.Emit(2)

	if len(got) != 2 || got[0] != 20 || got[1] != 200 {
		t.Errorf("Emit(2) called handlers with %v, want [20 200]", got)
	}
}

func TestSubscriptionClose(t *testing.T) {
	var s Signal[string]
	calls := 0
	sub := s.Subscribe(func(string) { calls++ })

	s.Emit("a")
	sub.Close()
	sub.Close()
	s.Emit("b")

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", s.Len())
	}
	if !sub.Closed() {
		t.Error("Closed() = false after Close")
	}
}

func TestCloseDuringEmitSkipsLaterHandler(t *testing.T) {
	var s Signal[int]
	var second *Subscription
	secondCalls := 0
	s.Subscribe(func(int) { second.Close() })
	second = s.Subscribe(func(int) { secondCalls++ })

	s.Emit(1)

	if secondCalls != 0 {
		t.Errorf("closed handler called %d times, want 0", secondCalls)
	}
}

func TestSubscribeDuringEmitWaitsForNextEmit(t *testing.T) {
	var s Signal[int]
	lateCalls := 0
	s.Subscribe(func(int) {
		s.Subscribe(func(int) { lateCalls++ })
	})

	s.Emit(1)
	if lateCalls != 0 {
		t.Fatalf("late handler called during the emit that added it")
	}
	s.Emit(2)
	if lateCalls != 1 {
		t.Errorf("late handler called %d times after second Emit, want 1", lateCalls)
	}
}

func TestScopeClosesEverything(t *testing.T) {
	var a Signal[int]
	var b Signal[bool]
	var scope Scope
	calls := 0
	scope.Add(
		a.Subscribe(func(int) { calls++ }),
		b.Subscribe(func(bool) { calls++ }),
	)

	scope.Close()
	a.Emit(1)
	b.Emit(true)

	if calls != 0 {
		t.Errorf("handlers called %d times after scope Close, want 0", calls)
	}

	late := a.Subscribe(func(int) { calls++ })
	scope.Add(late)
	if !late.Closed() {
		t.Error("subscription added to a closed scope was left open")
	}
}
