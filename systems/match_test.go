package systems

import (
	"testing"

	"github.com/automoto/starlock/components"
	cfg "github.com/automoto/starlock/config"
	"github.com/yohamta/donburi"
)

func TestMatchEngineClearsFirstMatchingPair(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)

	a := SpawnShape(e, cfg.Circle, cfg.Red, vec(3, 0)).Entity()
	b := SpawnShape(e, cfg.Square, cfg.Blue, vec(0, 3)).Entity()
	c := SpawnShape(e, cfg.Circle, cfg.Red, vec(-3, 0)).Entity()

	var found []components.MatchFound
	GetMatch(e).Events.MatchFound.Subscribe(func(m components.MatchFound) {
		found = append(found, m)
	})

	for _, p := range []struct{ x, y float64 }{{3, 0}, {0, 3}, {-3, 0}} {
		if !HandleLocalTap(e, vec(p.x, p.y)) {
			t.Fatalf("tap at (%v, %v) was refused", p.x, p.y)
		}
	}

	advance(e, cfg.Shape.MoveInsideDuration+cfg.Match.CheckDelay+cfg.Shape.MatchedScaleDuration+0.5)

	match := GetMatch(e)
	if match.Score != cfg.Match.PointsPerMatch {
		t.Errorf("Score = %d, want %d", match.Score, cfg.Match.PointsPerMatch)
	}
	if len(found) != 1 {
		t.Fatalf("match-found fired %d times, want 1", len(found))
	}
	if found[0].First != a || found[0].Second != c {
		t.Errorf("matched (%v, %v), want (%v, %v)", found[0].First, found[0].Second, a, c)
	}

	if e.World.Valid(a) || e.World.Valid(c) {
		t.Error("matched shapes should be destroyed after the scale-out")
	}
	if got := stateOf(t, e, b); got != cfg.Inside {
		t.Errorf("unmatched shape state = %v, want Inside", got)
	}
	container := GetContainer(e)
	if container.Count() != 1 || !container.Contains(b) {
		t.Errorf("container holds %v, want only %v", container.Shapes(), b)
	}
	if got := GetContainedCount(e); got != 1 {
		t.Errorf("GetContainedCount() = %d, want 1", got)
	}
	if GetRound(e).IsTerminal() {
		t.Error("round should still be playing with an unmatched shape inside")
	}
}

func TestMatchCheckRequestsAreCoalesced(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)

	for i := 0; i < 3; i++ {
		ScheduleMatchCheck(e, cfg.Match.CheckDelay)
	}
	if got := GetScheduler(e).Len(); got != 1 {
		t.Fatalf("scheduled tasks = %d, want 1", got)
	}
	if !GetMatch(e).CheckPending() {
		t.Fatal("a check should be pending")
	}

	advance(e, cfg.Match.CheckDelay)

	if GetMatch(e).CheckPending() {
		t.Error("pending flag should clear once the check ran")
	}
	if got := GetScheduler(e).Len(); got != 0 {
		t.Errorf("scheduled tasks = %d, want 0 when nothing matched", got)
	}
}

func TestMatchCheckReschedulesAfterAMatch(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)

	for _, x := range []float64{3, -3} {
		SpawnShape(e, cfg.Diamond, cfg.Green, vec(x, 0))
	}
	// A second pair keeps the round alive after the first match
	SpawnShape(e, cfg.Hexagon, cfg.Purple, vec(0, 3))
	SpawnShape(e, cfg.Hexagon, cfg.Purple, vec(0, -3))

	HandleLocalTap(e, vec(3, 0))
	HandleLocalTap(e, vec(-3, 0))
	advance(e, cfg.Shape.MoveInsideDuration+0.05)

	if !RunMatchCheck(e) {
		t.Fatal("RunMatchCheck() = false, want a match")
	}
	if !GetMatch(e).CheckPending() {
		t.Error("a follow-up check should be scheduled after a match")
	}
	if RunMatchCheck(e) {
		t.Error("second RunMatchCheck() should find nothing")
	}
}

func TestMatchCheckSkipsStaleShapes(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)

	a := SpawnShape(e, cfg.Triangle, cfg.Yellow, vec(3, 0))
	b := SpawnShape(e, cfg.Triangle, cfg.Yellow, vec(-3, 0))
	for _, p := range []struct{ x, y float64 }{{3, 0}, {-3, 0}} {
		HandleLocalTap(e, vec(p.x, p.y))
	}
	// Land both without letting the debounced check fire
	for i := 0; i < 100 && (stateOf(t, e, a.Entity()) != cfg.Inside || stateOf(t, e, b.Entity()) != cfg.Inside); i++ {
		UpdateClock(e)
		UpdateTransitions(e)
	}
	if GetMatch(e).TrackedCount() != 2 {
		t.Fatalf("tracked = %d, want 2", GetMatch(e).TrackedCount())
	}

	DestroyShape(e, a.Entity())

	if RunMatchCheck(e) {
		t.Error("RunMatchCheck() matched against a destroyed shape")
	}
	if got := GetContainedCount(e); got != 1 {
		t.Errorf("GetContainedCount() = %d, want 1", got)
	}
}

func TestResetMatchEngineCancelsPendingCheck(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)

	first := SpawnShape(e, cfg.Triangle, cfg.Yellow, vec(3, 0)).Entity()
	second := SpawnShape(e, cfg.Triangle, cfg.Yellow, vec(-3, 0)).Entity()
	SpawnShape(e, cfg.Circle, cfg.Blue, vec(0, 3))

	HandleLocalTap(e, vec(3, 0))
	HandleLocalTap(e, vec(-3, 0))
	advance(e, cfg.Shape.MoveInsideDuration+0.05)

	match := GetMatch(e)
	if !match.CheckPending() {
		t.Fatal("a check should be pending after both shapes landed")
	}
	pending := match.PendingCheck()
	match.AddPoints(cfg.Match.PointsPerMatch)

	ResetMatchEngine(e)

	if match.CheckPending() {
		t.Error("CheckPending() = true after reset")
	}
	if CancelScheduled(e, pending) {
		t.Error("the pending check was still scheduled after reset")
	}
	if match.TrackedCount() != 0 || match.Score != 0 || match.Matches != 0 {
		t.Errorf("after reset tracked %d score %d matches %d, want all 0",
			match.TrackedCount(), match.Score, match.Matches)
	}

	advance(e, 2*cfg.Match.CheckDelay)
	for _, shape := range []donburi.Entity{first, second} {
		if got := stateOf(t, e, shape); got != cfg.Inside {
			t.Errorf("shape state = %v, want Inside with the check cancelled", got)
		}
	}
}

func TestStartRoundResetsMatchEngine(t *testing.T) {
	e := newTestECS(t)
	scope := WireGameplay(e)
	defer scope.Close()

	match := GetMatch(e)
	match.AddPoints(cfg.Match.PointsPerMatch)
	ScheduleMatchCheck(e, cfg.Match.CheckDelay)

	StartRound(e, cfg.GameModeLevels, 1)

	if match.Score != 0 || match.CheckPending() {
		t.Errorf("after StartRound score %d pending %v, want 0 and false", match.Score, match.CheckPending())
	}
}
