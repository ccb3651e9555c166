package systems

import (
	"testing"

	cfg "github.com/automoto/starlock/config"
	"github.com/automoto/starlock/notify"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestRoundVictoryAfterLastPair(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)
	GetRound(e).Pairs = 1

	var victories []notify.VictoryEvent
	notify.Victory.Subscribe(e.World, func(w donburi.World, ev notify.VictoryEvent) {
		victories = append(victories, ev)
	})

	SpawnShape(e, cfg.Circle, cfg.Red, vec(3, 0))
	SpawnShape(e, cfg.Circle, cfg.Red, vec(-3, 0))
	HandleLocalTap(e, vec(3, 0))
	HandleLocalTap(e, vec(-3, 0))

	advance(e, cfg.Shape.MoveInsideDuration+cfg.Match.CheckDelay+0.1)
	events.ProcessAllEvents(e.World)

	round := GetRound(e)
	if !round.IsVictory() {
		t.Fatalf("round state = %v, want victory", round.State)
	}
	if round.FinalScore != cfg.Match.PointsPerMatch {
		t.Errorf("FinalScore = %d, want %d", round.FinalScore, cfg.Match.PointsPerMatch)
	}
	if got := SpawnerActiveCount(e); got != 0 {
		t.Errorf("SpawnerActiveCount() = %d, want 0", got)
	}
	if got := GetContainedCount(e); got != 0 {
		t.Errorf("GetContainedCount() = %d, want 0", got)
	}
	if GetRotation(e).Running {
		t.Error("rotation should stop when the round ends")
	}
	if GetTapRouter(e).Enabled {
		t.Error("tap input should be disabled when the round ends")
	}
	if len(victories) != 1 || victories[0].Score != cfg.Match.PointsPerMatch {
		t.Errorf("victory events = %+v, want one with score %d", victories, cfg.Match.PointsPerMatch)
	}

	if round.ShowSummary {
		t.Error("summary should wait for the end-of-round delay")
	}
	advance(e, cfg.Round.SummaryDelay)
	if !GetRound(e).ShowSummary {
		t.Error("summary should show after the end-of-round delay")
	}
}

func TestRoundGameOverWhenContainerFills(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)
	GetContainer(e).SetCapacity(1)

	first := SpawnShape(e, cfg.Circle, cfg.Red, vec(3, 0)).Entity()
	second := SpawnShape(e, cfg.Square, cfg.Blue, vec(-3, 0)).Entity()

	if !HandleLocalTap(e, vec(3, 0)) {
		t.Fatal("first tap was refused")
	}
	if HandleLocalTap(e, vec(-3, 0)) {
		t.Fatal("second tap should be refused while the only slot is reserved")
	}
	if got := stateOf(t, e, second); got != cfg.Outside {
		t.Errorf("refused shape state = %v, want Outside", got)
	}

	advance(e, cfg.Shape.MoveInsideDuration+0.1)

	round := GetRound(e)
	if !round.IsGameOver() {
		t.Fatalf("round state = %v, want game over", round.State)
	}
	if got := stateOf(t, e, first); got != cfg.Inside {
		t.Errorf("launched shape state = %v, want Inside", got)
	}
	if GetContainer(e).Count() > GetContainer(e).Capacity {
		t.Error("container exceeded its capacity")
	}

	if CheckVictory(e) {
		t.Error("CheckVictory() succeeded after game over")
	}
	if !GetRound(e).IsGameOver() {
		t.Error("game over must not be replaced by victory")
	}
}

func TestVictoryIsNotOverriddenByGameOver(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)

	if !CheckVictory(e) {
		t.Fatal("CheckVictory() on an empty round should succeed")
	}
	TriggerGameOver(e)
	if !GetRound(e).IsVictory() {
		t.Errorf("round state = %v, want victory", GetRound(e).State)
	}
	if CheckVictory(e) {
		t.Error("CheckVictory() should be a no-op once the round ended")
	}
}

func TestEndlessRoundCannotBeWon(t *testing.T) {
	e := newTestECS(t)
	startEmptyRound(t, e)
	GetRound(e).Mode = cfg.GameModeEndless

	if CheckVictory(e) {
		t.Error("CheckVictory() succeeded in endless mode")
	}
	TriggerGameOver(e)
	if !GetRound(e).IsGameOver() {
		t.Error("endless rounds should still end in game over")
	}
}

func TestStartRoundAppliesLevelConfig(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		wantLevel int
	}{
		{"first level", 1, 1},
		{"reversed level", 4, 4},
		{"below range clamps", 0, 1},
		{"above range clamps", 99, cfg.TotalLevels()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			scope := WireGameplay(e)
			defer scope.Close()

			StartRound(e, cfg.GameModeLevels, tt.level)

			round := GetRound(e)
			want := cfg.GetLevel(tt.wantLevel)
			if round.Level != tt.wantLevel {
				t.Errorf("Level = %d, want %d", round.Level, tt.wantLevel)
			}
			if round.Pairs != want.Pairs {
				t.Errorf("Pairs = %d, want %d", round.Pairs, want.Pairs)
			}
			if got := GetContainer(e).Capacity; got != want.MaxShapesInside {
				t.Errorf("Capacity = %d, want %d", got, want.MaxShapesInside)
			}
			rotation := GetRotation(e)
			if rotation.Speed != want.RotationSpeed || rotation.Clockwise != want.ReverseRotation || !rotation.Running {
				t.Errorf("rotation = %+v, want speed %v clockwise %v running", *rotation, want.RotationSpeed, want.ReverseRotation)
			}
			if got := GetOuterRing(e).Count(); got != 2*want.Pairs {
				t.Errorf("ring count = %d, want %d", got, 2*want.Pairs)
			}
			if got := SpawnerActiveCount(e); got != 2*want.Pairs {
				t.Errorf("SpawnerActiveCount() = %d, want %d", got, 2*want.Pairs)
			}
			if !GetTapRouter(e).Enabled {
				t.Error("tap input should be enabled")
			}
		})
	}
}

func TestSpawnPairsProducesMatchingPairs(t *testing.T) {
	e := newTestECS(t)
	SpawnPairs(e, 4)

	counts := map[[2]int]int{}
	for _, shape := range GetOuterRing(e).Shapes() {
		s := shapeOf(t, e, shape)
		counts[[2]int{int(s.Kind), int(s.Color)}]++
	}
	for key, n := range counts {
		if n%2 != 0 {
			t.Errorf("kind/color %v appears %d times, want an even count", key, n)
		}
	}
	if got := GetOrbit(e).Count(); got != 8 {
		t.Errorf("registered with force field = %d, want 8", got)
	}

	ring := GetOuterRing(e)
	for _, shape := range ring.Shapes() {
		pos := bodyOf(t, e, shape).Position
		r := lengthOf(pos)
		if r < ring.InnerRadius || r > ring.OuterRadius {
			t.Errorf("spawned at radius %v, outside band [%v, %v]", r, ring.InnerRadius, ring.OuterRadius)
		}
	}
}
