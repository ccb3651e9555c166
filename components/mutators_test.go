package components

import (
	"testing"
)

func TestTapRouterSetTapRadius(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"positive", 0.8, 0.8},
		{"zero ignored", 0, 0.5},
		{"negative ignored", -1, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := TapRouterData{Radius: 0.5}
			router.SetTapRadius(tt.value)
			if router.Radius != tt.want {
				t.Errorf("Radius = %v, want %v", router.Radius, tt.want)
			}
		})
	}
}

func TestZoneClearDropsEverything(t *testing.T) {
	_, es := newWorldEntities(3)

	c := NewContainer(2, 3, 32, 0.8)
	empties := 0
	ring := NewOuterRing(2.2, 4, 64)
	ring.Events.BecameEmpty.Subscribe(func(struct{}) { empties++ })

	for _, e := range es {
		c.TryAdd(e)
		ring.TryAdd(e)
	}
	c.Clear()
	ring.Clear()

	if c.Count() != 0 || c.Reserved() != 0 {
		t.Errorf("container count %d reserved %d after Clear, want 0", c.Count(), c.Reserved())
	}
	if ring.Count() != 0 {
		t.Errorf("ring count %d after Clear, want 0", ring.Count())
	}
	if empties != 0 {
		t.Errorf("became-empty fired %d times on Clear, want 0", empties)
	}

	// A cleared container can fill again
	fulls := 0
	c.Events.BecameFull.Subscribe(func(int) { fulls++ })
	for _, e := range es {
		c.TryAdd(e)
	}
	if fulls != 1 {
		t.Errorf("became-full fired %d times after refill, want 1", fulls)
	}
}

func TestOrbitMutators(t *testing.T) {
	_, es := newWorldEntities(2)
	o := OrbitData{}
	for _, e := range es {
		o.Register(e)
	}
	o.SetForceMultipliers(3, 1)
	o.Clear()

	if o.TangentialMultiplier != 3 || o.CentrifugalMultiplier != 1 {
		t.Errorf("multipliers = (%v, %v), want (3, 1)", o.TangentialMultiplier, o.CentrifugalMultiplier)
	}
	if o.Count() != 0 {
		t.Errorf("Count() = %d after Clear, want 0", o.Count())
	}
}

func TestMatchResetScoreAndClear(t *testing.T) {
	_, es := newWorldEntities(2)
	m := NewMatch(100, 0.1)
	var scores []int
	m.Events.ScoreChanged.Subscribe(func(s int) { scores = append(scores, s) })

	for _, e := range es {
		m.Track(e)
	}
	m.AddPoints(100)
	m.AddPoints(100)
	m.ResetScore()
	m.Clear()

	if m.Score != 0 || m.Matches != 0 {
		t.Errorf("score %d matches %d after reset, want 0", m.Score, m.Matches)
	}
	if len(scores) != 1 || scores[0] != 0 {
		t.Errorf("score-changed values = %v, want [0]", scores)
	}
	if m.TrackedCount() != 0 {
		t.Errorf("TrackedCount() = %d after Clear, want 0", m.TrackedCount())
	}
}
