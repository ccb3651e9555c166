package components

import "github.com/yohamta/donburi"

// SpawnerData remembers every shape the spawner created this round.
type SpawnerData struct {
	spawned EntitySet
}

var Spawner = donburi.NewComponentType[SpawnerData]()

// Track records a spawned shape.
func (s *SpawnerData) Track(e donburi.Entity) {
	s.spawned.Add(e)
}

// Spawned returns the spawned shapes still remembered.
func (s *SpawnerData) Spawned() []donburi.Entity {
	return s.spawned.Snapshot()
}

// Purge forgets shapes for which keep returns false.
func (s *SpawnerData) Purge(keep func(donburi.Entity) bool) {
	s.spawned.Purge(keep)
}

// Clear forgets every shape.
func (s *SpawnerData) Clear() {
	s.spawned.Clear()
}
