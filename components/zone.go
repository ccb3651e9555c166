package components

import (
	"github.com/automoto/starlock/signal"
	"github.com/yohamta/donburi"
)

// EntitySet is an insertion-ordered set of entity references.
type EntitySet struct {
	members []donburi.Entity
}

// Add appends e if absent and reports whether it was added.
func (s *EntitySet) Add(e donburi.Entity) bool {
	if s.Contains(e) {
		return false
	}
	s.members = append(s.members, e)
	return true
}

// Remove deletes e if present and reports whether it was removed.
func (s *EntitySet) Remove(e donburi.Entity) bool {
	for i, m := range s.members {
		if m == e {
			s.members = append(s.members[:i], s.members[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports membership.
func (s *EntitySet) Contains(e donburi.Entity) bool {
	for _, m := range s.members {
		if m == e {
			return true
		}
	}
	return false
}

// Len returns the number of members.
func (s *EntitySet) Len() int {
	return len(s.members)
}

// Snapshot returns a copy of the members in insertion order.
func (s *EntitySet) Snapshot() []donburi.Entity {
	out := make([]donburi.Entity, len(s.members))
	copy(out, s.members)
	return out
}

// Clear removes every member.
func (s *EntitySet) Clear() {
	s.members = nil
}

// Purge drops members for which alive returns false and returns how many
// were dropped.
func (s *EntitySet) Purge(alive func(donburi.Entity) bool) int {
	kept := s.members[:0]
	for _, m := range s.members {
		if alive(m) {
			kept = append(kept, m)
		}
	}
	dropped := len(s.members) - len(kept)
	s.members = kept
	return dropped
}

// ZoneEvents are the synchronous notifications a zone emits.
type ZoneEvents struct {
	CountChanged signal.Signal[int]
	Added        signal.Signal[donburi.Entity]
	Removed      signal.Signal[donburi.Entity]
	BecameFull   signal.Signal[int]
	BecameEmpty  signal.Signal[struct{}]
}
