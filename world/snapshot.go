package world

import (
	"cmp"
	"slices"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
)

// Resolver turns a target into a world position.
// The bool is false when there is no target or the referenced entity is gone.
type Resolver interface {
	Resolve(t components.Target) (r2.Vec, bool)
}

var (
	_ Resolver = (*World)(nil)
	_ Resolver = (*Snapshot)(nil)
)

// FoodEntry is a food source position captured in a snapshot.
type FoodEntry struct {
	ID       components.ID
	Position r2.Vec
}

// Snapshot is a read-only copy of every entity position taken at tick start.
// All reads during a tick go through it, so creatures moved earlier in the
// tick are still seen at their pre-tick positions.
type Snapshot struct {
	creatures map[components.ID]r2.Vec
	food      map[components.ID]r2.Vec
	foods     []FoodEntry
}

func newSnapshot() Snapshot {
	return Snapshot{
		creatures: make(map[components.ID]r2.Vec),
		food:      make(map[components.ID]r2.Vec),
	}
}

// Snapshot captures the current positions of all entities.
// The returned value is reused by the next call.
func (w *World) Snapshot() *Snapshot {
	s := &w.snapshot
	clear(s.creatures)
	clear(s.food)
	s.foods = s.foods[:0]

	cq := w.creatureFilter.Query()
	for cq.Next() {
		ident, pos, _ := cq.Get()
		s.creatures[ident.ID] = pos.Vec
	}

	fq := w.foodFilter.Query()
	for fq.Next() {
		ident, pos, _ := fq.Get()
		s.food[ident.ID] = pos.Vec
		s.foods = append(s.foods, FoodEntry{ID: ident.ID, Position: pos.Vec})
	}
	slices.SortFunc(s.foods, func(a, b FoodEntry) int {
		return cmp.Compare(a.ID, b.ID)
	})

	return s
}

// Resolve dereferences a target against the snapshot.
func (s *Snapshot) Resolve(t components.Target) (r2.Vec, bool) {
	switch t.Kind {
	case components.TargetPosition:
		return t.Point, true
	case components.TargetFood:
		p, ok := s.food[t.ID]
		return p, ok
	case components.TargetCreature:
		p, ok := s.creatures[t.ID]
		return p, ok
	default:
		return r2.Vec{}, false
	}
}

// CreaturePosition returns the captured position of a creature.
func (s *Snapshot) CreaturePosition(id components.ID) (r2.Vec, bool) {
	p, ok := s.creatures[id]
	return p, ok
}

// Foods returns the captured food sources in ascending id order.
func (s *Snapshot) Foods() []FoodEntry {
	return s.foods
}

// NumCreatures returns the number of creatures captured.
func (s *Snapshot) NumCreatures() int {
	return len(s.creatures)
}
