// Package world owns the entity registry: every creature and food source,
// keyed by a stable id, stored as ark ECS entities.
package world

import (
	"fmt"
	"iter"
	"slices"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
)

// World is the registry of all entities in the simulation.
// It is single-threaded; callers must not use it from more than one goroutine.
type World struct {
	ecs    *ecs.World
	params Params
	bounds Bounds

	// nextID is the next id to hand out. Ids start at 1; NoID is never used.
	nextID   components.ID
	entities map[components.ID]ecs.Entity

	// Ascending id order, maintained on insert and remove.
	creatureIDs []components.ID
	foodIDs     []components.ID

	creatureMapper *ecs.Map7[
		components.Identity,
		components.Position,
		components.Velocity,
		components.Heading,
		components.Metabolism,
		components.Physique,
		components.Movement,
	]
	foodMapper *ecs.Map3[components.Identity, components.Position, components.Food]

	appearanceMap *ecs.Map[components.Appearance]
	metabolismMap *ecs.Map[components.Metabolism]
	foodMap       *ecs.Map[components.Food]
	posMap        *ecs.Map[components.Position]

	creatureFilter *ecs.Filter3[components.Identity, components.Position, components.Metabolism]
	foodFilter     *ecs.Filter3[components.Identity, components.Position, components.Food]

	snapshot Snapshot
}

// New builds a world owning the given entities. Ids are assigned in list
// order, food sources after creatures.
func New(creatures []Creature, food []FoodSource, params Params, bounds Bounds) (*World, error) {
	if err := ValidateBounds(bounds); err != nil {
		return nil, err
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	w := newEmpty(params, bounds)

	for i, c := range creatures {
		if _, err := w.InsertCreature(c); err != nil {
			return nil, fmt.Errorf("creature %d: %w", i, err)
		}
	}
	for i, f := range food {
		if _, err := w.InsertFood(f); err != nil {
			return nil, fmt.Errorf("food source %d: %w", i, err)
		}
	}

	return w, nil
}

func newEmpty(params Params, bounds Bounds) *World {
	world := ecs.NewWorld()

	return &World{
		ecs:      world,
		params:   params,
		bounds:   bounds,
		nextID:   1,
		entities: make(map[components.ID]ecs.Entity),
		creatureMapper: ecs.NewMap7[
			components.Identity,
			components.Position,
			components.Velocity,
			components.Heading,
			components.Metabolism,
			components.Physique,
			components.Movement,
		](world),
		foodMapper:     ecs.NewMap3[components.Identity, components.Position, components.Food](world),
		appearanceMap:  ecs.NewMap[components.Appearance](world),
		metabolismMap:  ecs.NewMap[components.Metabolism](world),
		foodMap:        ecs.NewMap[components.Food](world),
		posMap:         ecs.NewMap[components.Position](world),
		creatureFilter: ecs.NewFilter3[components.Identity, components.Position, components.Metabolism](world),
		foodFilter:     ecs.NewFilter3[components.Identity, components.Position, components.Food](world),
		snapshot:       newSnapshot(),
	}
}

// ECS exposes the underlying ark world so systems can build filters on it.
func (w *World) ECS() *ecs.World {
	return w.ecs
}

// Params returns the current integration parameters.
func (w *World) Params() Params {
	return w.params
}

// SetParams replaces the integration parameters after validating them.
func (w *World) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	w.params = p
	return nil
}

// Bounds returns the arena rectangle.
func (w *World) Bounds() Bounds {
	return w.bounds
}

// AllocateID hands out the next id. Ids are shared by creatures and food
// and are never reassigned.
func (w *World) AllocateID() components.ID {
	id := w.nextID
	w.nextID++
	return id
}

// InsertCreature adds a creature and returns its id.
func (w *World) InsertCreature(c Creature) (components.ID, error) {
	if err := c.Validate(); err != nil {
		return components.NoID, err
	}

	id := w.AllocateID()
	entity := w.creatureMapper.NewEntity(
		&components.Identity{ID: id},
		&components.Position{Vec: c.Position},
		&components.Velocity{Vec: c.Velocity},
		&components.Heading{Facing: c.Facing},
		&components.Metabolism{
			Hunger:          c.Hunger,
			HungerThreshold: c.HungerThreshold,
			HungerRate:      c.HungerRate,
		},
		&components.Physique{Strength: c.Strength, Dexterity: c.Dexterity},
		&components.Movement{Target: c.Target},
	)
	w.appearanceMap.Add(entity, &components.Appearance{Color: c.Color})

	w.entities[id] = entity
	w.creatureIDs = append(w.creatureIDs, id)
	return id, nil
}

// InsertFood adds a food source and returns its id.
func (w *World) InsertFood(f FoodSource) (components.ID, error) {
	if err := f.Validate(); err != nil {
		return components.NoID, err
	}

	id := w.AllocateID()
	entity := w.foodMapper.NewEntity(
		&components.Identity{ID: id},
		&components.Position{Vec: f.Position},
		&components.Food{MaxAmount: f.MaxAmount, Amount: f.Amount},
	)

	w.entities[id] = entity
	w.foodIDs = append(w.foodIDs, id)
	return id, nil
}

// Remove deletes the entity with the given id. Targets pointing at it
// become dangling and resolve as absent. Returns false for unknown ids.
func (w *World) Remove(id components.ID) bool {
	entity, ok := w.entity(id)
	if !ok {
		return false
	}

	if w.metabolismMap.Has(entity) {
		w.creatureIDs = removeID(w.creatureIDs, id)
	} else {
		w.foodIDs = removeID(w.foodIDs, id)
	}
	w.ecs.RemoveEntity(entity)
	delete(w.entities, id)
	return true
}

func removeID(ids []components.ID, id components.ID) []components.ID {
	if i, found := slices.BinarySearch(ids, id); found {
		return slices.Delete(ids, i, i+1)
	}
	return ids
}

// entity returns the live ark entity for id.
func (w *World) entity(id components.ID) (ecs.Entity, bool) {
	entity, ok := w.entities[id]
	if !ok || !w.ecs.Alive(entity) {
		return ecs.Entity{}, false
	}
	return entity, true
}

// CreatureEntity returns the ark entity of a creature.
func (w *World) CreatureEntity(id components.ID) (ecs.Entity, bool) {
	entity, ok := w.entity(id)
	if !ok || !w.metabolismMap.Has(entity) {
		return ecs.Entity{}, false
	}
	return entity, true
}

// FoodEntity returns the ark entity of a food source.
func (w *World) FoodEntity(id components.ID) (ecs.Entity, bool) {
	entity, ok := w.entity(id)
	if !ok || !w.foodMap.Has(entity) {
		return ecs.Entity{}, false
	}
	return entity, true
}

// Creature returns a copy of the creature with the given id.
func (w *World) Creature(id components.ID) (Creature, bool) {
	entity, ok := w.CreatureEntity(id)
	if !ok {
		return Creature{}, false
	}
	return w.creatureView(entity), true
}

func (w *World) creatureView(entity ecs.Entity) Creature {
	_, pos, vel, heading, meta, phys, mov := w.creatureMapper.Get(entity)
	c := Creature{
		Position:        pos.Vec,
		Velocity:        vel.Vec,
		Facing:          heading.Facing,
		Strength:        phys.Strength,
		Dexterity:       phys.Dexterity,
		Hunger:          meta.Hunger,
		HungerThreshold: meta.HungerThreshold,
		HungerRate:      meta.HungerRate,
		Target:          mov.Target,
	}
	if app := w.appearanceMap.Get(entity); app != nil {
		c.Color = app.Color
	}
	return c
}

// Food returns a copy of the food source with the given id.
func (w *World) Food(id components.ID) (FoodSource, bool) {
	entity, ok := w.FoodEntity(id)
	if !ok {
		return FoodSource{}, false
	}
	_, pos, food := w.foodMapper.Get(entity)
	return FoodSource{Position: pos.Vec, MaxAmount: food.MaxAmount, Amount: food.Amount}, true
}

// CreatureComponents returns mutable component pointers for a creature.
// Pointers are valid until the next structural change to the world.
func (w *World) CreatureComponents(entity ecs.Entity) (
	*components.Position,
	*components.Velocity,
	*components.Heading,
	*components.Metabolism,
	*components.Physique,
	*components.Movement,
) {
	_, pos, vel, heading, meta, phys, mov := w.creatureMapper.Get(entity)
	return pos, vel, heading, meta, phys, mov
}

// CreatureIDs returns the ids of all live creatures in ascending order.
func (w *World) CreatureIDs() []components.ID {
	return slices.Clone(w.creatureIDs)
}

// FoodIDs returns the ids of all live food sources in ascending order.
func (w *World) FoodIDs() []components.ID {
	return slices.Clone(w.foodIDs)
}

// NumCreatures returns the number of live creatures.
func (w *World) NumCreatures() int {
	return len(w.creatureIDs)
}

// NumFood returns the number of live food sources.
func (w *World) NumFood() int {
	return len(w.foodIDs)
}

// Creatures iterates over copies of all creatures in ascending id order.
func (w *World) Creatures() iter.Seq2[components.ID, Creature] {
	return func(yield func(components.ID, Creature) bool) {
		for _, id := range w.creatureIDs {
			entity, ok := w.CreatureEntity(id)
			if !ok {
				continue
			}
			if !yield(id, w.creatureView(entity)) {
				return
			}
		}
	}
}

// FoodSources iterates over copies of all food sources in ascending id order.
func (w *World) FoodSources() iter.Seq2[components.ID, FoodSource] {
	return func(yield func(components.ID, FoodSource) bool) {
		for _, id := range w.foodIDs {
			f, ok := w.Food(id)
			if !ok {
				continue
			}
			if !yield(id, f) {
				return
			}
		}
	}
}

// Resolve dereferences a target against live state.
func (w *World) Resolve(t components.Target) (r2.Vec, bool) {
	switch t.Kind {
	case components.TargetPosition:
		return t.Point, true
	case components.TargetFood:
		entity, ok := w.FoodEntity(t.ID)
		if !ok {
			return r2.Vec{}, false
		}
		return w.posMap.Get(entity).Vec, true
	case components.TargetCreature:
		entity, ok := w.CreatureEntity(t.ID)
		if !ok {
			return r2.Vec{}, false
		}
		return w.posMap.Get(entity).Vec, true
	default:
		return r2.Vec{}, false
	}
}
