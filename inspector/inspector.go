package inspector

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/vmath"
	"github.com/pthm-cable/evosim/world"
)

// Section is a titled group of fields, one per component.
type Section struct {
	Title  string
	Fields []Field
}

// Inspector tracks the selected creature or food source.
type Inspector struct {
	selected    components.ID
	hasSelected bool
	isFood      bool
	pickRadius  float64
}

// New creates an inspector that picks entities within pickRadius world
// units of the cursor.
func New(pickRadius float64) *Inspector {
	return &Inspector{pickRadius: pickRadius}
}

// Select picks the entity nearest to p within the pick radius. Creatures
// win over food sources. Returns false and keeps the old selection when
// nothing is in range.
func (ins *Inspector) Select(w *world.World, p r2.Vec) bool {
	limit := ins.pickRadius * ins.pickRadius

	best, bestDist, found := components.NoID, math.Inf(1), false
	for id, c := range w.Creatures() {
		if d := vmath.LengthSq(r2.Sub(c.Position, p)); d <= limit && d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	if found {
		ins.selected, ins.hasSelected, ins.isFood = best, true, false
		return true
	}

	for id, f := range w.FoodSources() {
		if d := vmath.LengthSq(r2.Sub(f.Position, p)); d <= limit && d < bestDist {
			best, bestDist, found = id, d, true
		}
	}
	if found {
		ins.selected, ins.hasSelected, ins.isFood = best, true, true
	}
	return found
}

// SelectID selects a creature by id without a position lookup.
func (ins *Inspector) SelectID(id components.ID) {
	ins.selected, ins.hasSelected, ins.isFood = id, true, false
}

// Deselect clears the current selection.
func (ins *Inspector) Deselect() {
	ins.hasSelected = false
	ins.selected = components.NoID
	ins.isFood = false
}

// Selected returns the selected id and whether anything is selected.
func (ins *Inspector) Selected() (components.ID, bool) {
	return ins.selected, ins.hasSelected
}

// Position returns the current position of the selection, if it still exists.
func (ins *Inspector) Position(w *world.World) (r2.Vec, bool) {
	if !ins.hasSelected {
		return r2.Vec{}, false
	}
	if ins.isFood {
		f, ok := w.Food(ins.selected)
		return f.Position, ok
	}
	c, ok := w.Creature(ins.selected)
	return c.Position, ok
}

// Sections returns the component fields of the selection. A selection whose
// entity has been removed is cleared and reported as absent.
func (ins *Inspector) Sections(w *world.World) ([]Section, bool) {
	if !ins.hasSelected {
		return nil, false
	}
	identity := components.Identity{ID: ins.selected}

	if ins.isFood {
		f, ok := w.Food(ins.selected)
		if !ok {
			ins.Deselect()
			return nil, false
		}
		return []Section{
			{Title: "Food", Fields: Fields(identity)},
			{Title: "Position", Fields: Fields(components.Position{Vec: f.Position})},
			{Title: "Supply", Fields: Fields(components.Food{MaxAmount: f.MaxAmount, Amount: f.Amount})},
		}, true
	}

	entity, ok := w.CreatureEntity(ins.selected)
	if !ok {
		ins.Deselect()
		return nil, false
	}
	pos, vel, heading, meta, phys, mov := w.CreatureComponents(entity)
	return []Section{
		{Title: "Creature", Fields: Fields(identity)},
		{Title: "Position", Fields: Fields(pos)},
		{Title: "Velocity", Fields: Fields(vel)},
		{Title: "Heading", Fields: Fields(heading)},
		{Title: "Metabolism", Fields: Fields(meta)},
		{Title: "Physique", Fields: Fields(phys)},
		{Title: "Movement", Fields: Fields(mov)},
	}, true
}
