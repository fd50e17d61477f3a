package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/world"
)

// FindFood returns the id of the food source nearest to pos.
// Ties go to the first minimum in foods, which the snapshot orders by id.
// Returns false when there is no food at all.
func FindFood(pos r2.Vec, foods []world.FoodEntry) (components.ID, bool) {
	best := components.NoID
	bestDistSq := math.Inf(1)
	for _, f := range foods {
		d := r2.Norm2(r2.Sub(f.Position, pos))
		if d < bestDistSq {
			bestDistSq = d
			best = f.ID
		}
	}
	return best, best != components.NoID
}

// Forage points a hungry creature at the nearest food source.
// With no food in the world the target is left untouched.
func Forage(pos components.Position, mov *components.Movement, foods []world.FoodEntry) bool {
	id, ok := FindFood(pos.Vec, foods)
	if !ok {
		return false
	}
	mov.Target = components.FoodTarget(id)
	return true
}
