package systems

import (
	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/vmath"
	"github.com/pthm-cable/evosim/world"
)

// UpdateHunger charges one tick of metabolism:
//
//	hunger -= baseDecay + hungerRate * |velocity|^2
//
// and clamps the result to [0, world.MaxHunger]. Faster creatures starve faster.
// Returns the amount charged before clamping.
func UpdateHunger(meta *components.Metabolism, vel components.Velocity, baseDecay float64) float64 {
	cost := baseDecay + meta.HungerRate*vmath.LengthSq(vel.Vec)
	meta.Hunger = vmath.Clamp(meta.Hunger-cost, 0, world.MaxHunger)
	return cost
}
