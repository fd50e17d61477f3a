package systems

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/world"
)

// FoodRule changes a food source over one tick. Rules may regrow or deplete
// food; the system clamps the amount back into [0, MaxAmount] afterwards.
type FoodRule interface {
	UpdateFood(id components.ID, food *components.Food, dt float64)
}

// FoodRuleFunc adapts a function to FoodRule.
type FoodRuleFunc func(id components.ID, food *components.Food, dt float64)

// UpdateFood calls f.
func (f FoodRuleFunc) UpdateFood(id components.ID, food *components.Food, dt float64) {
	f(id, food, dt)
}

// StaticFood leaves food sources unchanged.
type StaticFood struct{}

// UpdateFood does nothing.
func (StaticFood) UpdateFood(components.ID, *components.Food, float64) {}

// FoodSystem applies a FoodRule to every food source.
type FoodSystem struct {
	filter *ecs.Filter2[components.Identity, components.Food]
	rule   FoodRule
}

// NewFoodSystem creates a food system for w. A nil rule means StaticFood.
func NewFoodSystem(w *world.World, rule FoodRule) *FoodSystem {
	if rule == nil {
		rule = StaticFood{}
	}
	return &FoodSystem{
		filter: ecs.NewFilter2[components.Identity, components.Food](w.ECS()),
		rule:   rule,
	}
}

// Update runs the rule on each food source.
func (s *FoodSystem) Update(w *world.World) {
	dt := w.Params().Timestep
	query := s.filter.Query()
	for query.Next() {
		ident, food := query.Get()
		s.rule.UpdateFood(ident.ID, food, dt)
		food.Clamp()
	}
}
