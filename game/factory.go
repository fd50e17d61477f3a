package game

import (
	"math/rand"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/vmath"
	"github.com/pthm-cable/evosim/world"
)

// RandomFood creates a full food source at a random point in bounds.
func RandomFood(rng *rand.Rand, cfg *config.Config, bounds world.Bounds) world.FoodSource {
	maxAmount := vmath.RandomRange(rng, cfg.Food.MaxAmount.Min, cfg.Food.MaxAmount.Max)
	return world.FoodSource{
		Position:  vmath.RandomPointInBounds(rng, bounds),
		MaxAmount: maxAmount,
		Amount:    maxAmount,
	}
}

// RandomCreature creates a resting creature at a random point in bounds
// with randomized metabolism and a color from the palette.
func RandomCreature(rng *rand.Rand, cfg *config.Config, bounds world.Bounds) world.Creature {
	cc := cfg.Creature
	return world.Creature{
		Position:        vmath.RandomPointInBounds(rng, bounds),
		Strength:        cc.Strength,
		Dexterity:       cc.Dexterity,
		Hunger:          cc.InitialHunger,
		HungerRate:      vmath.RandomRange(rng, cc.HungerRate.Min, cc.HungerRate.Max),
		HungerThreshold: vmath.RandomRange(rng, cc.HungerThreshold.Min, cc.HungerThreshold.Max),
		Color:           components.CreaturePalette[rng.Intn(len(components.CreaturePalette))],
	}
}

// NewPopulation generates the initial entities for a world. Food is drawn
// first, then creatures, so a seed always yields the same layout.
func NewPopulation(rng *rand.Rand, cfg *config.Config) ([]world.Creature, []world.FoodSource) {
	bounds := cfg.Bounds()

	food := make([]world.FoodSource, 0, cfg.Population.Food)
	for i := 0; i < cfg.Population.Food; i++ {
		food = append(food, RandomFood(rng, cfg, bounds))
	}

	creatures := make([]world.Creature, 0, cfg.Population.Creatures)
	for i := 0; i < cfg.Population.Creatures; i++ {
		creatures = append(creatures, RandomCreature(rng, cfg, bounds))
	}

	return creatures, food
}

// NewWorld generates a random world described by cfg.
func NewWorld(rng *rand.Rand, cfg *config.Config) (*world.World, error) {
	creatures, food := NewPopulation(rng, cfg)
	return world.New(creatures, food, cfg.Params(), cfg.Bounds())
}
