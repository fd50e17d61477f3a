package game

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/config"
)

func TestNewPopulation_Ranges(t *testing.T) {
	cfg := config.Default()
	cfg.Population.Creatures = 200
	cfg.Population.Food = 200
	bounds := cfg.Bounds()

	creatures, food := NewPopulation(rand.New(rand.NewSource(8)), cfg)
	if len(creatures) != 200 || len(food) != 200 {
		t.Fatalf("got %d creatures and %d food", len(creatures), len(food))
	}

	for i, c := range creatures {
		if !bounds.Contains(c.Position) {
			t.Errorf("creature %d at %v outside %+v", i, c.Position, bounds)
		}
		if c.Hunger != 100 || c.Strength != 1 || c.Dexterity != 1 {
			t.Errorf("creature %d: hunger %v strength %v dexterity %v", i, c.Hunger, c.Strength, c.Dexterity)
		}
		if c.HungerRate < 0.01 || c.HungerRate >= 0.1 {
			t.Errorf("creature %d: hunger rate %v outside [0.01, 0.1)", i, c.HungerRate)
		}
		if c.HungerThreshold < 25 || c.HungerThreshold >= 75 {
			t.Errorf("creature %d: threshold %v outside [25, 75)", i, c.HungerThreshold)
		}
		if c.Target.IsSet() || c.Velocity.X != 0 || c.Velocity.Y != 0 || c.Facing != 0 {
			t.Errorf("creature %d should start at rest with no target", i)
		}
		if !slices.Contains(components.CreaturePalette, c.Color) {
			t.Errorf("creature %d color %v not in palette", i, c.Color)
		}
	}

	for i, f := range food {
		if !bounds.Contains(f.Position) {
			t.Errorf("food %d at %v outside %+v", i, f.Position, bounds)
		}
		if f.MaxAmount < 50 || f.MaxAmount >= 100 || f.Amount != f.MaxAmount {
			t.Errorf("food %d: amount %v / %v", i, f.Amount, f.MaxAmount)
		}
	}
}

func TestNewWorld_Seeded(t *testing.T) {
	cfg := config.Default()
	a, err := NewWorld(rand.New(rand.NewSource(21)), cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}
	b, err := NewWorld(rand.New(rand.NewSource(21)), cfg)
	if err != nil {
		t.Fatalf("NewWorld: %v", err)
	}

	for id, fa := range a.FoodSources() {
		fb, _ := b.Food(id)
		if fa != fb {
			t.Errorf("food %d differs between identical seeds", id)
		}
	}
}
