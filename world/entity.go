package world

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/vmath"
)

// Construction errors. Routine simulation states never produce errors.
var (
	ErrInvalidBounds   = errors.New("world: invalid bounds")
	ErrInvalidParams   = errors.New("world: invalid params")
	ErrInvalidCreature = errors.New("world: invalid creature")
	ErrInvalidFood     = errors.New("world: invalid food source")
)

// MaxHunger is the sated end of the hunger scale.
const MaxHunger = 100.0

// Creature is a flat, value-typed view of a creature.
// It is used to seed a world and to hand read-only copies to callers.
type Creature struct {
	Position        r2.Vec
	Velocity        r2.Vec
	Facing          float64
	Strength        float64
	Dexterity       float64
	Hunger          float64
	HungerThreshold float64
	HungerRate      float64
	Target          components.Target
	Color           components.Color
}

// MaxSpeed returns Dexterity * components.SpeedPerDexterity.
func (c Creature) MaxSpeed() float64 {
	return components.Physique{Strength: c.Strength, Dexterity: c.Dexterity}.MaxSpeed()
}

// Validate checks the invariants a new creature must satisfy.
func (c Creature) Validate() error {
	switch {
	case !finite(c.Position) || !finite(c.Velocity):
		return fmt.Errorf("%w: non-finite position or velocity", ErrInvalidCreature)
	case !(c.Strength > 0):
		return fmt.Errorf("%w: strength must be positive, got %v", ErrInvalidCreature, c.Strength)
	case !(c.Dexterity > 0):
		return fmt.Errorf("%w: dexterity must be positive, got %v", ErrInvalidCreature, c.Dexterity)
	case c.Hunger < 0 || c.Hunger > MaxHunger || math.IsNaN(c.Hunger):
		return fmt.Errorf("%w: hunger %v outside [0, %v]", ErrInvalidCreature, c.Hunger, MaxHunger)
	case c.HungerThreshold < 0 || c.HungerThreshold > MaxHunger || math.IsNaN(c.HungerThreshold):
		return fmt.Errorf("%w: hunger threshold %v outside [0, %v]", ErrInvalidCreature, c.HungerThreshold, MaxHunger)
	case c.HungerRate < 0 || math.IsNaN(c.HungerRate):
		return fmt.Errorf("%w: hunger rate must be non-negative, got %v", ErrInvalidCreature, c.HungerRate)
	}
	return nil
}

// FoodSource is a flat, value-typed view of a food source.
type FoodSource struct {
	Position  r2.Vec
	MaxAmount float64
	Amount    float64
}

// Fraction returns Amount/MaxAmount for display.
func (f FoodSource) Fraction() float64 {
	food := components.Food{MaxAmount: f.MaxAmount, Amount: f.Amount}
	return food.Fraction()
}

// Radius maps the remaining amount onto [0, maxRadius] relative to this
// source's own MaxAmount, so a full source is always drawn at maxRadius.
// A source with no capacity has radius 0.
func (f FoodSource) Radius(maxRadius float64) float64 {
	r, err := vmath.RangeScale(f.Amount, 0, f.MaxAmount, 0, maxRadius)
	if err != nil {
		return 0
	}
	return vmath.Clamp(r, 0, maxRadius)
}

// Validate checks 0 <= Amount <= MaxAmount and a finite position.
func (f FoodSource) Validate() error {
	switch {
	case !finite(f.Position):
		return fmt.Errorf("%w: non-finite position", ErrInvalidFood)
	case f.MaxAmount < 0 || math.IsNaN(f.MaxAmount):
		return fmt.Errorf("%w: max amount must be non-negative, got %v", ErrInvalidFood, f.MaxAmount)
	case f.Amount < 0 || f.Amount > f.MaxAmount || math.IsNaN(f.Amount):
		return fmt.Errorf("%w: amount %v outside [0, %v]", ErrInvalidFood, f.Amount, f.MaxAmount)
	}
	return nil
}

func finite(v r2.Vec) bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}
