package systems

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
)

func TestUpdateHunger_RestCostsBaseDecay(t *testing.T) {
	meta := components.Metabolism{Hunger: 0.05, HungerThreshold: 50, HungerRate: 0.07}
	vel := components.Velocity{}

	prev := meta.Hunger
	for i := 0; i < 10; i++ {
		UpdateHunger(&meta, vel, 0.01)
		if meta.Hunger < 0 {
			t.Fatalf("tick %d: hunger went negative: %v", i, meta.Hunger)
		}
		if prev > 0.01 {
			if math.Abs((prev-meta.Hunger)-0.01) > 1e-12 {
				t.Errorf("tick %d: hunger dropped by %v, want 0.01", i, prev-meta.Hunger)
			}
		} else if meta.Hunger != 0 {
			t.Errorf("tick %d: hunger = %v, want clamp at 0", i, meta.Hunger)
		}
		prev = meta.Hunger
	}
}

func TestUpdateHunger_MovementCostIncreasesWithSpeed(t *testing.T) {
	speeds := []float64{0, 1, 2, 5}
	var lastCost float64 = -1
	for _, s := range speeds {
		meta := components.Metabolism{Hunger: 80, HungerRate: 0.05}
		cost := UpdateHunger(&meta, components.Velocity{Vec: r2.Vec{X: s}}, 0.01)

		want := 0.01 + 0.05*s*s
		if math.Abs(cost-want) > 1e-12 {
			t.Errorf("speed %v: cost = %v, want %v", s, cost, want)
		}
		if cost <= lastCost {
			t.Errorf("speed %v: cost %v should exceed %v", s, cost, lastCost)
		}
		lastCost = cost
	}
}

func TestUpdateHunger_ClampsAbove(t *testing.T) {
	// A negative decay only happens with a misconfigured rule, but the clamp must hold.
	meta := components.Metabolism{Hunger: 99.995}
	UpdateHunger(&meta, components.Velocity{}, -1)
	if meta.Hunger != 100 {
		t.Errorf("hunger = %v, want clamp at 100", meta.Hunger)
	}
}
