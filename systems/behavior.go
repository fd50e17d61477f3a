package systems

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/vmath"
	"github.com/pthm-cable/evosim/world"
)

// Behavior holds the constants of the creature state machine.
type Behavior struct {
	BaseHungerDecay    float64 // hunger lost per tick at rest
	ArrivalRadius      float64 // stop when closer than this
	AccelerationRadius float64 // squared distance at which full speed is reached
	WanderMinDistance  float64
	WanderMaxDistance  float64
	WanderHalfAngle    float64 // radians either side of facing
}

// DefaultBehavior returns the stock behavior constants.
func DefaultBehavior() Behavior {
	return Behavior{
		BaseHungerDecay:    0.01,
		ArrivalRadius:      5,
		AccelerationRadius: 525,
		WanderMinDistance:  10,
		WanderMaxDistance:  80,
		WanderHalfAngle:    math.Pi / 6,
	}
}

// PickWanderTarget picks a point in a cone ahead of the creature:
// distance in [WanderMinDistance, WanderMaxDistance), angle within
// WanderHalfAngle of facing.
func PickWanderTarget(rng *rand.Rand, pos r2.Vec, facing float64, b Behavior) r2.Vec {
	distance := vmath.RandomRange(rng, b.WanderMinDistance, b.WanderMaxDistance)
	angle := facing + vmath.RandomRange(rng, -b.WanderHalfAngle, b.WanderHalfAngle)
	return r2.Add(pos, vmath.FromPolar(distance, angle))
}

// Wander gives a content creature a random target if it has none.
// An existing target of any kind is kept.
func Wander(rng *rand.Rand, pos components.Position, h components.Heading, mov *components.Movement, b Behavior) bool {
	if mov.Target.IsSet() {
		return false
	}
	mov.Target = components.PointTarget(PickWanderTarget(rng, pos.Vec, h.Facing, b))
	return true
}

// TickStats counts what creatures did during one tick.
type TickStats struct {
	Creatures      int
	Hungry         int
	FoodTargets    int // hungry creatures that found food
	NoFood         int // hungry creatures with no food in the world
	WanderTargets  int // new wander targets picked
	Arrivals       int
	Vanished       int // dangling targets cleared
	Moving         int
	BoundaryPushes int // creatures that felt a nonzero boundary force
}

// Add accumulates other into s.
func (s *TickStats) Add(other TickStats) {
	s.Creatures += other.Creatures
	s.Hungry += other.Hungry
	s.FoodTargets += other.FoodTargets
	s.NoFood += other.NoFood
	s.WanderTargets += other.WanderTargets
	s.Arrivals += other.Arrivals
	s.Vanished += other.Vanished
	s.Moving += other.Moving
	s.BoundaryPushes += other.BoundaryPushes
}

// CreatureSystem advances every creature by one tick.
type CreatureSystem struct {
	behavior Behavior
	rng      *rand.Rand
	logger   *slog.Logger
}

// NewCreatureSystem creates a creature system drawing randomness from rng.
// A nil logger uses slog.Default().
func NewCreatureSystem(b Behavior, rng *rand.Rand, logger *slog.Logger) *CreatureSystem {
	if logger == nil {
		logger = slog.Default()
	}
	return &CreatureSystem{behavior: b, rng: rng, logger: logger}
}

// Behavior returns the constants the system runs with.
func (s *CreatureSystem) Behavior() Behavior {
	return s.behavior
}

// Update runs hunger, behavior selection, steering, boundary repulsion and
// facing for each creature. Every read of another entity goes through snap,
// so the outcome does not depend on which creature moved first. Creatures
// are visited in ascending id order so random draws are reproducible.
func (s *CreatureSystem) Update(w *world.World, snap *world.Snapshot) TickStats {
	var stats TickStats
	params := w.Params()
	bounds := w.Bounds()
	debug := s.logger.Enabled(context.Background(), slog.LevelDebug)

	for _, id := range w.CreatureIDs() {
		entity, ok := w.CreatureEntity(id)
		if !ok {
			continue
		}
		pos, vel, heading, meta, phys, mov := w.CreatureComponents(entity)
		stats.Creatures++

		UpdateHunger(meta, *vel, s.behavior.BaseHungerDecay)

		if meta.IsHungry() {
			stats.Hungry++
			if Forage(*pos, mov, snap.Foods()) {
				stats.FoodTargets++
			} else {
				stats.NoFood++
			}
			if debug {
				s.logger.Debug("creature is finding food",
					"id", id, "hunger", meta.Hunger, "target", mov.Target.String())
			}
		} else {
			if Wander(s.rng, *pos, *heading, mov, s.behavior) {
				stats.WanderTargets++
			}
			if debug {
				s.logger.Debug("creature is random walking",
					"id", id, "hunger", meta.Hunger, "target", mov.Target.String())
			}
		}

		result, _ := MoveToTarget(pos, vel, mov, *phys, snap, s.behavior, params.Timestep)
		switch result {
		case SteerArrived:
			stats.Arrivals++
		case SteerVanished:
			stats.Vanished++
		case SteerMoving:
			stats.Moving++
		}

		force := ApplyBoundary(pos, vel, phys.MaxSpeed(), params, bounds)
		if !vmath.IsZero(force) {
			stats.BoundaryPushes++
		}

		UpdateFacing(heading, *vel)
	}

	return stats
}
