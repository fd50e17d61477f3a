// Package systems contains the per-tick creature behavior and the ECS
// systems that apply it to a world.
package systems

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/vmath"
	"github.com/pthm-cable/evosim/world"
)

// SteerResult describes what the steering step did.
type SteerResult uint8

const (
	// SteerIdle means there was no target.
	SteerIdle SteerResult = iota
	// SteerVanished means the target referenced an entity that no longer
	// exists. The target is cleared and velocity is left alone.
	SteerVanished
	// SteerArrived means the creature reached its target and stopped.
	SteerArrived
	// SteerMoving means the creature steered toward its target.
	SteerMoving
)

// String returns a short name for the result.
func (r SteerResult) String() string {
	switch r {
	case SteerIdle:
		return "idle"
	case SteerVanished:
		return "vanished"
	case SteerArrived:
		return "arrived"
	case SteerMoving:
		return "moving"
	default:
		return "unknown"
	}
}

// MoveToTarget runs arrival steering toward the creature's target.
//
// Within ArrivalRadius the creature snaps to a stop and forgets the target.
// Otherwise desired speed eases in with squared distance over
// AccelerationRadius, the steering change is capped at the creature's
// acceleration, velocity is capped at its max speed, and position advances
// by velocity*dt. Returns the steering delta actually applied.
func MoveToTarget(
	pos *components.Position,
	vel *components.Velocity,
	mov *components.Movement,
	phys components.Physique,
	resolver world.Resolver,
	b Behavior,
	dt float64,
) (SteerResult, r2.Vec) {
	if !mov.Target.IsSet() {
		return SteerIdle, r2.Vec{}
	}

	target, ok := resolver.Resolve(mov.Target)
	if !ok {
		mov.Target = components.NoTarget
		return SteerVanished, r2.Vec{}
	}

	toTarget := r2.Sub(target, pos.Vec)
	distSq := r2.Norm2(toTarget)
	if distSq < b.ArrivalRadius*b.ArrivalRadius {
		vel.Vec = r2.Vec{}
		mov.Target = components.NoTarget
		return SteerArrived, r2.Vec{}
	}

	maxSpeed := phys.MaxSpeed()
	speedFactor := vmath.EaseOut(distSq / b.AccelerationRadius)
	desired := r2.Scale(maxSpeed*speedFactor, vmath.NormalizeOrZero(toTarget))

	steering := vmath.ClampLength(r2.Sub(desired, vel.Vec), phys.Acceleration())
	vel.Vec = vmath.ClampLength(r2.Add(vel.Vec, steering), maxSpeed)
	pos.Vec = r2.Add(pos.Vec, r2.Scale(dt, vel.Vec))

	return SteerMoving, steering
}

// BoundaryForce returns the repulsion felt at p. On each axis, inside the
// padding band next to the minimum edge the force is
// padding - max(distance to edge, 1), pointing inward; the maximum edge
// mirrors it. Outside both bands the axis gets no force.
func BoundaryForce(p r2.Vec, padding float64, bounds world.Bounds) r2.Vec {
	var force r2.Vec
	force.X = axisForce(p.X, bounds.XMin, bounds.XMax, padding)
	force.Y = axisForce(p.Y, bounds.YMin, bounds.YMax, padding)
	return force
}

func axisForce(v, lo, hi, padding float64) float64 {
	switch {
	case v < lo+padding:
		return padding - math.Max(v-lo, 1)
	case v > hi-padding:
		return -(padding - math.Max(hi-v, 1))
	default:
		return 0
	}
}

// ApplyBoundary pushes the creature away from the arena edges and integrates
// position a second time this tick:
//
//	velocity += force * timestep * damping
//	position += velocity * timestep
//
// Unlike the bare formula above, velocity is re-capped at maxSpeed before
// integrating, so the speed bound also holds after a boundary push.
// Returns the force.
func ApplyBoundary(
	pos *components.Position,
	vel *components.Velocity,
	maxSpeed float64,
	params world.Params,
	bounds world.Bounds,
) r2.Vec {
	force := BoundaryForce(pos.Vec, params.Padding, bounds)
	vel.Vec = r2.Add(vel.Vec, r2.Scale(params.Timestep*params.Damping, force))
	vel.Vec = vmath.ClampLength(vel.Vec, maxSpeed)
	pos.Vec = r2.Add(pos.Vec, r2.Scale(params.Timestep, vel.Vec))
	return force
}

// UpdateFacing points the heading along a nonzero velocity.
// A stationary creature keeps its previous facing.
func UpdateFacing(h *components.Heading, vel components.Velocity) {
	if vmath.IsZero(vmath.NormalizeOrZero(vel.Vec)) {
		return
	}
	h.Facing = vmath.Angle(vel.Vec)
}
