package world

import (
	"fmt"
	"math"

	"github.com/pthm-cable/evosim/vmath"
)

// Bounds is the axis-aligned arena all placement and repulsion is relative to.
type Bounds = vmath.Bounds

// Params holds the tunable integration constants of a world.
type Params struct {
	WindowWidth  float64 // informational, mirrors the host window
	WindowHeight float64 // informational, mirrors the host window
	Padding      float64 // width of the boundary repulsion zone
	Timestep     float64 // integration step per tick
	Damping      float64 // scales the boundary force only
}

// DefaultParams returns the stock parameters for a 600x400 arena.
func DefaultParams() Params {
	return Params{
		WindowWidth:  600,
		WindowHeight: 400,
		Padding:      20,
		Timestep:     1e-2,
		Damping:      0.9,
	}
}

// Validate rejects parameters the integrator cannot run with.
func (p Params) Validate() error {
	switch {
	case !(p.Timestep > 0) || math.IsInf(p.Timestep, 0):
		return fmt.Errorf("%w: timestep must be positive and finite, got %v", ErrInvalidParams, p.Timestep)
	case p.Padding < 0 || math.IsNaN(p.Padding):
		return fmt.Errorf("%w: padding must be non-negative, got %v", ErrInvalidParams, p.Padding)
	case p.Damping < 0 || math.IsNaN(p.Damping):
		return fmt.Errorf("%w: damping must be non-negative, got %v", ErrInvalidParams, p.Damping)
	}
	return nil
}

// ValidateBounds rejects empty or inverted arenas.
func ValidateBounds(b Bounds) error {
	if b.IsEmpty() {
		return fmt.Errorf("%w: need x_min < x_max and y_min < y_max, got %+v", ErrInvalidBounds, b)
	}
	for _, v := range []float64{b.XMin, b.XMax, b.YMin, b.YMax} {
		if math.IsInf(v, 0) {
			return fmt.Errorf("%w: bounds must be finite, got %+v", ErrInvalidBounds, b)
		}
	}
	return nil
}
