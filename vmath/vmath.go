// Package vmath provides the 2D numerics used by the simulation.
// Vectors are gonum r2.Vec values; every helper here is a pure function.
package vmath

import (
	"errors"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/spatial/r2"
)

// ErrDegenerateRange is returned by RangeScale when the source range is empty.
var ErrDegenerateRange = errors.New("vmath: source range has zero width")

// Vec is the vector type used throughout the simulation.
type Vec = r2.Vec

// Zero is the zero vector.
var Zero = Vec{}

// Bounds is an axis-aligned rectangle in world space.
type Bounds struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

// Width returns the horizontal extent of b.
func (b Bounds) Width() float64 { return b.XMax - b.XMin }

// Height returns the vertical extent of b.
func (b Bounds) Height() float64 { return b.YMax - b.YMin }

// Center returns the midpoint of b.
func (b Bounds) Center() Vec {
	return Vec{X: (b.XMin + b.XMax) / 2, Y: (b.YMin + b.YMax) / 2}
}

// Contains reports whether p lies inside b (max edges inclusive).
func (b Bounds) Contains(p Vec) bool {
	return p.X >= b.XMin && p.X <= b.XMax && p.Y >= b.YMin && p.Y <= b.YMax
}

// IsEmpty reports whether b has no area or is inverted.
func (b Bounds) IsEmpty() bool {
	return !(b.XMin < b.XMax && b.YMin < b.YMax)
}

// Length returns |v|.
func Length(v Vec) float64 {
	return r2.Norm(v)
}

// LengthSq returns |v|^2.
func LengthSq(v Vec) float64 {
	return r2.Norm2(v)
}

// IsZero reports whether v is exactly the zero vector.
func IsZero(v Vec) bool {
	return v.X == 0 && v.Y == 0
}

// NormalizeOrZero returns the unit vector in the direction of v,
// or the zero vector when v has zero length.
func NormalizeOrZero(v Vec) Vec {
	l := r2.Norm(v)
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Zero
	}
	return r2.Scale(1/l, v)
}

// ClampLength returns v scaled down so that |v| <= max.
// Vectors already within the limit are returned unchanged.
func ClampLength(v Vec, max float64) Vec {
	if max <= 0 {
		return Zero
	}
	l2 := r2.Norm2(v)
	if l2 <= max*max {
		return v
	}
	return r2.Scale(max/math.Sqrt(l2), v)
}

// Angle returns the direction of v in radians, in [-Pi, Pi].
func Angle(v Vec) float64 {
	return math.Atan2(v.Y, v.X)
}

// FromPolar builds a vector of the given length pointing at angle radians.
func FromPolar(length, angle float64) Vec {
	return Vec{X: length * math.Cos(angle), Y: length * math.Sin(angle)}
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// EaseOut maps t in [0, 1] onto the quadratic t*(3-2t), clamping t first.
// EaseOut(0) = 0 and EaseOut(1) = 1; the curve peaks at 1.125 for t = 0.75.
func EaseOut(t float64) float64 {
	t = Clamp(t, 0, 1)
	return t * (3 - 2*t)
}

// RangeScale linearly maps v from [oldLo, oldHi] onto [newLo, newHi].
func RangeScale(v, oldLo, oldHi, newLo, newHi float64) (float64, error) {
	span := oldHi - oldLo
	if span == 0 {
		return 0, ErrDegenerateRange
	}
	return newLo + (v-oldLo)*(newHi-newLo)/span, nil
}

// RandomRange returns a uniform sample in [lo, hi).
// An empty range yields lo.
func RandomRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}

// RandomPointInBounds samples x in [XMin, XMax) and y in [YMin, YMax) independently.
func RandomPointInBounds(rng *rand.Rand, b Bounds) Vec {
	return Vec{
		X: RandomRange(rng, b.XMin, b.XMax),
		Y: RandomRange(rng, b.YMin, b.YMax),
	}
}
