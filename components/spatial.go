package components

import "gonum.org/v1/gonum/spatial/r2"

// Position represents an entity's world position.
type Position struct {
	r2.Vec
}

// Velocity represents an entity's velocity in world units per second.
type Velocity struct {
	r2.Vec
}

// Heading holds the direction a creature faces, in radians.
// It follows the last nonzero velocity and is never set by behavior selection.
type Heading struct {
	Facing float64 `inspect:"angle"`
}
