package components

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// TargetKind defines how a target resolves to a position.
type TargetKind uint8

const (
	// TargetNone means the creature has nowhere to go.
	TargetNone TargetKind = iota
	// TargetFood tracks a food source by id.
	TargetFood
	// TargetCreature tracks another creature by id.
	TargetCreature
	// TargetPosition is a fixed world point.
	TargetPosition
)

// String returns the display name of the kind.
func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "none"
	case TargetFood:
		return "food"
	case TargetCreature:
		return "creature"
	case TargetPosition:
		return "position"
	default:
		return "unknown"
	}
}

// Target references what a creature steers toward. Entity targets hold only
// an id and are dereferenced every tick, so a moving target is tracked
// without copying its coordinates. The zero value is no target.
type Target struct {
	Kind  TargetKind
	ID    ID     // valid for TargetFood and TargetCreature
	Point r2.Vec // valid for TargetPosition
}

// NoTarget is the empty target.
var NoTarget = Target{}

// FoodTarget references a food source.
func FoodTarget(id ID) Target {
	return Target{Kind: TargetFood, ID: id}
}

// CreatureTarget references another creature.
func CreatureTarget(id ID) Target {
	return Target{Kind: TargetCreature, ID: id}
}

// PointTarget references a fixed point.
func PointTarget(p r2.Vec) Target {
	return Target{Kind: TargetPosition, Point: p}
}

// IsSet reports whether the target is anything other than none.
func (t Target) IsSet() bool {
	return t.Kind != TargetNone
}

// IsEntity reports whether the target references an entity by id.
func (t Target) IsEntity() bool {
	return t.Kind == TargetFood || t.Kind == TargetCreature
}

// String implements fmt.Stringer.
func (t Target) String() string {
	switch t.Kind {
	case TargetFood, TargetCreature:
		return fmt.Sprintf("%s(%d)", t.Kind, t.ID)
	case TargetPosition:
		return fmt.Sprintf("position(%.2f, %.2f)", t.Point.X, t.Point.Y)
	default:
		return t.Kind.String()
	}
}
