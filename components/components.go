// Package components defines ECS components for the simulation.
package components

import "fmt"

// ID identifies a creature or food source. Creatures and food share one id
// space; ids are handed out in increasing order and never reused.
type ID uint64

// NoID is never assigned to an entity.
const NoID ID = 0

// Identity carries the stable id of an entity.
// The ark entity handle may be recycled; the ID never is.
type Identity struct {
	ID ID `inspect:"label"`
}

// Food holds the state of a food source.
type Food struct {
	MaxAmount float64 `inspect:"label,fmt:%.1f"`
	Amount    float64 `inspect:"bar,of:MaxAmount"`
}

// Fraction returns Amount/MaxAmount, or 0 for an empty source.
func (f *Food) Fraction() float64 {
	if f.MaxAmount <= 0 {
		return 0
	}
	return f.Amount / f.MaxAmount
}

// Clamp restores 0 <= Amount <= MaxAmount.
func (f *Food) Clamp() {
	if f.Amount < 0 {
		f.Amount = 0
	}
	if f.Amount > f.MaxAmount {
		f.Amount = f.MaxAmount
	}
}

// Movement holds where a creature is currently heading.
type Movement struct {
	Target Target
}

// Color is a display-only RGBA tag. The simulation never reads it.
type Color struct {
	R, G, B, A uint8
}

// String formats the color as #rrggbbaa.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Palette colors assigned to random creatures.
var (
	White = Color{R: 255, G: 255, B: 255, A: 255}
	Blue  = Color{R: 0, G: 121, B: 241, A: 255}
	Brown = Color{R: 127, G: 106, B: 79, A: 255}
	Gold  = Color{R: 255, G: 203, B: 0, A: 255}
	Red   = Color{R: 230, G: 41, B: 55, A: 255}
)

// CreaturePalette is the set of colors random creatures are drawn from.
var CreaturePalette = []Color{White, Blue, Brown, Gold, Red}

// Appearance holds display data for an entity.
type Appearance struct {
	Color Color
}
