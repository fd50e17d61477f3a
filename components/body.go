package components

// SpeedPerDexterity converts dexterity into maximum speed.
const SpeedPerDexterity = 10.0

// Physique holds the physical traits of a creature.
type Physique struct {
	Strength  float64 `inspect:"label,fmt:%.2f"`
	Dexterity float64 `inspect:"label,fmt:%.2f"`
}

// MaxSpeed is the upper bound on the creature's velocity magnitude.
func (p Physique) MaxSpeed() float64 {
	return p.Dexterity * SpeedPerDexterity
}

// Acceleration is the largest steering change allowed per tick.
func (p Physique) Acceleration() float64 {
	return p.Dexterity
}
