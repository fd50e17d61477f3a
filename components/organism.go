package components

// Metabolism tracks a creature's hunger state.
// Hunger runs from 100 (sated) down to 0 (starving).
type Metabolism struct {
	Hunger          float64 `inspect:"bar,max:100"`
	HungerThreshold float64 `inspect:"label,fmt:%.1f"` // seeks food when Hunger <= this
	HungerRate      float64 `inspect:"label,fmt:%.3f"` // scales the hunger cost of movement
}

// IsHungry reports whether the creature should be foraging.
func (m *Metabolism) IsHungry() bool {
	return m.Hunger <= m.HungerThreshold
}
