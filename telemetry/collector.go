package telemetry

import "github.com/pthm-cable/evosim/systems"

// Collector accumulates per-tick counters within time windows and produces
// WindowStats. Windows are measured in simulated seconds, so they stay the
// same length when the timestep changes mid-run.
type Collector struct {
	windowDuration float64

	windowStartTick int32
	windowStartTime float64
	counts          systems.TickStats
}

// NewCollector creates a collector whose windows last windowDurationSec
// simulated seconds.
func NewCollector(windowDurationSec float64) *Collector {
	return &Collector{windowDuration: windowDurationSec}
}

// RecordTick adds one tick's counters to the current window.
func (c *Collector) RecordTick(stats systems.TickStats) {
	c.counts.Add(stats)
}

// ShouldFlush reports whether the window has run its length at simTime.
// dt is the current timestep; the window closes on the tick nearest to its
// end, which absorbs rounding in the accumulated time.
func (c *Collector) ShouldFlush(simTime, dt float64) bool {
	return simTime-c.windowStartTime+dt/2 >= c.windowDuration
}

// Sample is the population state measured at the end of a window.
type Sample struct {
	Hunger    []float64 // one value per creature
	Speed     []float64 // one value per creature
	Hungry    int
	Food      int
	TotalFood float64
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, simTime float64, sample Sample) WindowStats {
	hunger := Summarize(sample.Hunger)
	speed := Summarize(sample.Speed)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      simTime,

		Creatures:   len(sample.Hunger),
		FoodSources: sample.Food,
		TotalFood:   sample.TotalFood,
		Hungry:      sample.Hungry,

		HungerMean: hunger.Mean,
		HungerStd:  hunger.Std,
		HungerP10:  hunger.P10,
		HungerP50:  hunger.P50,
		HungerP90:  hunger.P90,

		SpeedMean: speed.Mean,
		SpeedMax:  speed.Max,

		FoodTargets:    c.counts.FoodTargets,
		NoFood:         c.counts.NoFood,
		WanderTargets:  c.counts.WanderTargets,
		Arrivals:       c.counts.Arrivals,
		Vanished:       c.counts.Vanished,
		BoundaryPushes: c.counts.BoundaryPushes,
	}

	c.windowStartTick = currentTick
	c.windowStartTime = simTime
	c.counts = systems.TickStats{}

	return stats
}

// Reset discards the current window and starts a new one at tick.
func (c *Collector) Reset(tick int32, simTime float64) {
	c.windowStartTick = tick
	c.windowStartTime = simTime
	c.counts = systems.TickStats{}
}

// WindowDuration returns the window length in simulated seconds.
func (c *Collector) WindowDuration() float64 {
	return c.windowDuration
}
