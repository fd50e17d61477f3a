package game

import (
	"fmt"
	"io"
	"time"

	"github.com/pthm-cable/evosim/vmath"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// LogWorldState writes a human-readable summary of the world.
func (s *Simulation) LogWorldState() {
	var hungry, wandering, idle int
	var hungerSum, speedSum float64
	n := 0
	for _, c := range s.world.Creatures() {
		n++
		hungerSum += c.Hunger
		speedSum += vmath.Length(c.Velocity)
		switch {
		case c.Hunger <= c.HungerThreshold:
			hungry++
		case c.Target.IsSet():
			wandering++
		default:
			idle++
		}
	}

	var foodLeft, foodMax float64
	for _, f := range s.world.FoodSources() {
		foodLeft += f.Amount
		foodMax += f.MaxAmount
	}

	Logf("=== Tick %d (%.2fs) ===", s.tick, s.simTime)
	if n > 0 {
		Logf("Creatures: %d (hungry: %d, wandering: %d, idle: %d)", n, hungry, wandering, idle)
		Logf("  hunger %.1f avg, speed %.2f avg", hungerSum/float64(n), speedSum/float64(n))
	} else {
		Logf("Creatures: 0")
	}
	Logf("Food: %d sources, %.1f / %.1f", s.world.NumFood(), foodLeft, foodMax)
	Logf("")
}

// LogPerfStats writes the per-phase timing breakdown.
func (s *Simulation) LogPerfStats() {
	perf := s.perfCollector.Stats()
	Logf("=== Perf @ Tick %d (speed %dx) ===", s.tick, s.stepsPerUpdate)
	Logf("Avg step time: %s", perf.AvgTickDuration.Round(time.Microsecond))
	for _, info := range s.registry.All() {
		Logf("  %-12s %10s  %5.1f%%", info.Name,
			perf.PhaseAvg[info.ID].Round(time.Microsecond), perf.PhasePct[info.ID])
	}
	Logf("")
}
