package game

import (
	"github.com/pthm-cable/evosim/telemetry"
	"github.com/pthm-cable/evosim/vmath"
)

// flushTelemetry checks if the stats window should be flushed and writes it out.
func (s *Simulation) flushTelemetry() {
	if !s.collector.ShouldFlush(s.simTime, s.world.Params().Timestep) {
		return
	}

	stats := s.collector.Flush(s.tick, s.simTime, s.sample())
	perfStats := s.perfCollector.Stats()
	s.lastStats = stats

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	if s.logStats {
		stats.LogStats(s.logger)
		perfStats.LogStats(s.logger)
	}

	if s.outputManager != nil {
		if err := s.outputManager.WriteTelemetry(stats); err != nil {
			s.logger.Warn("failed to write telemetry", "error", err)
		}
		if err := s.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			s.logger.Warn("failed to write perf", "error", err)
		}
	}
}

// sample measures hunger and speed of every creature and totals the food.
func (s *Simulation) sample() telemetry.Sample {
	var out telemetry.Sample

	query := s.sampleFilter.Query()
	for query.Next() {
		meta, vel := query.Get()
		out.Hunger = append(out.Hunger, meta.Hunger)
		out.Speed = append(out.Speed, vmath.Length(vel.Vec))
		if meta.IsHungry() {
			out.Hungry++
		}
	}

	for _, f := range s.world.FoodSources() {
		out.Food++
		out.TotalFood += f.Amount
	}
	return out
}
