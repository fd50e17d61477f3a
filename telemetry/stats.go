// Package telemetry aggregates per-tick counters into windowed statistics,
// times the tick phases and writes both as CSV.
package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Population at window end
	Creatures   int     `csv:"creatures"`
	FoodSources int     `csv:"food_sources"`
	TotalFood   float64 `csv:"total_food"`
	Hungry      int     `csv:"hungry"`

	// Hunger distribution (sampled at window end)
	HungerMean float64 `csv:"hunger_mean"`
	HungerStd  float64 `csv:"hunger_std"`
	HungerP10  float64 `csv:"hunger_p10"`
	HungerP50  float64 `csv:"hunger_p50"`
	HungerP90  float64 `csv:"hunger_p90"`

	// Speed (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedMax  float64 `csv:"speed_max"`

	// Events during window
	FoodTargets    int `csv:"food_targets"`
	NoFood         int `csv:"no_food"`
	WanderTargets  int `csv:"wander_targets"`
	Arrivals       int `csv:"arrivals"`
	Vanished       int `csv:"vanished"`
	BoundaryPushes int `csv:"boundary_pushes"`
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean, Std     float64
	P10, P50, P90 float64
	Max           float64
}

// Percentile returns the empirical p-quantile of a sorted slice: the smallest
// value whose cumulative share is at least p. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	p = min(max(p, 0), 1)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Summarize computes population mean and standard deviation, quantiles and
// maximum of values. values is not modified.
func Summarize(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean, std := stat.PopMeanStdDev(sorted, nil)
	return Distribution{
		Mean: mean,
		Std:  std,
		P10:  Percentile(sorted, 0.10),
		P50:  Percentile(sorted, 0.50),
		P90:  Percentile(sorted, 0.90),
		Max:  sorted[len(sorted)-1],
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("creatures", s.Creatures),
		slog.Int("food_sources", s.FoodSources),
		slog.Float64("total_food", s.TotalFood),
		slog.Int("hungry", s.Hungry),
		slog.Float64("hunger_mean", s.HungerMean),
		slog.Float64("hunger_std", s.HungerStd),
		slog.Float64("hunger_p10", s.HungerP10),
		slog.Float64("hunger_p50", s.HungerP50),
		slog.Float64("hunger_p90", s.HungerP90),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_max", s.SpeedMax),
		slog.Int("food_targets", s.FoodTargets),
		slog.Int("no_food", s.NoFood),
		slog.Int("wander_targets", s.WanderTargets),
		slog.Int("arrivals", s.Arrivals),
		slog.Int("vanished", s.Vanished),
		slog.Int("boundary_pushes", s.BoundaryPushes),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats(logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	logger.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"creatures", s.Creatures,
		"hungry", s.Hungry,
		"hunger_mean", s.HungerMean,
		"speed_mean", s.SpeedMean,
		"arrivals", s.Arrivals,
		"boundary_pushes", s.BoundaryPushes,
	)
}
