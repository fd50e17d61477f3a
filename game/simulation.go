// Package game drives a world through time: it owns the systems, the
// random source and the telemetry for one simulation run.
package game

import (
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/evosim/components"
	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/systems"
	"github.com/pthm-cable/evosim/telemetry"
	"github.com/pthm-cable/evosim/world"
)

// Options holds configuration for simulation initialization.
type Options struct {
	Seed           int64  // RNG seed (0 = time-based)
	LogStats       bool   // log window stats via slog
	OutputDir      string // directory for CSV and config output (empty = disabled)
	StepsPerUpdate int    // ticks per Update call (default 1)
	FoodRule       systems.FoodRule
	Logger         *slog.Logger
}

// Simulation owns a world and advances it one tick at a time.
type Simulation struct {
	cfg    *config.Config
	world  *world.World
	rng    *rand.Rand
	seed   int64
	logger *slog.Logger

	foodRule  systems.FoodRule
	food      *systems.FoodSystem
	creatures *systems.CreatureSystem
	registry  *systems.SystemRegistry

	// Sampling for telemetry
	sampleFilter *ecs.Filter2[components.Metabolism, components.Velocity]

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool
	lastStats     telemetry.WindowStats
	lastTick      systems.TickStats

	tick           int32
	simTime        float64 // sum of the timesteps actually run
	paused         bool
	stepsPerUpdate int
}

// New wraps an existing world. Random draws come from rng. cfg supplies the
// behavior constants and is what Reset generates the next world from; nil
// means the embedded defaults. No telemetry windows are collected.
func New(cfg *config.Config, w *world.World, rng *rand.Rand, logger *slog.Logger) *Simulation {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = slog.Default()
	}
	s := &Simulation{
		cfg:            cfg,
		rng:            rng,
		logger:         logger,
		foodRule:       systems.StaticFood{},
		creatures:      systems.NewCreatureSystem(cfg.BehaviorParams(), rng, logger),
		registry:       systems.NewSystemRegistry(),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		stepsPerUpdate: 1,
	}
	s.attach(w)
	return s
}

// NewFromConfig generates a random world from cfg and wraps it.
// The output directory, when set, receives telemetry.csv, perf.csv and a
// config.yaml snapshot.
func NewFromConfig(cfg *config.Config, opts Options) (*Simulation, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	w, err := NewWorld(rng, cfg)
	if err != nil {
		return nil, fmt.Errorf("generating world: %w", err)
	}

	s := New(cfg, w, rng, opts.Logger)
	s.seed = seed
	s.logStats = opts.LogStats
	s.collector = telemetry.NewCollector(cfg.Telemetry.StatsWindow)
	if opts.StepsPerUpdate > 0 {
		s.stepsPerUpdate = opts.StepsPerUpdate
	}
	if opts.FoodRule != nil {
		s.foodRule = opts.FoodRule
		s.food = systems.NewFoodSystem(w, opts.FoodRule)
	}

	s.outputManager, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := s.outputManager.WriteConfig(cfg); err != nil {
		s.logger.Warn("failed to write config snapshot", "error", err)
	}

	s.logger.Info("world created",
		"seed", seed,
		"creatures", w.NumCreatures(),
		"food", w.NumFood(),
		"bounds", fmt.Sprintf("%+v", w.Bounds()),
	)
	return s, nil
}

// attach points the simulation's ECS systems at w.
func (s *Simulation) attach(w *world.World) {
	s.world = w
	s.food = systems.NewFoodSystem(w, s.foodRule)
	s.sampleFilter = ecs.NewFilter2[components.Metabolism, components.Velocity](w.ECS())
}

// Step advances the world by exactly one tick: food sources are updated,
// positions are captured, then every creature runs its behavior against
// that capture.
func (s *Simulation) Step() systems.TickStats {
	s.perfCollector.StartTick()

	s.perfCollector.StartPhase(systems.PhaseFood)
	s.food.Update(s.world)

	s.perfCollector.StartPhase(systems.PhaseSnapshot)
	snap := s.world.Snapshot()

	s.perfCollector.StartPhase(systems.PhaseCreatures)
	stats := s.creatures.Update(s.world, snap)
	s.lastTick = stats

	s.tick++
	s.simTime += s.world.Params().Timestep

	s.perfCollector.StartPhase(systems.PhaseTelemetry)
	if s.collector != nil {
		s.collector.RecordTick(stats)
		s.flushTelemetry()
	}

	s.perfCollector.EndTick()
	return stats
}

// Update runs StepsPerUpdate ticks unless paused.
func (s *Simulation) Update() {
	if s.paused {
		return
	}
	for i := 0; i < s.stepsPerUpdate; i++ {
		s.Step()
	}
}

// Reset replaces the world with one freshly generated from the simulation's
// config, keeping the live params. The random source carries on, so a reset
// world differs from the first one.
func (s *Simulation) Reset() error {
	params := s.world.Params()
	w, err := NewWorld(s.rng, s.cfg)
	if err != nil {
		return fmt.Errorf("regenerating world: %w", err)
	}
	if err := w.SetParams(params); err != nil {
		return err
	}
	s.attach(w)
	if s.collector != nil {
		s.collector.Reset(s.tick, s.simTime)
	}
	s.logger.Info("world reset", "tick", s.tick, "creatures", w.NumCreatures(), "food", w.NumFood())
	return nil
}

// SetWindowSize records the host window size in the world parameters.
// The arena itself is unchanged.
func (s *Simulation) SetWindowSize(width, height float64) {
	p := s.world.Params()
	if p.WindowWidth == width && p.WindowHeight == height {
		return
	}
	p.WindowWidth, p.WindowHeight = width, height
	if err := s.world.SetParams(p); err != nil {
		s.logger.Warn("ignoring window size", "width", width, "height", height, "error", err)
	}
}

// SetParams replaces the world parameters. Invalid parameters are rejected
// and the old ones kept.
func (s *Simulation) SetParams(p world.Params) error {
	return s.world.SetParams(p)
}

// TogglePause flips the paused state.
func (s *Simulation) TogglePause() {
	s.paused = !s.paused
}

// Paused reports whether Update is a no-op.
func (s *Simulation) Paused() bool {
	return s.paused
}

// SetStepsPerUpdate sets how many ticks each Update runs (minimum 1).
func (s *Simulation) SetStepsPerUpdate(n int) {
	s.stepsPerUpdate = max(1, n)
}

// StepsPerUpdate returns how many ticks each Update runs.
func (s *Simulation) StepsPerUpdate() int {
	return s.stepsPerUpdate
}

// SetStatsCallback registers a function called with each flushed window.
func (s *Simulation) SetStatsCallback(fn func(telemetry.WindowStats)) {
	s.statsCallback = fn
}

// World returns the live world. Presentation code must treat it as read-only.
func (s *Simulation) World() *world.World {
	return s.world
}

// Config returns the configuration the simulation was built from.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Registry returns the tick phase metadata.
func (s *Simulation) Registry() *systems.SystemRegistry {
	return s.registry
}

// Perf returns the rolling performance statistics.
func (s *Simulation) Perf() telemetry.PerfStats {
	return s.perfCollector.Stats()
}

// RecordFrame records frame timing for windowed mode.
func (s *Simulation) RecordFrame() {
	s.perfCollector.RecordFrame()
}

// LastTick returns the counters of the most recent tick.
func (s *Simulation) LastTick() systems.TickStats {
	return s.lastTick
}

// LastStats returns the most recently flushed window.
func (s *Simulation) LastStats() telemetry.WindowStats {
	return s.lastStats
}

// Tick returns the number of ticks run so far.
func (s *Simulation) Tick() int32 {
	return s.tick
}

// SimTime returns the simulated seconds run so far. Each tick adds the
// timestep it ran with, so changing the timestep does not rescale the past.
func (s *Simulation) SimTime() float64 {
	return s.simTime
}

// Seed returns the RNG seed, or 0 for a simulation built with New.
func (s *Simulation) Seed() int64 {
	return s.seed
}

// Close flushes and closes telemetry output.
func (s *Simulation) Close() error {
	return s.outputManager.Close()
}
