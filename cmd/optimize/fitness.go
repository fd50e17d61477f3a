package main

import (
	"io"
	"log/slog"
	"math"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/game"
	"github.com/pthm-cable/evosim/world"
)

// Fitness weights. Escape dominates; padding only breaks ties between
// parameter sets that keep everyone inside.
const (
	escapeWeight  = 100.0
	paddingWeight = 1.0
)

// FitnessEvaluator runs headless simulations and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   int32
	seeds      []int64
	baseConfig *config.Config
	logger     *slog.Logger

	mu         sync.Mutex
	lastEscape float64 // mean escape from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks int32, seeds []int64, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		seeds:      seeds,
		baseConfig: baseCfg,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// LastEscape returns the mean escape score from the most recent evaluation.
func (fe *FitnessEvaluator) LastEscape() float64 {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastEscape
}

// runResult holds the results from a single simulation run.
type runResult struct {
	escape float64 // mean distance outside the arena per creature-tick
	err    error
}

// Evaluate computes fitness for a parameter vector (lower = better).
// Seeds run in parallel; the result is the mean over seeds.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	cfg := fe.copyConfig()
	fe.params.ApplyToConfig(cfg, x)

	results := make([]runResult, len(fe.seeds))
	var wg sync.WaitGroup
	for i, seed := range fe.seeds {
		wg.Add(1)
		go func(idx int, s int64) {
			defer wg.Done()
			results[idx] = fe.runSimulation(cfg, s)
		}(i, seed)
	}
	wg.Wait()

	var totalEscape float64
	for _, r := range results {
		if r.err != nil {
			return math.Inf(1)
		}
		totalEscape += r.escape
	}
	escape := totalEscape / float64(len(fe.seeds))

	fe.mu.Lock()
	fe.lastEscape = escape
	fe.mu.Unlock()

	return computeFitness(escape, cfg.Physics.Padding, cfg.Bounds())
}

// computeFitness weighs escape against the share of the arena the padding
// band takes up.
func computeFitness(escape, padding float64, b world.Bounds) float64 {
	side := min(b.Width(), b.Height())
	if side <= 0 {
		return math.Inf(1)
	}
	return escapeWeight*escape + paddingWeight*padding/side
}

// runSimulation executes a single headless simulation run.
func (fe *FitnessEvaluator) runSimulation(cfg *config.Config, seed int64) runResult {
	sim, err := game.NewFromConfig(cfg, game.Options{Seed: seed, Logger: fe.logger})
	if err != nil {
		return runResult{err: err}
	}
	defer sim.Close()

	w := sim.World()
	bounds := w.Bounds()
	var total float64
	var samples int
	for sim.Tick() < fe.maxTicks {
		sim.Step()
		for _, c := range w.Creatures() {
			total += outsideDistance(c.Position, bounds)
			samples++
		}
	}
	if samples == 0 {
		return runResult{}
	}
	return runResult{escape: total / float64(samples)}
}

// outsideDistance is how far p lies outside b along each axis, summed.
// Points inside b score 0.
func outsideDistance(p r2.Vec, b world.Bounds) float64 {
	var d float64
	d += max(0, b.XMin-p.X) + max(0, p.X-b.XMax)
	d += max(0, b.YMin-p.Y) + max(0, p.Y-b.YMax)
	return d
}

// copyConfig creates a copy of the base config. Config holds only values,
// so a struct copy is deep.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
