package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/evosim/app"
	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/game"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	logStats := flag.Bool("log-stats", false, "Output window stats via slog")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	maxTicks := flag.Int("max-ticks", 0, "Stop after N ticks (0 = unlimited)")
	stepsPerUpdate := flag.Int("steps-per-update", 1, "Simulation ticks per update call (higher = faster headless runs)")
	reportEvery := flag.Int("report-every", 0, "Headless: print a world summary every N ticks (0 = never)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	var level slog.Level
	if err := level.UnmarshalText([]byte(*logLevel)); err != nil {
		slog.Error("invalid log level", "level", *logLevel, "error", err)
		os.Exit(2)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	opts := game.Options{
		Seed:           *seed,
		LogStats:       *logStats,
		OutputDir:      *outputDir,
		StepsPerUpdate: *stepsPerUpdate,
		Logger:         logger,
	}

	if *headless {
		os.Exit(runHeadless(cfg, opts, *maxTicks, *reportEvery))
	}
	os.Exit(runWindowed(cfg, opts, *maxTicks))
}

// Process exit codes.
const (
	exitOK      = 0
	exitFailure = 1
)

// newSimulation builds the simulation for either mode. On failure it logs
// the error and returns a nil simulation with exitFailure.
func newSimulation(cfg *config.Config, opts game.Options) (*game.Simulation, int) {
	sim, err := game.NewFromConfig(cfg, opts)
	if err != nil {
		slog.Error("failed to create simulation", "error", err)
		return nil, exitFailure
	}
	return sim, exitOK
}

// runWindowed opens a raylib window and runs until it is closed or maxTicks
// is reached. Returns the process exit code.
func runWindowed(cfg *config.Config, opts game.Options, maxTicks int) int {
	sim, code := newSimulation(cfg, opts)
	if sim == nil {
		return code
	}

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "evosim")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))
	rl.SetExitKey(0) // Escape clears the selection instead

	a := app.New(sim)
	defer func() {
		if err := a.Unload(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()

	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()

		if maxTicks > 0 && int(sim.Tick()) >= maxTicks {
			break
		}
	}
	return exitOK
}

// runHeadless runs a pure CPU simulation, no raylib needed, and returns
// the process exit code.
func runHeadless(cfg *config.Config, opts game.Options, maxTicks, reportEvery int) int {
	sim, code := newSimulation(cfg, opts)
	if sim == nil {
		return code
	}
	defer func() {
		if err := sim.Close(); err != nil {
			slog.Warn("failed to close output", "error", err)
		}
	}()

	slog.Info("starting headless simulation",
		"seed", sim.Seed(),
		"max_ticks", maxTicks,
		"steps_per_update", sim.StepsPerUpdate(),
	)

	for maxTicks <= 0 || int(sim.Tick()) < maxTicks {
		sim.Update()
		if reportEvery > 0 && int(sim.Tick())%reportEvery < sim.StepsPerUpdate() {
			sim.LogWorldState()
		}
	}
	slog.Info("max ticks reached", "tick", sim.Tick())
	sim.LogPerfStats()
	return exitOK
}
