package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pthm-cable/evosim/config"
	"github.com/pthm-cable/evosim/game"
)

func TestNewSimulation_FailureExitCode(t *testing.T) {
	// A regular file where the output directory should go makes the
	// simulation fail to start.
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name     string
		dir      string
		wantCode int
		wantSim  bool
	}{
		{"no output", "", exitOK, true},
		{"output dir under a file", filepath.Join(blocker, "out"), exitFailure, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, code := newSimulation(config.Default(), game.Options{Seed: 1, OutputDir: tt.dir})
			if code != tt.wantCode || (sim != nil) != tt.wantSim {
				t.Errorf("newSimulation = (%v, %d), want sim %v and code %d", sim != nil, code, tt.wantSim, tt.wantCode)
			}
			if sim != nil {
				sim.Close()
			}
		})
	}
}

func TestRunHeadless_FailureExitCode(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	opts := game.Options{Seed: 1, OutputDir: filepath.Join(blocker, "out")}
	if code := runHeadless(config.Default(), opts, 1, 0); code != exitFailure {
		t.Errorf("runHeadless = %d, want %d", code, exitFailure)
	}
	if code := runHeadless(config.Default(), game.Options{Seed: 1}, 3, 0); code != exitOK {
		t.Errorf("runHeadless = %d, want %d", code, exitOK)
	}
}
