package main

import (
	"math"
	"testing"

	"github.com/pthm-cable/evosim/config"
)

func TestNormalizeRoundTrip(t *testing.T) {
	pv := NewParamVector()
	raw := []float64{35, 1.2}

	back := pv.Denormalize(pv.Normalize(raw))
	for i := range raw {
		if math.Abs(back[i]-raw[i]) > 1e-12 {
			t.Errorf("param %s: got %v, want %v", pv.Specs[i].Name, back[i], raw[i])
		}
	}
}

func TestClamp(t *testing.T) {
	pv := NewParamVector()
	got := pv.Clamp([]float64{-5, 3})
	if got[0] != 0 || got[1] != 2 {
		t.Errorf("Clamp = %v, want [0 2]", got)
	}
}

func TestDefaultsMatchConfig(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()

	got := pv.ExtractFromConfig(cfg)
	want := pv.DefaultVector()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("param %s: config has %v, spec default %v", pv.Specs[i].Name, got[i], want[i])
		}
	}
}

func TestApplyToConfigClamps(t *testing.T) {
	pv := NewParamVector()
	cfg := config.Default()

	pv.ApplyToConfig(cfg, []float64{150, 0.5})
	if cfg.Physics.Padding != 100 || cfg.Physics.Damping != 0.5 {
		t.Errorf("physics = %+v", cfg.Physics)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("applied config invalid: %v", err)
	}
}
