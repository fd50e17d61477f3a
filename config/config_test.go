package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pthm-cable/evosim/world"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got, want := cfg.Params(), world.DefaultParams(); got != want {
		t.Errorf("Params() = %+v, want %+v", got, want)
	}
	if got, want := cfg.Bounds(), (world.Bounds{XMax: 600, YMax: 400}); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
	if cfg.Population.Creatures != 5 || cfg.Population.Food != 10 {
		t.Errorf("population = %+v, want 5 creatures and 10 food", cfg.Population)
	}

	b := cfg.BehaviorParams()
	if b.BaseHungerDecay != 0.01 || b.ArrivalRadius != 5 || b.AccelerationRadius != 525 {
		t.Errorf("behavior = %+v", b)
	}
	if math.Abs(b.WanderHalfAngle-math.Pi/6) > 1e-12 {
		t.Errorf("wander half angle = %v, want pi/6", b.WanderHalfAngle)
	}
	if cfg.Derived.StatsTicks != 1000 {
		t.Errorf("StatsTicks = %d, want 1000", cfg.Derived.StatsTicks)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
physics:
  padding: 35
world:
  x_min: -100
  x_max: 100
  y_min: -50
  y_max: 50
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Physics.Padding != 35 {
		t.Errorf("padding = %v, want 35", cfg.Physics.Padding)
	}
	if cfg.Physics.Damping != 0.9 || cfg.Physics.Timestep != 0.01 {
		t.Errorf("unset physics keys lost their defaults: %+v", cfg.Physics)
	}
	if got, want := cfg.Bounds(), (world.Bounds{XMin: -100, XMax: 100, YMin: -50, YMax: 50}); got != want {
		t.Errorf("Bounds() = %+v, want %+v", got, want)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load of a missing file should fail")
	}
	if _, err := Load(writeConfig(t, "physics: [1, 2")); err == nil {
		t.Error("Load of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    string
		wantErr error
	}{
		{"zero timestep", "physics: {timestep: 0}", "physics", world.ErrInvalidParams},
		{"negative padding", "physics: {padding: -1}", "physics", world.ErrInvalidParams},
		{"negative damping", "physics: {damping: -0.5}", "physics", world.ErrInvalidParams},
		{"inverted bounds", "world: {x_min: 10, x_max: 5, y_min: 0, y_max: 5}", "world", world.ErrInvalidBounds},
		{"inverted hunger rate", "creature: {hunger_rate: {min: 0.5, max: 0.1}}", "hunger_rate", nil},
		{"threshold above max hunger", "creature: {hunger_threshold: {min: 25, max: 150}}", "hunger_threshold", nil},
		{"zero dexterity", "creature: {dexterity: 0}", "dexterity", nil},
		{"non-positive food", "food: {max_amount: {min: 0, max: 10}}", "max_amount", nil},
		{"negative population", "population: {creatures: -1}", "population", nil},
		{"wide wander cone", "behavior: {wander_half_angle_deg: 270}", "wander_half_angle_deg", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.yaml))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error %v is not %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := Default()
	cfg.Physics.Timestep = 0
	cfg.Creature.Dexterity = -1
	cfg.Telemetry.StatsWindow = 0

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected an error")
	}
	for _, want := range []string{"physics", "dexterity", "telemetry"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("joined error %q is missing %q", err, want)
		}
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Physics.Padding = 42
	cfg.Population.Food = 3

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatalf("WriteYAML: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.Physics.Padding != 42 || loaded.Population.Food != 3 {
		t.Errorf("loaded %+v / %+v, want padding 42 and 3 food", loaded.Physics, loaded.Population)
	}
}

func TestCfgPanicsBeforeInit(t *testing.T) {
	global = nil
	defer func() {
		if recover() == nil {
			t.Error("Cfg() should panic before Init")
		}
	}()
	Cfg()
}

func TestInit(t *testing.T) {
	t.Cleanup(func() { global = nil })
	if err := Init(""); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Cfg().Screen.Width != 600 {
		t.Errorf("screen width = %d, want 600", Cfg().Screen.Width)
	}
}
