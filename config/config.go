// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/evosim/systems"
	"github.com/pthm-cable/evosim/world"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Population PopulationConfig `yaml:"population"`
	Creature   CreatureConfig   `yaml:"creature"`
	Food       FoodConfig       `yaml:"food"`
	Behavior   BehaviorConfig   `yaml:"behavior"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// WorldConfig holds the arena rectangle.
// A zero-sized rectangle means the arena matches the screen.
type WorldConfig struct {
	XMin float64 `yaml:"x_min"`
	XMax float64 `yaml:"x_max"`
	YMin float64 `yaml:"y_min"`
	YMax float64 `yaml:"y_max"`
}

// PhysicsConfig holds integration and boundary parameters.
type PhysicsConfig struct {
	Timestep float64 `yaml:"timestep"`
	Padding  float64 `yaml:"padding"` // width of the repulsion band along each edge
	Damping  float64 `yaml:"damping"` // scales the boundary force
}

// PopulationConfig holds initial population sizes.
type PopulationConfig struct {
	Creatures int `yaml:"creatures"`
	Food      int `yaml:"food"`
}

// Range is a half-open interval [Min, Max) used for random draws.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Valid reports whether r is finite and not inverted.
func (r Range) Valid() bool {
	return !math.IsNaN(r.Min) && !math.IsNaN(r.Max) &&
		!math.IsInf(r.Min, 0) && !math.IsInf(r.Max, 0) && r.Min <= r.Max
}

// CreatureConfig holds parameters for randomly generated creatures.
type CreatureConfig struct {
	InitialHunger   float64 `yaml:"initial_hunger"`
	Strength        float64 `yaml:"strength"`
	Dexterity       float64 `yaml:"dexterity"`
	HungerRate      Range   `yaml:"hunger_rate"`
	HungerThreshold Range   `yaml:"hunger_threshold"`
}

// FoodConfig holds parameters for randomly generated food sources.
type FoodConfig struct {
	MaxAmount Range `yaml:"max_amount"`
}

// BehaviorConfig holds the creature state machine constants.
type BehaviorConfig struct {
	BaseHungerDecay    float64 `yaml:"base_hunger_decay"`
	ArrivalRadius      float64 `yaml:"arrival_radius"`
	AccelerationRadius float64 `yaml:"acceleration_radius"` // squared distance units
	WanderDistance     Range   `yaml:"wander_distance"`
	WanderHalfAngleDeg float64 `yaml:"wander_half_angle_deg"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"` // simulated seconds per window
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Bounds      world.Bounds // effective arena
	StatsTicks  int          // Telemetry.StatsWindow in ticks
	ScreenW32   float32
	ScreenH32   float32
	WanderAngle float64 // Behavior.WanderHalfAngleDeg in radians
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used. The result is validated.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.computeDerived()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	b := world.Bounds{XMin: c.World.XMin, XMax: c.World.XMax, YMin: c.World.YMin, YMax: c.World.YMax}
	if b == (world.Bounds{}) {
		b = world.Bounds{XMax: float64(c.Screen.Width), YMax: float64(c.Screen.Height)}
	}
	c.Derived.Bounds = b

	c.Derived.StatsTicks = 1
	if c.Physics.Timestep > 0 {
		c.Derived.StatsTicks = max(1, int(math.Round(c.Telemetry.StatsWindow/c.Physics.Timestep)))
	}
	c.Derived.WanderAngle = c.Behavior.WanderHalfAngleDeg * math.Pi / 180
}

// Validate reports every problem with the configuration at once.
func (c *Config) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		add("screen: size must be positive, got %dx%d", c.Screen.Width, c.Screen.Height)
	}
	if err := world.ValidateBounds(c.Derived.Bounds); err != nil {
		errs = append(errs, fmt.Errorf("world: %w", err))
	}
	if err := c.Params().Validate(); err != nil {
		errs = append(errs, fmt.Errorf("physics: %w", err))
	}

	if c.Population.Creatures < 0 || c.Population.Food < 0 {
		add("population: counts must be non-negative")
	}

	cr := c.Creature
	if cr.InitialHunger < 0 || cr.InitialHunger > world.MaxHunger {
		add("creature: initial_hunger %v outside [0, %v]", cr.InitialHunger, world.MaxHunger)
	}
	if !(cr.Strength > 0) || !(cr.Dexterity > 0) {
		add("creature: strength and dexterity must be positive")
	}
	if !cr.HungerRate.Valid() || cr.HungerRate.Min < 0 {
		add("creature: hunger_rate range [%v, %v) is invalid", cr.HungerRate.Min, cr.HungerRate.Max)
	}
	if !cr.HungerThreshold.Valid() || cr.HungerThreshold.Min < 0 || cr.HungerThreshold.Max > world.MaxHunger {
		add("creature: hunger_threshold range [%v, %v) must lie in [0, %v]",
			cr.HungerThreshold.Min, cr.HungerThreshold.Max, world.MaxHunger)
	}

	if !c.Food.MaxAmount.Valid() || !(c.Food.MaxAmount.Min > 0) {
		add("food: max_amount range [%v, %v) must be positive", c.Food.MaxAmount.Min, c.Food.MaxAmount.Max)
	}

	b := c.Behavior
	if b.BaseHungerDecay < 0 {
		add("behavior: base_hunger_decay must be non-negative")
	}
	if b.ArrivalRadius < 0 || !(b.AccelerationRadius > 0) {
		add("behavior: arrival_radius must be non-negative and acceleration_radius positive")
	}
	if !b.WanderDistance.Valid() || b.WanderDistance.Min < 0 {
		add("behavior: wander_distance range [%v, %v) is invalid", b.WanderDistance.Min, b.WanderDistance.Max)
	}
	if b.WanderHalfAngleDeg < 0 || b.WanderHalfAngleDeg > 180 {
		add("behavior: wander_half_angle_deg %v outside [0, 180]", b.WanderHalfAngleDeg)
	}

	if c.Telemetry.StatsWindow <= 0 || c.Telemetry.PerfCollectorWindow <= 0 {
		add("telemetry: stats_window and perf_collector_window must be positive")
	}

	return errors.Join(errs...)
}

// Params returns the world parameters described by the config.
func (c *Config) Params() world.Params {
	return world.Params{
		WindowWidth:  float64(c.Screen.Width),
		WindowHeight: float64(c.Screen.Height),
		Padding:      c.Physics.Padding,
		Timestep:     c.Physics.Timestep,
		Damping:      c.Physics.Damping,
	}
}

// Bounds returns the effective arena.
func (c *Config) Bounds() world.Bounds {
	return c.Derived.Bounds
}

// BehaviorParams returns the creature behavior constants.
func (c *Config) BehaviorParams() systems.Behavior {
	return systems.Behavior{
		BaseHungerDecay:    c.Behavior.BaseHungerDecay,
		ArrivalRadius:      c.Behavior.ArrivalRadius,
		AccelerationRadius: c.Behavior.AccelerationRadius,
		WanderMinDistance:  c.Behavior.WanderDistance.Min,
		WanderMaxDistance:  c.Behavior.WanderDistance.Max,
		WanderHalfAngle:    c.Derived.WanderAngle,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
