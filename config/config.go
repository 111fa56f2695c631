// Package config provides configuration loading and access for the simulator.
package config

import (
	_ "embed"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/logistic/population"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulator configuration parameters.
type Config struct {
	Screen     ScreenConfig     `yaml:"screen"`
	Simulation SimulationConfig `yaml:"simulation"`
	Plot       PlotConfig       `yaml:"plot"`
	Telemetry  TelemetryConfig  `yaml:"telemetry"`
	Compare    CompareConfig    `yaml:"compare"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// SimulationConfig holds the default parameter set of a run.
type SimulationConfig struct {
	InitialPopulation float64 `yaml:"initial_population"`
	CarryingCapacity  float64 `yaml:"carrying_capacity"`
	GrowthRate        float64 `yaml:"growth_rate"`
	TimeSteps         int     `yaml:"time_steps"`
	HarvestPolicy     string  `yaml:"harvest_policy"`
	HarvestAmount     float64 `yaml:"harvest_amount"` // Read only by constant and periodic
}

// PlotConfig holds chart labels and layout.
type PlotConfig struct {
	Title        string  `yaml:"title"`
	XLabel       string  `yaml:"x_label"`
	YLabel       string  `yaml:"y_label"`
	Legend       string  `yaml:"legend"`
	MarginLeft   float64 `yaml:"margin_left"`
	MarginRight  float64 `yaml:"margin_right"`
	MarginTop    float64 `yaml:"margin_top"`
	MarginBottom float64 `yaml:"margin_bottom"`
	Ticks        int     `yaml:"ticks"`    // Tick marks per axis
	Headroom     float64 `yaml:"headroom"` // Fraction added above the y maximum
}

// TelemetryConfig holds bookmark detection thresholds.
type TelemetryConfig struct {
	CapacityTolerance    float64 `yaml:"capacity_tolerance"`     // Relative to K, >= 0
	CollapseDropFraction float64 `yaml:"collapse_drop_fraction"` // Share of the running peak lost, in (0, 1]
}

// CompareConfig lists the policies run side by side in comparison mode.
type CompareConfig struct {
	Policies []string `yaml:"policies"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32       float32                    // Screen.Width as float32
	ScreenH32       float32                    // Screen.Height as float32
	ComparePolicies []population.HarvestPolicy // Parsed Compare.Policies
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

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)

	if t := c.Telemetry.CapacityTolerance; !(t >= 0) || math.IsInf(t, 1) {
		return fmt.Errorf("telemetry.capacity_tolerance: must be a finite value >= 0, got %v", t)
	}
	if f := c.Telemetry.CollapseDropFraction; !(f > 0 && f <= 1) {
		return fmt.Errorf("telemetry.collapse_drop_fraction: must be in (0, 1], got %v", f)
	}

	if len(c.Compare.Policies) == 0 {
		c.Derived.ComparePolicies = append([]population.HarvestPolicy(nil), population.Policies...)
		return nil
	}
	c.Derived.ComparePolicies = make([]population.HarvestPolicy, 0, len(c.Compare.Policies))
	for _, name := range c.Compare.Policies {
		p, err := population.ParseHarvestPolicy(name)
		if err != nil {
			return fmt.Errorf("compare.policies: %w", err)
		}
		c.Derived.ComparePolicies = append(c.Derived.ComparePolicies, p)
	}
	return nil
}

// Params converts the simulation section into engine parameters.
// The result is not validated; population.Run does that.
func (c *Config) Params() (population.Params, error) {
	s := c.Simulation
	policy := population.HarvestNone
	if s.HarvestPolicy != "" {
		var err error
		policy, err = population.ParseHarvestPolicy(s.HarvestPolicy)
		if err != nil {
			return population.Params{}, fmt.Errorf("simulation.harvest_policy: %w", err)
		}
	}
	return population.Params{
		InitialPopulation: s.InitialPopulation,
		CarryingCapacity:  s.CarryingCapacity,
		GrowthRate:        s.GrowthRate,
		TimeSteps:         s.TimeSteps,
		Policy:            policy,
		HarvestAmount:     s.HarvestAmount,
	}, nil
}

// SetParams writes p back into the simulation section, e.g. before a snapshot.
func (c *Config) SetParams(p population.Params) {
	c.Simulation = SimulationConfig{
		InitialPopulation: p.InitialPopulation,
		CarryingCapacity:  p.CarryingCapacity,
		GrowthRate:        p.GrowthRate,
		TimeSteps:         p.TimeSteps,
		HarvestPolicy:     p.Policy.String(),
		HarvestAmount:     p.HarvestAmount,
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
