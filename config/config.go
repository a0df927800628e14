// Package config provides configuration loading and access for the gallery.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Clock       ClockConfig       `yaml:"clock"`
	Scene       SceneConfig       `yaml:"scene"`
	Orbits      OrbitsConfig      `yaml:"orbits"`
	Interaction InteractionConfig `yaml:"interaction"`
	Explosion   ExplosionConfig   `yaml:"explosion"`
	Camera      CameraConfig      `yaml:"camera"`
	Telemetry   TelemetryConfig   `yaml:"telemetry"`
	Starfield   StarfieldConfig   `yaml:"starfield"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	TargetFPS int `yaml:"target_fps"`
}

// ClockConfig holds simulation clock parameters.
type ClockConfig struct {
	MaxDelta float64 `yaml:"max_delta"` // Frame deltas above this are clamped
}

// SceneConfig holds initial body counts.
type SceneConfig struct {
	Ships     int `yaml:"ships"`
	Asteroids int `yaml:"asteroids"`
}

// Range is a closed interval for uniform random parameter draws.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// OrbitsConfig holds orbit parameter ranges per body kind.
type OrbitsConfig struct {
	MinRadius float64         `yaml:"min_radius"` // Floor for orbit radius clamping
	Ship      OrbitKindConfig `yaml:"ship"`
	Asteroid  OrbitKindConfig `yaml:"asteroid"`
}

// OrbitKindConfig holds the randomized orbit ranges for one body kind.
type OrbitKindConfig struct {
	Radius            Range   `yaml:"radius"`
	Speed             Range   `yaml:"speed"`
	BaseY             Range   `yaml:"base_y"`
	VerticalAmplitude Range   `yaml:"vertical_amplitude"`
	VerticalFrequency Range   `yaml:"vertical_frequency"`
	SpinSpeed         Range   `yaml:"spin_speed"`
	RollAmplitude     float64 `yaml:"roll_amplitude"`
	BodyRadius        float64 `yaml:"body_radius"` // Collision/render radius
}

// InteractionConfig holds click/respawn parameters.
type InteractionConfig struct {
	RespawnDelay float64 `yaml:"respawn_delay"` // Seconds from destruction to respawn
	ScorePerKill int     `yaml:"score_per_kill"`
}

// ExplosionConfig holds explosion effect parameters.
type ExplosionConfig struct {
	ParticleCount  int            `yaml:"particle_count"`
	VelocityRange  float64        `yaml:"velocity_range"` // Per-axis uniform velocity bound
	SizeMin        float64        `yaml:"size_min"`
	SizeMax        float64        `yaml:"size_max"`
	DampingFactor  float64        `yaml:"damping_factor"` // Velocity decay per reference tick
	ShrinkFactor   float64        `yaml:"shrink_factor"`  // Size decay per reference tick
	OpacityDecay   float64        `yaml:"opacity_decay"`  // Opacity loss per second
	ReferenceTick  float64        `yaml:"reference_tick"` // Tick duration decay factors are defined at
	FlashIntensity float64        `yaml:"flash_intensity"`
	Palette        []PaletteColor `yaml:"palette"`
}

// PaletteColor is an RGB color entry in the explosion palette.
type PaletteColor struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}

// CameraConfig holds orbit camera parameters.
type CameraConfig struct {
	Distance    float64 `yaml:"distance"`
	MinDistance float64 `yaml:"min_distance"`
	MaxDistance float64 `yaml:"max_distance"`
	Pitch       float64 `yaml:"pitch"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow float64 `yaml:"stats_window"`
}

// StarfieldConfig holds background starfield parameters.
type StarfieldConfig struct {
	Count  int     `yaml:"count"`
	Radius float64 `yaml:"radius"`
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	ScreenW32 float32 // Screen.Width as float32
	ScreenH32 float32 // Screen.Height as float32
	FixedDT   float64 // 1 / TargetFPS, used for headless stepping
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
	// Start with embedded defaults
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	// Load user config if provided
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

	cfg.computeDerived()

	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	if c.Screen.TargetFPS > 0 {
		c.Derived.FixedDT = 1.0 / float64(c.Screen.TargetFPS)
	} else {
		c.Derived.FixedDT = 1.0 / 60.0
	}

	// The palette needs at least one entry to draw from; fall back to a
	// plain ember orange if a user config empties it.
	if len(c.Explosion.Palette) == 0 {
		c.Explosion.Palette = []PaletteColor{{R: 255, G: 160, B: 40}}
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
