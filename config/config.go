// Package config loads the editor and simulation settings from a
// YAML file, falling back to full defaults when the file is absent.
// Numeric values live as floats in the file and convert to fixed
// point once, at this boundary
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/planar/physics"
	"github.com/lixenwraith/planar/vmath"
)

type Config struct {
	// Gravity in units per second squared
	Gravity [2]float64 `yaml:"gravity"`
	// TimeStep in seconds per simulation tick
	TimeStep float64 `yaml:"time_step"`
	// Solver iteration counts, reserved for an iterative resolver
	VelocityIterations int `yaml:"velocity_iterations"`
	PositionIterations int `yaml:"position_iterations"`

	// LayerMasks maps a collision layer to the layers it tests against
	LayerMasks map[uint32]uint32 `yaml:"layer_masks"`

	Debug DebugConfig `yaml:"debug"`

	// Audio enables collision/commit feedback tones
	Audio bool `yaml:"audio"`

	// LogFile receives structured logs; the terminal UI owns stdout
	LogFile string `yaml:"log_file"`
}

type DebugConfig struct {
	ShowColliders  bool `yaml:"show_colliders"`
	ShowVelocity   bool `yaml:"show_velocity"`
	ShowSeparation bool `yaml:"show_separation"`
}

// Default mirrors the stock simulation: earth-ish gravity, ten ticks
// per second, layer 1 colliding with itself
func Default() Config {
	return Config{
		Gravity:            [2]float64{0, -10},
		TimeStep:           0.1,
		VelocityIterations: 8,
		PositionIterations: 3,
		LayerMasks:         map[uint32]uint32{1: 1},
		Debug: DebugConfig{
			ShowColliders:  true,
			ShowVelocity:   false,
			ShowSeparation: true,
		},
		Audio:   true,
		LogFile: "planar.log",
	}
}

// Load reads the file at path. A missing file is not an error: the
// defaults apply. A malformed file is an error; silently reverting a
// user's broken config hides real mistakes
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.TimeStep <= 0 {
		return cfg, fmt.Errorf("config: time_step must be positive, got %v", cfg.TimeStep)
	}
	return cfg, nil
}

// Physics converts the file-level floats into the fixed-point config
// the pipeline consumes
func (c Config) Physics() physics.Config {
	return physics.Config{
		Gravity:            vmath.V(vmath.FromFloat(c.Gravity[0]), vmath.FromFloat(c.Gravity[1])),
		TimeStep:           vmath.FromFloat(c.TimeStep),
		VelocityIterations: c.VelocityIterations,
		PositionIterations: c.PositionIterations,
	}
}

// TickInterval is the wall-clock period matching one simulation step
func (c Config) TickInterval() time.Duration {
	return time.Duration(c.TimeStep * float64(time.Second))
}

// MaskFor resolves an object's collision mask from the layer matrix,
// defaulting to everything when the layer is not listed
func (c Config) MaskFor(layer uint32) uint32 {
	if mask, ok := c.LayerMasks[layer]; ok {
		return mask
	}
	return 0xFFFFFFFF
}
