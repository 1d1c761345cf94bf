// Package config handles dicetool configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/dicer/pkg/dice/shape"
	"github.com/Faultbox/dicer/pkg/math"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all tool settings.
type Config struct {
	Die         DieConfig         `yaml:"die"`
	Generation  GenerationConfig  `yaml:"generation"`
	Orientation OrientationConfig `yaml:"orientation"`
	Roll        RollConfig        `yaml:"roll"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// DieConfig selects the die to generate.
type DieConfig struct {
	Shape      shape.Kind `yaml:"shape"`
	Size       int        `yaml:"size"`       // Distinct numerals
	Resolution int        `yaml:"resolution"` // Subdivisions per face edge
}

// GenerationConfig tunes the parallel mesh builder.
type GenerationConfig struct {
	Workers int `yaml:"workers"` // 0 means one per CPU
}

// OrientationConfig holds the directions used to present and read a die.
type OrientationConfig struct {
	Top     math.Vec3 `yaml:"top"`
	Forward math.Vec3 `yaml:"forward"`
	Observe math.Vec3 `yaml:"observe"`
}

// RollConfig holds the random roll sampler settings.
type RollConfig struct {
	Count int   `yaml:"count"`
	Seed  int64 `yaml:"seed"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config describing a ten-sided die.
func Default() *Config {
	return &Config{
		Die: DieConfig{
			Shape:      shape.Trapezohedron,
			Size:       10,
			Resolution: 1,
		},
		Generation: GenerationConfig{
			Workers: 0,
		},
		Orientation: OrientationConfig{
			Top:     math.Up,
			Forward: math.Back,
			Observe: math.Up,
		},
		Roll: RollConfig{
			Count: 10000,
			Seed:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks ranges that do not depend on the die family. Whether the
// size fits the family is left to the dice package.
func (c *Config) Validate() error {
	var errs []error
	if !c.Die.Shape.Valid() {
		errs = append(errs, fmt.Errorf("%w: die.shape %s", ErrInvalid, c.Die.Shape))
	}
	if c.Die.Size <= 0 {
		errs = append(errs, fmt.Errorf("%w: die.size %d", ErrInvalid, c.Die.Size))
	}
	if c.Die.Resolution <= 0 {
		errs = append(errs, fmt.Errorf("%w: die.resolution %d", ErrInvalid, c.Die.Resolution))
	}
	if c.Generation.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: generation.workers %d", ErrInvalid, c.Generation.Workers))
	}
	if c.Roll.Count < 0 {
		errs = append(errs, fmt.Errorf("%w: roll.count %d", ErrInvalid, c.Roll.Count))
	}

	o := c.Orientation
	for name, v := range map[string]math.Vec3{"top": o.Top, "forward": o.Forward, "observe": o.Observe} {
		if v.Length() == 0 {
			errs = append(errs, fmt.Errorf("%w: orientation.%s is zero", ErrInvalid, name))
		}
	}
	return errors.Join(errs...)
}
