package config

import (
	"fmt"
	"os"

	"github.com/san-kum/cordic/internal/cordic"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAngle          = 1.0
	DefaultRepresentation = "float"
	DefaultSweepFrom      = -1.7
	DefaultSweepTo        = 1.7
	DefaultSweepSteps     = 341
)

type Config struct {
	Angle          float64     `yaml:"angle"`
	Representation string      `yaml:"representation"`
	Iterations     int         `yaml:"iterations"`
	FracBits       uint        `yaml:"frac_bits"`
	AngleBits      uint        `yaml:"angle_bits"`
	ValidateRange  bool        `yaml:"validate_range"`
	Trace          bool        `yaml:"trace"`
	Sweep          SweepConfig `yaml:"sweep"`
}

type SweepConfig struct {
	From  float64 `yaml:"from"`
	To    float64 `yaml:"to"`
	Steps int     `yaml:"steps"`
}

func DefaultConfig() *Config {
	return &Config{
		Angle:          DefaultAngle,
		Representation: DefaultRepresentation,
		Iterations:     cordic.DefaultIterations,
		FracBits:       cordic.DefaultFracBits,
		AngleBits:      cordic.DefaultAngleBits,
		Trace:          true,
		Sweep: SweepConfig{
			From:  DefaultSweepFrom,
			To:    DefaultSweepTo,
			Steps: DefaultSweepSteps,
		},
	}
}

// Load reads a YAML file over the defaults; keys absent from the file keep
// their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the representation and the rotation parameters.
func (c *Config) Validate() error {
	if _, err := c.Repr(); err != nil {
		return err
	}
	return c.CordicConfig().Validate()
}

func (c *Config) Repr() (cordic.Representation, error) {
	return cordic.ParseRepresentation(c.Representation)
}

func (c *Config) CordicConfig() cordic.Config {
	return cordic.Config{
		Iterations:    c.Iterations,
		FracBits:      c.FracBits,
		AngleBits:     c.AngleBits,
		ValidateRange: c.ValidateRange,
	}
}

// Clone returns a copy safe to modify without touching presets.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
