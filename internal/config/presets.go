package config

import (
	"math"
	"sort"
)

var Presets = map[string]*Config{
	"zero": {
		Angle: 0, Representation: "float", Iterations: 10, FracBits: 62, AngleBits: 60, Trace: true,
	},
	"unit": {
		Angle: 1, Representation: "fixed", Iterations: 10, FracBits: 62, AngleBits: 60, Trace: true,
	},
	"quarter": {
		Angle: math.Pi / 4, Representation: "float", Iterations: 10, FracBits: 62, AngleBits: 60, Trace: true,
	},
	"half_pi": {
		Angle: math.Pi / 2, Representation: "signmag", Iterations: 10, FracBits: 62, AngleBits: 60, Trace: true,
	},
	"negative": {
		Angle: -0.75, Representation: "fixed", Iterations: 10, FracBits: 62, AngleBits: 60, Trace: true,
	},
	"coarse": {
		Angle: 1, Representation: "float", Iterations: 4, FracBits: 62, AngleBits: 60, Trace: true,
	},
	"fine": {
		Angle: 1, Representation: "fixed", Iterations: 32, FracBits: 62, AngleBits: 60, Trace: false,
	},
	"q16": {
		Angle: 1, Representation: "fixed", Iterations: 16, FracBits: 16, AngleBits: 16, Trace: true,
		ValidateRange: true,
	},
}

func init() {
	for _, p := range Presets {
		p.Sweep = SweepConfig{From: DefaultSweepFrom, To: DefaultSweepTo, Steps: DefaultSweepSteps}
	}
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
