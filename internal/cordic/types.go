package cordic

import (
	"fmt"
	"log/slog"
)

// Representation selects the numeric substrate of a pipeline.
type Representation string

const (
	Float         Representation = "float"
	SignMagnitude Representation = "signmag"
	Fixed         Representation = "fixed"
)

// Representations lists every supported substrate in display order.
func Representations() []Representation {
	return []Representation{Float, SignMagnitude, Fixed}
}

// ParseRepresentation maps a selector name to a Representation.
func ParseRepresentation(name string) (Representation, error) {
	for _, r := range Representations() {
		if string(r) == name {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrRepresentation, name)
}

const (
	DefaultIterations = 10
	MaxIterations     = 62

	// DefaultFracBits is the fraction width of x and y in the fixed pipeline (2.62).
	DefaultFracBits = 62
	// DefaultAngleBits is the fraction width of z in the fixed pipeline (sign.3.60).
	DefaultAngleBits = 60

	maxFracBits = 62
)

type Config struct {
	Iterations    int
	FracBits      uint
	AngleBits     uint
	ValidateRange bool
}

func DefaultConfig() Config {
	return Config{
		Iterations: DefaultIterations,
		FracBits:   DefaultFracBits,
		AngleBits:  DefaultAngleBits,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	if c.Iterations < 1 || c.Iterations > MaxIterations {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrIterations, c.Iterations, MaxIterations)
	}
	if c.FracBits < 1 || c.FracBits > maxFracBits {
		return fmt.Errorf("%w: frac bits %d (want 1..%d)", ErrFormat, c.FracBits, maxFracBits)
	}
	if c.AngleBits < 1 || c.AngleBits > maxFracBits {
		return fmt.Errorf("%w: angle bits %d (want 1..%d)", ErrFormat, c.AngleBits, maxFracBits)
	}
	return nil
}

// Result is the outcome of one rotation.
type Result struct {
	Angle          float64
	Sin            float64
	Cos            float64
	Residual       float64
	Iterations     int
	Representation Representation
}

// Step is the rotation state after iteration I, in real units.
type Step struct {
	I int
	X float64
	Y float64
	Z float64
}

func (s Step) String() string {
	return fmt.Sprintf("i=%d x=%v y=%v z=%v", s.I, s.X, s.Y, s.Z)
}

// LogValue implements slog.LogValuer for structured trace logging.
func (s Step) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("i", s.I),
		slog.Float64("x", s.X),
		slog.Float64("y", s.Y),
		slog.Float64("z", s.Z),
	)
}

// Observer receives the per-iteration trace.
type Observer interface {
	OnStep(s Step)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(s Step)

func (f ObserverFunc) OnStep(s Step) { f(s) }

// Pipeline rotates a single angle with a fixed numeric substrate.
type Pipeline interface {
	Name() Representation
	Rotate(angle float64) (Result, error)
	AddObserver(o Observer)
}
