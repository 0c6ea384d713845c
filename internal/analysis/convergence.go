package analysis

import (
	"math"

	"github.com/san-kum/cordic/internal/cordic"
)

// Level is the sweep outcome for one iteration count.
type Level struct {
	Iterations int
	Bound      float64
	Stats      Stats
}

// Convergence sweeps [from, to] once per iteration count in ns.
func Convergence(repr cordic.Representation, base cordic.Config, ns []int, from, to float64, steps int) ([]Level, error) {
	levels := make([]Level, 0, len(ns))
	for _, n := range ns {
		cfg := base
		cfg.Iterations = n

		table, err := cordic.NewTable(n)
		if err != nil {
			return nil, err
		}

		samples, err := Sweep(FactoryFor(repr, cfg), from, to, steps)
		if err != nil {
			return nil, err
		}

		levels = append(levels, Level{
			Iterations: n,
			Bound:      table.Smallest(),
			Stats:      Summarize(samples),
		})
	}
	return levels, nil
}

// Agreement returns the largest |Δsin| and |Δcos| between a and b over angles.
func Agreement(a, b cordic.Pipeline, angles []float64) (maxSin, maxCos float64, err error) {
	for _, theta := range angles {
		ra, err := a.Rotate(theta)
		if err != nil {
			return 0, 0, err
		}
		rb, err := b.Rotate(theta)
		if err != nil {
			return 0, 0, err
		}
		maxSin = math.Max(maxSin, math.Abs(ra.Sin-rb.Sin))
		maxCos = math.Max(maxCos, math.Abs(ra.Cos-rb.Cos))
	}
	return maxSin, maxCos, nil
}
