package analysis

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/cordic/internal/cordic"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrSweepRange indicates a sweep with fewer than two samples or an empty range.
var ErrSweepRange = errors.New("analysis: invalid sweep range")

// Factory builds a fresh pipeline. Each sweep worker owns the one it builds.
type Factory func() (cordic.Pipeline, error)

// FactoryFor returns a Factory for repr with cfg.
func FactoryFor(repr cordic.Representation, cfg cordic.Config) Factory {
	return func() (cordic.Pipeline, error) {
		return cordic.New(repr, cfg)
	}
}

// Sample is one rotation compared with math.Sin and math.Cos.
type Sample struct {
	Angle    float64 `csv:"angle"`
	Sin      float64 `csv:"sin"`
	Cos      float64 `csv:"cos"`
	Residual float64 `csv:"residual"`
	SinErr   float64 `csv:"sin_err"`
	CosErr   float64 `csv:"cos_err"`
}

// Angles returns n evenly spaced angles from from to to inclusive.
func Angles(from, to float64, n int) ([]float64, error) {
	if n < 2 || !(to > from) {
		return nil, fmt.Errorf("%w: [%g, %g] with %d samples", ErrSweepRange, from, to, n)
	}
	return floats.Span(make([]float64, n), from, to), nil
}

// Sweep rotates n evenly spaced angles in [from, to] and records the errors.
func Sweep(factory Factory, from, to float64, n int) ([]Sample, error) {
	angles, err := Angles(from, to, n)
	if err != nil {
		return nil, err
	}
	return SweepAngles(factory, angles)
}

// SweepAngles rotates each angle in order.
func SweepAngles(factory Factory, angles []float64) ([]Sample, error) {
	samples := make([]Sample, len(angles))

	var (
		mu       sync.Mutex
		firstErr error
	)
	ParallelFor(len(angles), 64, func(start, end int) {
		p, err := factory()
		if err == nil {
			for i := start; i < end; i++ {
				var res cordic.Result
				if res, err = p.Rotate(angles[i]); err != nil {
					break
				}
				samples[i] = newSample(res)
			}
		}
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = err
			}
			mu.Unlock()
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}

	return samples, nil
}

func newSample(res cordic.Result) Sample {
	return Sample{
		Angle:    res.Angle,
		Sin:      res.Sin,
		Cos:      res.Cos,
		Residual: res.Residual,
		SinErr:   math.Abs(res.Sin - math.Sin(res.Angle)),
		CosErr:   math.Abs(res.Cos - math.Cos(res.Angle)),
	}
}

// Stats summarizes the absolute errors of a sweep.
type Stats struct {
	Samples     int
	MaxSinErr   float64
	MaxCosErr   float64
	MeanSinErr  float64
	MeanCosErr  float64
	RMSSinErr   float64
	RMSCosErr   float64
	MaxResidual float64
}

// MaxErr returns the larger of the sine and cosine maxima.
func (s Stats) MaxErr() float64 {
	return math.Max(s.MaxSinErr, s.MaxCosErr)
}

func Summarize(samples []Sample) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	sinErr := make([]float64, len(samples))
	cosErr := make([]float64, len(samples))
	resid := make([]float64, len(samples))
	for i, s := range samples {
		sinErr[i] = s.SinErr
		cosErr[i] = s.CosErr
		resid[i] = math.Abs(s.Residual)
	}

	rootN := math.Sqrt(float64(len(samples)))
	return Stats{
		Samples:     len(samples),
		MaxSinErr:   floats.Max(sinErr),
		MaxCosErr:   floats.Max(cosErr),
		MeanSinErr:  stat.Mean(sinErr, nil),
		MeanCosErr:  stat.Mean(cosErr, nil),
		RMSSinErr:   floats.Norm(sinErr, 2) / rootN,
		RMSCosErr:   floats.Norm(cosErr, 2) / rootN,
		MaxResidual: floats.Max(resid),
	}
}
