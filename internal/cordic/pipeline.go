package cordic

import (
	"fmt"
	"math"
)

// New builds the pipeline selected by repr.
func New(repr Representation, cfg Config) (Pipeline, error) {
	switch repr {
	case Float:
		return NewFloat(cfg)
	case SignMagnitude:
		return NewSignMag(cfg)
	case Fixed:
		return NewFixed(cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrRepresentation, repr)
	}
}

type observers []Observer

func (o *observers) AddObserver(obs Observer) {
	if obs != nil {
		*o = append(*o, obs)
	}
}

func (o observers) emit(s Step) {
	for _, obs := range o {
		obs.OnStep(s)
	}
}

// checkAngle rejects non-finite angles always, and angles beyond the
// schedule's reach when validate is set.
func checkAngle(angle float64, t *Table, validate bool) error {
	if math.IsNaN(angle) || math.IsInf(angle, 0) {
		return &RangeError{Angle: angle, Limit: t.Convergence(), Wrapped: ErrAngleRange}
	}
	if validate && math.Abs(angle) > t.Convergence() {
		return &RangeError{Angle: angle, Limit: t.Convergence(), Wrapped: ErrAngleRange}
	}
	return nil
}

func newResult(repr Representation, t *Table, angle, x, y, z float64) Result {
	k := t.Scaling()
	return Result{
		Angle:          angle,
		Sin:            k * y,
		Cos:            k * x,
		Residual:       z,
		Iterations:     t.Len(),
		Representation: repr,
	}
}
