package cordic

import (
	"errors"
	"fmt"
)

// Domain errors for rotation operations.
var (
	// ErrInvalidExponent indicates a positive power of two was requested.
	// It is raised by panic only: the rotation schedule never needs one.
	ErrInvalidExponent = errors.New("cordic: no positive powers allowed")

	// ErrIterations indicates an iteration count outside 1..MaxIterations.
	ErrIterations = errors.New("cordic: iteration count out of range")

	// ErrFormat indicates fixed-point fraction widths that do not fit a word.
	ErrFormat = errors.New("cordic: fixed-point format out of range")

	// ErrAngleRange indicates an angle the pipeline cannot represent.
	ErrAngleRange = errors.New("cordic: angle outside representable range")

	// ErrRepresentation indicates an unknown numeric representation.
	ErrRepresentation = errors.New("cordic: unknown representation")
)

// RangeError wraps an angle rejection with the offending value and the limit.
type RangeError struct {
	Angle   float64
	Limit   float64
	Wrapped error
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%v: |%g| exceeds %g", e.Wrapped, e.Angle, e.Limit)
}

func (e *RangeError) Unwrap() error {
	return e.Wrapped
}
