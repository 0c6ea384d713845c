package cordic

import "math"

// Magnitude is the storage of a sign-magnitude value: a float64 or a scaled
// unsigned integer. Only non-negative values are ever stored.
type Magnitude interface {
	~uint64 | ~float64
}

// SignMag is a signed quantity kept as a non-negative magnitude and an
// explicit sign flag, modeling hardware without two's-complement arithmetic.
// The zero value is +0.
type SignMag[T Magnitude] struct {
	Mag T
	Neg bool
}

// Add returns a+b using only magnitude addition, comparison and subtraction.
// With opposite signs and equal magnitudes the result is a zero carrying
// the sign of a.
func Add[T Magnitude](a, b SignMag[T]) SignMag[T] {
	if a.Neg == b.Neg {
		return SignMag[T]{Mag: a.Mag + b.Mag, Neg: a.Neg}
	}
	if b.Mag > a.Mag {
		return SignMag[T]{Mag: b.Mag - a.Mag, Neg: b.Neg}
	}
	return SignMag[T]{Mag: a.Mag - b.Mag, Neg: a.Neg}
}

func (s SignMag[T]) Negate() SignMag[T] {
	return SignMag[T]{Mag: s.Mag, Neg: !s.Neg}
}

// Positive reports s > 0. Zero is not positive whatever its sign flag.
func (s SignMag[T]) Positive() bool {
	return !s.Neg && s.Mag > 0
}

// Float reconstructs the real value, dividing the magnitude by unit.
func (s SignMag[T]) Float(unit float64) float64 {
	v := float64(s.Mag) / unit
	if s.Neg {
		return -v
	}
	return v
}

// FromFloat splits v into magnitude and sign.
func FromFloat(v float64) SignMag[float64] {
	return SignMag[float64]{Mag: math.Abs(v), Neg: math.Signbit(v)}
}

// rotate runs the rotation-mode recurrence over sign-magnitude state. shift
// scales a magnitude by 2^-i; angles holds θ_i in the magnitude's unit.
func rotate[T Magnitude](x, y, z SignMag[T], angles []T, shift func(T, int) T, emit func(i int, x, y, z SignMag[T])) (SignMag[T], SignMag[T], SignMag[T]) {
	for i, theta := range angles {
		dx := SignMag[T]{Mag: shift(y.Mag, i), Neg: y.Neg}
		dy := SignMag[T]{Mag: shift(x.Mag, i), Neg: x.Neg}
		step := SignMag[T]{Mag: theta}

		if z.Positive() {
			x = Add(x, dx.Negate())
			y = Add(y, dy)
			z = Add(z, step.Negate())
		} else {
			x = Add(x, dx)
			y = Add(y, dy.Negate())
			z = Add(z, step)
		}

		if emit != nil {
			emit(i, x, y, z)
		}
	}
	return x, y, z
}
