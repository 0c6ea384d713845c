package cordic

import "fmt"

// PowerOfTwo returns 2^n for n <= 0 by repeated halving, mirroring hardware
// without a power operator. A positive n is a defect in the caller and panics
// with an error wrapping ErrInvalidExponent.
func PowerOfTwo(n int) float64 {
	if n > 0 {
		panic(fmt.Errorf("%w: 2^%d", ErrInvalidExponent, n))
	}
	result := 1.0
	for i := 0; i < -n; i++ {
		result *= 0.5
	}
	return result
}
