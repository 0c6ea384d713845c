package cordic

import (
	"fmt"
	"math"
)

// Table holds the elementary rotation angles θ_i = atan(2^-i) for one
// iteration count, and the gain correction Π cos(θ_i) that goes with them.
// Both are derived from the same n so they can never disagree.
type Table struct {
	angles      []float64
	scaling     float64
	convergence float64
}

// DefaultTable is the ten-step schedule.
var DefaultTable = mustTable(DefaultIterations)

func mustTable(n int) *Table {
	t, err := NewTable(n)
	if err != nil {
		panic(err)
	}
	return t
}

// NewTable precomputes the angle schedule for n iterations.
func NewTable(n int) (*Table, error) {
	if n < 1 || n > MaxIterations {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrIterations, n, MaxIterations)
	}

	t := &Table{
		angles:  make([]float64, n),
		scaling: 1,
	}
	for i := 0; i < n; i++ {
		theta := math.Atan(PowerOfTwo(-i))
		t.angles[i] = theta
		t.scaling *= math.Cos(theta)
		t.convergence += theta
	}
	return t, nil
}

func (t *Table) Len() int { return len(t.angles) }

// Angle returns θ_i.
func (t *Table) Angle(i int) float64 { return t.angles[i] }

// Smallest returns θ_{n-1}, the bound on the final residual.
func (t *Table) Smallest() float64 { return t.angles[len(t.angles)-1] }

// Angles returns a copy of the schedule.
func (t *Table) Angles() []float64 {
	out := make([]float64, len(t.angles))
	copy(out, t.angles)
	return out
}

// Scaling returns Π cos(θ_i), which removes the gain of the unnormalized steps.
func (t *Table) Scaling() float64 { return t.scaling }

// Convergence returns Σ θ_i, the largest |angle| the schedule can reach.
func (t *Table) Convergence() float64 { return t.convergence }

// Fixed returns the schedule rounded to integers in units of 2^-bits.
func (t *Table) Fixed(bits uint) []uint64 {
	out := make([]uint64, len(t.angles))
	for i, theta := range t.angles {
		out[i] = uint64(math.Round(math.Ldexp(theta, int(bits))))
	}
	return out
}
