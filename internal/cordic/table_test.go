package cordic

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	want := []float64{
		0.785398163397448, 0.463647609000806, 0.244978663126864,
		0.124354994546761, 0.062418809995957, 0.031239833430268,
		0.015623728620477, 0.007812341060101, 0.003906230131967,
		0.001953122516479,
	}

	if DefaultTable.Len() != len(want) {
		t.Fatalf("expected %d angles, got %d", len(want), DefaultTable.Len())
	}
	for i, w := range want {
		if math.Abs(DefaultTable.Angle(i)-w) > 1e-14 {
			t.Errorf("angle %d: expected %.15f, got %.15f", i, w, DefaultTable.Angle(i))
		}
		if math.Abs(math.Tan(DefaultTable.Angle(i))-math.Ldexp(1, -i)) > 1e-15 {
			t.Errorf("angle %d: tan does not match 2^-%d", i, i)
		}
	}

	if math.Abs(DefaultTable.Scaling()-0.607253321089875) > 1e-14 {
		t.Errorf("expected scaling 0.607253321089875, got %.15f", DefaultTable.Scaling())
	}
}

func TestTableFixedMatchesSixtyBitLiterals(t *testing.T) {
	want := []uint64{
		905502432259640320, 534549298976576448, 282441168888798112,
		143371547418228448, 71963988336308048, 36017075762092180,
		18012932708689206, 9007016009513623, 4503576721087964,
		2251796950380271,
	}

	got := DefaultTable.Fixed(60)
	for i := range want {
		// a few float64 ulps of θ_i at this scale
		const slack = 1 << 9
		diff := int64(got[i] - want[i])
		if diff < -slack || diff > slack {
			t.Errorf("fixed angle %d: expected %d, got %d", i, want[i], got[i])
		}
	}
}

func TestTableScalingTracksIterations(t *testing.T) {
	prev := 1.0
	for n := 1; n <= 20; n++ {
		tab, err := NewTable(n)
		if err != nil {
			t.Fatalf("NewTable(%d): %v", n, err)
		}
		if tab.Scaling() >= prev {
			t.Errorf("n=%d: scaling %g did not shrink from %g", n, tab.Scaling(), prev)
		}
		prev = tab.Scaling()
	}

	// the gain product converges to 1/1.64676...
	if math.Abs(prev-0.6072529350088812) > 1e-9 {
		t.Errorf("expected limit scaling ~0.607252935, got %.12f", prev)
	}
}

func TestTableAnglesIsCopy(t *testing.T) {
	tab, _ := NewTable(4)
	a := tab.Angles()
	a[0] = 42
	if tab.Angle(0) == 42 {
		t.Error("Angles exposed internal storage")
	}
}

func TestNewTableInvalid(t *testing.T) {
	for _, n := range []int{0, -1, MaxIterations + 1} {
		if _, err := NewTable(n); !errors.Is(err, ErrIterations) {
			t.Errorf("NewTable(%d): expected ErrIterations, got %v", n, err)
		}
	}
}
