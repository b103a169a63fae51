package noise

import (
	"math"
	"testing"
)

func TestElevationDeterministic(t *testing.T) {
	s1 := New(12345)
	s2 := New(12345)

	for i := 0; i < 100; i++ {
		x := float64(i) * 1.7
		y := float64(i) * 2.3
		if s1.Elevation(x, y) != s2.Elevation(x, y) {
			t.Fatalf("Elevation not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestElevationApproximateRange(t *testing.T) {
	s := New(42)

	for i := 0; i < 10000; i++ {
		x := float64(i)*3.7 - 5000
		y := float64(i)*5.3 - 5000
		v := s.Elevation(x, y)
		if v < -1.5 || v > 1.5 {
			t.Fatalf("Elevation(%f, %f) = %f, far outside [-1,1]", x, y, v)
		}
	}
}

func TestRidgedRange(t *testing.T) {
	s := New(42)

	for i := 0; i < 10000; i++ {
		x := float64(i)*3.7 - 5000
		y := float64(i)*5.3 - 5000
		v := s.Ridged(x, y, 10, 0.5, 2, 15)
		if v < -1.0 || v > 1.0 {
			t.Fatalf("Ridged(%f, %f) = %f, out of [-1,1]", x, y, v)
		}
	}
}

func TestRidgedDeterministic(t *testing.T) {
	s1 := New(99)
	s2 := New(99)

	for i := 0; i < 100; i++ {
		x := float64(i) * 1.5
		y := float64(i) * 2.5
		if s1.Ridged(x, y, 10, 0.5, 2, 15) != s2.Ridged(x, y, 10, 0.5, 2, 15) {
			t.Fatalf("Ridged not deterministic at (%f, %f)", x, y)
		}
	}
}

func TestDifferentSeedsDifferentNoise(t *testing.T) {
	s1 := New(1)
	s2 := New(2)

	different := false
	for i := 0; i < 100; i++ {
		x := float64(i) * 1.7
		y := float64(i) * 2.3
		if s1.Elevation(x, y) != s2.Elevation(x, y) {
			different = true
			break
		}
	}
	if !different {
		t.Error("different seeds should produce different noise")
	}
}

func TestElevationSmoothness(t *testing.T) {
	s := New(456)

	// Adjacent samples should not differ by more than some reasonable amount.
	prev := s.Elevation(0, 0)
	step := 0.1
	for i := 1; i < 1000; i++ {
		x := float64(i) * step
		curr := s.Elevation(x, 0)
		diff := math.Abs(curr - prev)
		if diff > 0.1 {
			t.Fatalf("noise changed too rapidly at x=%f: diff=%f", x, diff)
		}
		prev = curr
	}
}
