package ccckernel

import (
	"math"
	"testing"
)

func TestCorrelate_Scenario1(t *testing.T) {
	x := []float64{1, 0, 0, 0}
	y := []float64{1, 2, 3, 4}
	want := []float64{1, 2, 3, 4}

	for tau, w := range want {
		got, err := Correlate(x, y, tau)
		if err != nil {
			t.Fatal(err)
		}
		if got != w {
			t.Errorf("R[%d] = %v, want %v", tau, got, w)
		}
	}
}

func TestCorrelate_Scenario2(t *testing.T) {
	x := []float64{1, 1, 1}
	y := []float64{1, 1, 1}

	for tau := 0; tau < 3; tau++ {
		got, err := Correlate(x, y, tau)
		if err != nil {
			t.Fatal(err)
		}
		if got != 3 {
			t.Errorf("R[%d] = %v, want 3", tau, got)
		}
	}
}

func TestCorrelate_TauZeroIsDotProduct(t *testing.T) {
	x := []float64{2, -1, 3}
	y := []float64{4, 0.5, -2}

	got, err := Correlate(x, y, 0)
	if err != nil {
		t.Fatal(err)
	}
	want := x[0]*y[0] + x[1]*y[1] + x[2]*y[2]
	if got != want {
		t.Errorf("R[0] = %v, want %v", got, want)
	}
}

func TestCorrelate_MismatchedLengths(t *testing.T) {
	if _, err := Correlate([]float64{1, 2}, []float64{1}, 0); err == nil {
		t.Fatal("expected an error for mismatched lengths")
	}
}

func TestCorrelate_TauOutOfRange(t *testing.T) {
	x := []float64{1, 2}
	if _, err := Correlate(x, x, 2); err == nil {
		t.Fatal("expected an error for tau == N")
	}
	if _, err := Correlate(x, x, -1); err == nil {
		t.Fatal("expected an error for negative tau")
	}
}

// TestCorrelate_ShiftedCopyMatchesTauOne checks that correlating x with a
// copy of itself cyclically shifted by one at tau=0 equals correlating x
// with itself at tau=1, validating the modular index math beyond the two
// fixed scenarios above.
func TestCorrelate_ShiftedCopyMatchesTauOne(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	n := len(x)

	shifted := make([]float64, n)
	for i := range shifted {
		shifted[i] = x[(i+1)%n]
	}

	r0, err := Correlate(x, shifted, 0)
	if err != nil {
		t.Fatal(err)
	}
	r1, err := Correlate(x, x, 1)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(r0-r1) > 1e-9 {
		t.Errorf("R(x,shift(x,1))[0] = %v, R(x,x)[1] = %v: should match", r0, r1)
	}
}
