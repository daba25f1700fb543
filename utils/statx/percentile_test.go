// File: percentile_test.go
// Title: Unit Tests for Cumulative Probability and Interpolation
// Description: Tests for the empirical cumulative probability curve, both
//              interpolation flavors, and percentile locations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-06 v0.1.0: Initial test implementation

package statx

import (
	"math"
	"testing"
)

func TestCumulativeProbability(t *testing.T) {
	x := []float64{1, 2, 3, 4}
	y := []float64{0.5, 1, 2.5, 4, 9}
	got := CumulativeProbability(x, y)
	want := []float64{0, 0.25, 0.5, 1, 1}

	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CumulativeProbability[%d] = %g, want %g", i, got[i], want[i])
		}
	}
}

func TestCumulativeProbabilityCountsDuplicates(t *testing.T) {
	x := []float64{1, 2, 2, 3}
	got := CumulativeProbability(x, []float64{2})
	if got[0] != 0.75 {
		t.Errorf("P(x <= 2) = %g, want 0.75", got[0])
	}
}

func TestInterp1(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 10, 40}

	tests := []struct {
		name string
		x0   float64
		want float64
	}{
		{"at a knot", 1, 10},
		{"between knots", 0.5, 5},
		{"second segment", 1.5, 25},
		{"clamps below", -1, 0},
		{"clamps above", 5, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Interp1(x, y, tt.x0); got != tt.want {
				t.Errorf("Interp1(%g) = %g, want %g", tt.x0, got, tt.want)
			}
		})
	}
}

func TestInterp2(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{0, 10, 40}

	if got := Interp2(x, y, 0.5); got != 5 {
		t.Errorf("Interp2(0.5) = %g, want 5", got)
	}
	if got := Interp2(x, y, -1); !math.IsNaN(got) {
		t.Errorf("Interp2(-1) = %g, want NaN", got)
	}
	if got := Interp2(x, y, 3); !math.IsNaN(got) {
		t.Errorf("Interp2(3) = %g, want NaN", got)
	}
	if got := Interp2(x, y, 2); got != 40 {
		t.Errorf("Interp2(2) = %g, want 40", got)
	}
}

func TestPercentileMedianOfUniformRamp(t *testing.T) {
	// A linear ramp has its p-th percentile near min + p·(max-min).
	x := make([]float64, 101)
	for i := range x {
		x[i] = float64(i)
	}

	got := Percentile(x, []float64{0.5, 0.9})
	if math.Abs(got[0]-50) > 2 {
		t.Errorf("50th percentile = %g, want ≈ 50", got[0])
	}
	if math.Abs(got[1]-90) > 2 {
		t.Errorf("90th percentile = %g, want ≈ 90", got[1])
	}
}

func TestPercentileBelowFirstStepIsNaN(t *testing.T) {
	// The cumulative curve starts at the first step height, so a smaller
	// percentile cannot be located.
	got := Percentile([]float64{1, 2, 3, 4}, []float64{0.01})
	if !math.IsNaN(got[0]) {
		t.Errorf("1st percentile = %g, want NaN", got[0])
	}
}

func TestInterpolationEmptyDataIsNaN(t *testing.T) {
	if got := Interp1(nil, nil, 0.5); !math.IsNaN(got) {
		t.Errorf("Interp1(empty) = %g, want NaN", got)
	}
	if got := Interp2(nil, nil, 0.5); !math.IsNaN(got) {
		t.Errorf("Interp2(empty) = %g, want NaN", got)
	}
}

func TestPercentileEmptySampleIsNaN(t *testing.T) {
	got := Percentile(nil, []float64{0.25, 0.5, 0.75})
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	for i, v := range got {
		if !math.IsNaN(v) {
			t.Errorf("Percentile(empty)[%d] = %g, want NaN", i, v)
		}
	}
}

func TestPercentileSingleElementDoesNotPanic(t *testing.T) {
	got := Percentile([]float64{5}, []float64{0.5})
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
}

func TestCumProd(t *testing.T) {
	got := CumProd([]float64{2, 3, 4})
	want := []float64{2, 6, 24}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CumProd[%d] = %g, want %g", i, got[i], want[i])
		}
	}
	if got := CumProd(nil); len(got) != 0 {
		t.Errorf("CumProd(nil) = %v, want empty", got)
	}
}

func TestCumProdRange(t *testing.T) {
	x := []float64{2, 3, 4, 5}
	got := CumProdRange(x, 1, 3)
	want := []float64{3, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CumProdRange[%d] = %g, want %g", i, got[i], want[i])
		}
	}

	if got := CumProdRange(x, 3, 1); got != nil {
		t.Errorf("inverted range = %v, want nil", got)
	}
	if got := CumProdRange(x, 0, 5); got != nil {
		t.Errorf("out-of-bounds range = %v, want nil", got)
	}
}

func TestCumProdInt(t *testing.T) {
	got := CumProdInt([]int64{1, 2, 3, 4})
	want := []int64{1, 2, 6, 24}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CumProdInt[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
