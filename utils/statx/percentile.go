// File: percentile.go
// Title: Cumulative Probability, Interpolation, and Percentiles
// Description: Implements the empirical cumulative probability curve of a
//              sample, two flavors of linear interpolation (clamping and
//              NaN-outside-domain), and percentile locations derived from
//              the cumulative curve.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-08
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation

package statx

import (
	"math"
	"sort"
)

// CumulativeProbability calculates the cumulative probability curve of the
// sample x at the locations y: for each y[i], the fraction of elements of x
// that are less than or equal to it. The input slices are not modified.
func CumulativeProbability(x, y []float64) []float64 {
	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	cumProb := make([]float64, len(y))
	for i, yi := range y {
		// sorted is ascending, so the count is the insertion point after
		// the last element <= yi.
		count := sort.SearchFloat64s(sorted, yi)
		for count < len(sorted) && sorted[count] == yi {
			count++
		}
		cumProb[i] = float64(count) / float64(len(sorted))
	}
	return cumProb
}

// Interp1 linearly interpolates the monotonically increasing (x, y) data at
// x0, clamping to the boundary values outside the domain. Empty data has no
// boundary to clamp to and yields NaN.
func Interp1(x, y []float64, x0 float64) float64 {
	if len(x) == 0 || len(y) == 0 {
		return math.NaN()
	}
	if x0 < x[0] {
		return y[0]
	}
	if x0 >= x[len(x)-1] {
		return y[len(y)-1]
	}
	return interpolate(x, y, x0)
}

// Interp2 linearly interpolates the monotonically increasing (x, y) data at
// x0, returning NaN outside the domain. Empty data yields NaN.
func Interp2(x, y []float64, x0 float64) float64 {
	if len(x) == 0 || len(y) == 0 {
		return math.NaN()
	}
	if x0 < x[0] || x0 > x[len(x)-1] {
		return math.NaN()
	}
	return interpolate(x, y, x0)
}

func interpolate(x, y []float64, x0 float64) float64 {
	var i int
	for i = 0; i < len(x)-1; i++ {
		if x0 >= x[i] && x0 <= x[i+1] {
			break
		}
	}
	if i >= len(x)-1 {
		return y[len(y)-1]
	}

	dx := (x0 - x[i]) / (x[i+1] - x[i])
	return y[i] + (y[i+1]-y[i])*dx
}

// Percentile calculates the locations of the percentiles p (as fractions in
// [0, 1]) of the sample x. The cumulative probability curve is sampled at a
// hundred evenly spaced points between the sample extrema and the percentile
// locations are interpolated from it; percentiles below the curve's first
// probability step come back as NaN, as do all locations for an empty
// sample. The input slices are not modified.
func Percentile(x, p []float64) []float64 {
	if len(x) == 0 {
		locations := make([]float64, len(p))
		for i := range locations {
			locations[i] = math.NaN()
		}
		return locations
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	min := sorted[0]
	max := sorted[len(sorted)-1]

	dx := (max - min) / 99
	xval := make([]float64, 100)
	for i := range xval {
		xval[i] = min + float64(i)*dx
	}

	cumProb := CumulativeProbability(sorted, xval)

	locations := make([]float64, len(p))
	for i, pi := range p {
		locations[i] = Interp2(cumProb, xval, pi)
	}
	return locations
}
