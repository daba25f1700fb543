// File: statistics.go
// Title: Descriptive Statistics
// Description: Implements the basic properties of a data set: extrema,
//              mean, median, central moments, sample variance and standard
//              deviation, skewness, and kurtosis. Degenerate inputs (empty
//              or single-element sets where a property needs more) return
//              zero rather than erroring, matching measurement-pipeline
//              expectations.
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

	"github.com/msto63/mathkit/utils/mathx"
)

// Minimum returns the smallest element of x, or 0 for an empty set.
func Minimum(x []float64) float64 {
	if len(x) < 1 {
		return 0
	}
	min := x[0]
	for _, v := range x[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Maximum returns the largest element of x, or 0 for an empty set.
func Maximum(x []float64) float64 {
	if len(x) < 1 {
		return 0
	}
	max := x[0]
	for _, v := range x[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Range returns the spread between the largest and smallest element.
func Range(x []float64) float64 {
	return Maximum(x) - Minimum(x)
}

// Mean returns the arithmetic mean of x, or 0 for an empty set.
func Mean(x []float64) float64 {
	if len(x) < 1 {
		return 0
	}
	sum := 0.0
	for _, v := range x {
		sum += v
	}
	return sum / float64(len(x))
}

// Median returns the middle value of x (the mean of the two middle values
// for even-length sets), or 0 for an empty set. The input is not modified.
func Median(x []float64) float64 {
	if len(x) < 1 {
		return 0
	}

	sorted := append([]float64(nil), x...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return 0.5 * (sorted[mid-1] + sorted[mid])
	}
	return sorted[mid]
}

// Moment returns the central moment of the given order. The first central
// moment is zero by definition.
func Moment(x []float64, order int) float64 {
	if order == 1 {
		return 0
	}

	mu := Mean(x)
	sum := 0.0
	for _, v := range x {
		sum += math.Pow(v-mu, float64(order))
	}
	return sum / float64(len(x))
}

// Variance returns the sample variance of x, normalizing by n-1 so it is
// the best unbiased estimate for normally distributed samples. Sets with
// fewer than two elements have variance 0.
func Variance(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	sum := 0.0
	sum2 := 0.0
	for _, v := range x {
		sum += v
		sum2 += v * v
	}

	n := float64(len(x))
	return (n*sum2 - mathx.Sqr(sum)) / (n * (n - 1))
}

// StandardDeviation returns the sample standard deviation of x.
func StandardDeviation(x []float64) float64 {
	return math.Sqrt(Variance(x))
}

// Skew returns the skewness of x: the third central moment divided by the
// third power of the (population) standard deviation.
func Skew(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	m3 := Moment(x, 3)
	sm2 := math.Sqrt(Moment(x, 2))
	return m3 / math.Pow(sm2, 3)
}

// Kurtosis returns the kurtosis of x: the fourth central moment divided by
// the fourth power of the (population) standard deviation.
func Kurtosis(x []float64) float64 {
	if len(x) < 2 {
		return 0
	}

	m4 := Moment(x, 4)
	sm2 := math.Sqrt(Moment(x, 2))
	return m4 / math.Pow(sm2, 4)
}
