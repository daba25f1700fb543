// File: cumprod.go
// Title: Cumulative Products
// Description: Implements running products over full slices and over
//              half-open index ranges, for accumulating gain chains and
//              probability products.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-07
// Modified: 2025-11-07

package statx

// CumProd returns the running product of x: element i of the result is the
// product of x[0..i]. The input is not modified.
func CumProd(x []float64) []float64 {
	out := make([]float64, len(x))
	product := 1.0
	for i, v := range x {
		product *= v
		out[i] = product
	}
	return out
}

// CumProdRange returns the running product of x[start:stop]. An inverted or
// out-of-bounds range yields an empty slice.
func CumProdRange(x []float64, start, stop int) []float64 {
	if start < 0 || stop > len(x) || start >= stop {
		return nil
	}
	return CumProd(x[start:stop])
}

// CumProdInt is CumProd over integer data.
func CumProdInt(x []int64) []int64 {
	out := make([]int64, len(x))
	product := int64(1)
	for i, v := range x {
		product *= v
		out[i] = product
	}
	return out
}
