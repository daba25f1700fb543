// File: doc.go
// Title: Package Documentation for statx
// Description: Package statx provides descriptive statistics and random
//              sampling helpers for measurement data.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-08

// Package statx implements descriptive statistics over float64 samples:
// mean, median, central moments, sample variance and standard deviation,
// skewness, kurtosis, percentiles via an empirical cumulative probability
// curve, linear interpolation, and cumulative products.
//
// Random sampling (Gaussian and Rayleigh draws) goes through a Sampler
// that wraps an explicitly supplied *rand.Rand. There is no package-level
// generator: the caller owns the source, which makes sequences seedable,
// reproducible, and free of hidden shared state.
//
// Input slices are never mutated; functions that need sorted data sort a
// copy.
package statx
