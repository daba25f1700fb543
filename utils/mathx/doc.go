// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides scalar math helpers shared across the
//              mathkit library.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-28
// Modified: 2025-11-04

// Package mathx extends the standard math package with the scalar helpers
// the rest of mathkit builds on: squared values, clamping, the missing
// reciprocal trigonometric functions, decimal rounding and discretization
// with selectable rounding modes, grid-friendly 1-2-5 rounding, and
// degree-based angle normalization for phase unwrapping.
//
// All functions are pure and safe for concurrent use. Functions that can be
// handed malformed parameters (such as a negative decimal-place count)
// return an error; plain numeric edge cases follow IEEE-754 and are not
// errors.
package mathx
