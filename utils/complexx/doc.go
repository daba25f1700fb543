// File: doc.go
// Title: Package Documentation for complexx
// Description: Package complexx provides a numerically careful complex
//              number type for engineering calculations.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-04

// Package complexx implements complex-number arithmetic and elementary
// functions over float64 components with numerically stable algorithms.
//
// The package exists because the naive textbook formulas are unsafe:
// sqrt(re²+im²) overflows long before its result does, the conjugate
// division formula overflows for large divisors, and pow(z, 0.5) loses
// accuracy near the branch cut. Complex therefore computes its magnitude in
// pre-factored form, divides with Smith's scaled-ratio algorithm, and takes
// square roots with the half-angle construction.
//
// Complex is an immutable value type. Every operation returns a new value;
// nothing is ever mutated, so any number of goroutines may share values
// freely without synchronization.
//
// No operation panics on degenerate input. Division by zero, log of zero,
// and similar cases propagate IEEE-754 infinities and NaNs, which callers
// inspect through IsInf and IsNaN when input validity matters:
//
//	q := complexx.New(1, 0).Div(complexx.Zero)
//	if q.IsInf() {
//	    // handle the pole
//	}
//
// Equality is never exact: Equals and EqualsTol compare under a relative
// tolerance scaled by the receiver's magnitude. Compare orders values by
// magnitude only and is a preorder, not a total order over the plane.
package complexx
