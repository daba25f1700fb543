// File: compare.go
// Title: Tolerance Equality and Magnitude Ordering
// Description: Implements relative-tolerance equality and the magnitude
//              preorder used for sorting complex values. Exact bitwise
//              equality is deliberately not offered for arithmetic results.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation of comparison operations

package complexx

import "math"

// DefaultTolerance is the relative tolerance used by Equals.
const DefaultTolerance = 1e-13

// EqualsTol reports whether w is equal to z within the relative tolerance
// tol: both component differences must be within |tol|·|z|. A negative
// tolerance is taken as its absolute value rather than rejected. When the
// receiver is exactly zero the relative scale degenerates to zero, so the
// tolerance is applied absolutely instead; otherwise nothing could ever
// equal zero.
//
// The tolerance scales with the magnitude of the receiver only, so the
// relation is asymmetric: z.EqualsTol(w, t) may differ from
// w.EqualsTol(z, t) when the magnitudes differ greatly. This matches the
// behavior expressions ported from the original toolkit depend on and is
// intentional, not a defect.
func (z Complex) EqualsTol(w Complex, tol float64) bool {
	scaled := math.Abs(tol) * z.Abs()
	if scaled == 0 {
		scaled = math.Abs(tol)
	}
	return math.Abs(z.re-w.re) <= scaled && math.Abs(z.im-w.im) <= scaled
}

// Equals reports whether w is equal to z within DefaultTolerance. See
// EqualsTol for the asymmetry caveat.
func (z Complex) Equals(w Complex) bool {
	return z.EqualsTol(w, DefaultTolerance)
}

// Compare orders z and w by magnitude alone, returning -1, 0, or +1. No
// natural total order exists over the complex numbers, so this is only a
// preorder: distinct values of equal magnitude compare as 0, and callers
// must not treat a zero result as identity.
func (z Complex) Compare(w Complex) int {
	a, b := z.Abs(), w.Abs()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
