// File: complex.go
// Title: Complex Number Value Type
// Description: Defines the Complex value type with constructors, accessors,
//              classification predicates, and textual formatting. Complex is
//              strictly immutable; every operation in this package returns a
//              newly constructed value and never mutates its receiver.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-02
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation of the complex value type

package complexx

import (
	"fmt"
	"math"

	"github.com/msto63/mathkit/utils/mathx"
)

// Complex represents a complex number as an immutable pair of float64
// components. The zero value is the complex number zero. Components may
// independently be finite, infinite, or NaN; no operation restricts the
// numeric range, and failures surface only through IsNaN and IsInf.
type Complex struct {
	re float64
	im float64
}

// Named constants. J is a pure synonym for I, kept for electrical
// engineering callers who reserve "i" for current.
var (
	Zero = Complex{}
	One  = Complex{re: 1}
	I    = Complex{im: 1}
	J    = I
)

// New creates a Complex from real and imaginary parts.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromReal creates a Complex from a real number. The imaginary part is zero.
func FromReal(re float64) Complex {
	return Complex{re: re}
}

// FromPolar creates a Complex from a magnitude and an angle in radians.
// The angle is reduced modulo 2π first; a negative magnitude is normalized
// by rotating the angle by π and negating the magnitude, so user input is
// accepted as-is instead of being rejected.
func FromPolar(r, theta float64) Complex {
	theta = math.Mod(theta, mathx.TwoPi)
	if r < 0 {
		theta += math.Pi
		r = -r
	}
	return Complex{
		re: r * math.Cos(theta),
		im: r * math.Sin(theta),
	}
}

// Re returns the real part.
func (z Complex) Re() float64 {
	return z.re
}

// Im returns the imaginary part.
func (z Complex) Im() float64 {
	return z.im
}

// IsNaN reports whether either component is NaN.
func (z Complex) IsNaN() bool {
	return math.IsNaN(z.re) || math.IsNaN(z.im)
}

// IsInf reports whether either component is infinite. Following the C99 and
// Java conventions, a value with one infinite and one NaN component still
// counts as infinite.
func (z Complex) IsInf() bool {
	return math.IsInf(z.re, 0) || math.IsInf(z.im, 0)
}

// String renders the value as "(re + i im)". A negative imaginary part is
// rendered as "- i v"; a negative-zero imaginary part is displayed as
// positive zero per IEEE-754 signed-zero display conventions.
func (z Complex) String() string {
	if z.im < 0 {
		return fmt.Sprintf("(%g - i %g)", z.re, -z.im)
	}
	if z.im == 0 && math.Signbit(z.im) {
		return fmt.Sprintf("(%g + i 0)", z.re)
	}
	return fmt.Sprintf("(%g + i %g)", z.re, z.im)
}
