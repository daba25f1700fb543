// File: arith.go
// Title: Complex Core Arithmetic
// Description: Implements addition, subtraction, multiplication, division,
//              negation, conjugation, reciprocal, squaring, and the metric
//              operations (magnitude, squared magnitude, principal argument).
//              Division and reciprocal use Smith's scaled-ratio algorithm;
//              the magnitude is pre-factored to avoid overflow for large
//              components.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-02
// Modified: 2025-11-04
//
// Change History:
// - 2025-11-02 v0.1.0: Initial implementation of core arithmetic
// - 2025-11-04 v0.1.0: Division by the zero divisor now follows plain
//                      IEEE-754 rules instead of producing all-NaN output

package complexx

import (
	"math"

	"github.com/msto63/mathkit/utils/mathx"
)

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// AddReal returns z + x for a real x.
func (z Complex) AddReal(x float64) Complex {
	return Complex{re: z.re + x, im: z.im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// SubReal returns z - x for a real x.
func (z Complex) SubReal(x float64) Complex {
	return Complex{re: z.re - x, im: z.im}
}

// Mul returns the product z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// MulReal returns z scaled by a real factor.
func (z Complex) MulReal(x float64) Complex {
	return Complex{re: z.re * x, im: z.im * x}
}

// Div returns the quotient z / w computed with Smith's algorithm. A zero
// divisor does not panic: the components follow ordinary IEEE-754
// division-by-zero rules, so the caller sees infinities or NaNs and can
// test them with IsInf and IsNaN.
func (z Complex) Div(w Complex) Complex {
	return smithDiv(z.re, z.im, w.re, w.im)
}

// DivReal returns z divided by a real divisor.
func (z Complex) DivReal(x float64) Complex {
	return Complex{re: z.re / x, im: z.im / x}
}

// smithDiv divides a+bi by c+di. Scaling by the ratio of the smaller to the
// larger divisor component avoids the overflow of the textbook
// (ac+bd)/(c²+d²) formula and minimizes rounding error.
func smithDiv(a, b, c, d float64) Complex {
	if c == 0 && d == 0 {
		// Plain IEEE-754 division by zero: a finite component over zero
		// becomes an infinity, zero over zero becomes NaN.
		return Complex{re: a / c, im: b / c}
	}
	if math.Abs(c) >= math.Abs(d) {
		ratio := d / c
		scale := 1 / (c + d*ratio)
		return Complex{
			re: scale * (a + b*ratio),
			im: scale * (b - a*ratio),
		}
	}
	ratio := c / d
	scale := 1 / (c*ratio + d)
	return Complex{
		re: scale * (a*ratio + b),
		im: scale * (b*ratio - a),
	}
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Inv returns the reciprocal 1/z using the same scaled-ratio scheme as Div.
// The reciprocal of zero yields IEEE-754 infinities/NaNs, never a panic.
func (z Complex) Inv() Complex {
	c, d := z.re, z.im
	if c == 0 && d == 0 {
		return Complex{re: 1 / c, im: -d / c}
	}
	if math.Abs(c) >= math.Abs(d) {
		ratio := d / c
		scale := 1 / (c + d*ratio)
		return Complex{re: scale, im: -scale * ratio}
	}
	ratio := c / d
	scale := 1 / (c*ratio + d)
	return Complex{re: scale * ratio, im: -scale}
}

// Sqr returns z*z using the two-term closed form, which is cheaper than the
// generic product.
func (z Complex) Sqr() Complex {
	return Complex{
		re: mathx.Sqr(z.re) - mathx.Sqr(z.im),
		im: 2 * z.re * z.im,
	}
}

// Abs returns the magnitude (modulus) of z. The classic sqrt(re²+im²)
// overflows for components near the top of the float64 range, so the
// equation is pre-factored: the larger component is pulled out of the root
// and only the ratio of the smaller to the larger is squared.
func (z Complex) Abs() float64 {
	absRe := math.Abs(z.re)
	absIm := math.Abs(z.im)

	switch {
	case absRe == 0 && absIm == 0:
		return 0
	case absRe >= absIm:
		d := z.im / z.re
		return absRe * math.Sqrt(1+d*d)
	default:
		d := z.re / z.im
		return absIm * math.Sqrt(1+d*d)
	}
}

// Norm returns the squared magnitude re²+im² without taking a square root.
func (z Complex) Norm() float64 {
	return mathx.Sqr(z.re) + mathx.Sqr(z.im)
}

// Arg returns the principal argument of z in radians, measured
// counter-clockwise from the positive real axis, in the range (-π, π].
// Arg of zero is 0 by the atan2 convention.
func (z Complex) Arg() float64 {
	return math.Atan2(z.im, z.re)
}

// Phase is a synonym for Arg, kept for callers used to signal-processing
// terminology.
func (z Complex) Phase() float64 {
	return z.Arg()
}

// mulI returns i*z, a quarter turn counter-clockwise.
func (z Complex) mulI() Complex {
	return Complex{re: -z.im, im: z.re}
}

// mulNegI returns -i*z, a quarter turn clockwise.
func (z Complex) mulNegI() Complex {
	return Complex{re: z.im, im: -z.re}
}
