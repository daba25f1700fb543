// File: inverse.go
// Title: Complex Inverse Transcendental Functions
// Description: Implements the inverse trigonometric and inverse hyperbolic
//              functions as closed-form compositions of the stable Sqrt,
//              Log, Abs, Arg, and Div primitives, so they inherit the
//              overflow safety of the lower layers. Each returns the
//              principal value.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation of inverse functions

package complexx

import "math"

// Asin returns the principal inverse sine:
//
//	asin(z) = -i·log(i·z + sqrt(1 - z²))
func (z Complex) Asin() Complex {
	root := One.Sub(z.Sqr()).Sqrt()
	return z.mulI().Add(root).Log().mulNegI()
}

// Acos returns the principal inverse cosine:
//
//	acos(z) = -i·log(z + i·sqrt(1 - z²))
func (z Complex) Acos() Complex {
	root := One.Sub(z.Sqr()).Sqrt()
	return z.Add(root.mulI()).Log().mulNegI()
}

// Atan returns the principal inverse tangent:
//
//	atan(z) = (i/2)·log((i - z)/(i + z))
//
// The result is assembled directly from the argument and log-magnitude of
// the quotient instead of forming i/2 as a literal multiplier.
func (z Complex) Atan() Complex {
	w := Complex{re: -z.re, im: 1 - z.im}.Div(Complex{re: z.re, im: 1 + z.im})
	return Complex{
		re: 0.5 * w.Arg(),
		im: -0.5 * math.Log(w.Abs()),
	}
}

// Asinh returns the principal inverse hyperbolic sine:
//
//	asinh(z) = log(z + sqrt(z² + 1))
func (z Complex) Asinh() Complex {
	return z.Add(z.Sqr().Add(One).Sqrt()).Log()
}

// Acosh returns the principal inverse hyperbolic cosine:
//
//	acosh(z) = log(z + sqrt(z² - 1))
func (z Complex) Acosh() Complex {
	return z.Add(z.Sqr().Sub(One).Sqrt()).Log()
}

// Atanh returns the principal inverse hyperbolic tangent:
//
//	atanh(z) = 0.5·log((1 + z)/(1 - z))
func (z Complex) Atanh() Complex {
	return One.Add(z).Div(One.Sub(z)).Log().MulReal(0.5)
}
