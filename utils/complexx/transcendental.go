// File: transcendental.go
// Title: Complex Elementary Transcendental Functions
// Description: Implements exp, log, sqrt, pow, and the trigonometric and
//              hyperbolic functions. The square root uses the stable
//              half-angle construction from Numerical Recipes; trig and
//              hyperbolic functions decompose into two real exp/cos/sin
//              evaluations instead of calling back into the complex Exp.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-03
// Modified: 2025-11-03
//
// Change History:
// - 2025-11-03 v0.1.0: Initial implementation of transcendental functions

package complexx

import "math"

// eulerParts evaluates exp(re)·(cos(im), sin(im)), the component form of
// exp(re + i·im).
func eulerParts(re, im float64) (float64, float64) {
	scale := math.Exp(re)
	return scale * math.Cos(im), scale * math.Sin(im)
}

// Exp returns e**z using Euler's formula.
func (z Complex) Exp() Complex {
	re, im := eulerParts(z.re, z.im)
	return Complex{re: re, im: im}
}

// Log returns the principal natural logarithm (ln|z|, arg z). Log of zero
// has a -Inf real part; the imaginary part is 0 by the arg convention.
func (z Complex) Log() Complex {
	return Complex{re: math.Log(z.Abs()), im: z.Arg()}
}

// Sqrt returns the principal square root of z, whose real part is always
// ≥ 0. The half-angle construction branches on the sign of the real part so
// that the subtraction under the root never cancels; deriving the smaller
// component from the larger one keeps the result accurate near the branch
// cut, where exp(0.5·log z) loses precision.
func (z Complex) Sqrt() Complex {
	mag := z.Abs()
	if mag == 0 {
		return Zero
	}
	if z.re > 0 {
		t := math.Sqrt(0.5 * (mag + z.re))
		return Complex{re: t, im: 0.5 * z.im / t}
	}
	t := math.Sqrt(0.5 * (mag - z.re))
	if z.im < 0 {
		t = -t
	}
	return Complex{re: 0.5 * z.im / t, im: t}
}

// Pow returns z raised to a complex exponent, computed uniformly as
// exp(exponent · log z). Zero raised to an exponent with non-positive real
// part is undefined and yields NaN components; zero raised to anything else
// is zero.
func (z Complex) Pow(exponent Complex) Complex {
	if z.re == 0 && z.im == 0 {
		if exponent.re > 0 {
			return Zero
		}
		return Complex{re: math.NaN(), im: math.NaN()}
	}

	logRe := math.Log(z.Abs())
	logIm := z.Arg()

	re, im := eulerParts(
		logRe*exponent.re-logIm*exponent.im,
		logRe*exponent.im+logIm*exponent.re,
	)
	return Complex{re: re, im: im}
}

// PowReal returns z raised to a real exponent. The special case avoids
// going through a complex exponent, which would introduce a spurious
// imaginary rounding term.
func (z Complex) PowReal(exponent float64) Complex {
	if z.re == 0 && z.im == 0 {
		if exponent > 0 {
			return Zero
		}
		return Complex{re: math.NaN(), im: math.NaN()}
	}

	re, im := eulerParts(
		exponent*math.Log(z.Abs()),
		exponent*z.Arg(),
	)
	return Complex{re: re, im: im}
}

// RealPow returns a real base raised to a complex exponent. A negative base
// contributes π to the logarithm's imaginary part via atan2.
func RealPow(base float64, exponent Complex) Complex {
	if base == 0 {
		if exponent.re > 0 {
			return Zero
		}
		return Complex{re: math.NaN(), im: math.NaN()}
	}

	logRe := math.Log(math.Abs(base))
	logIm := math.Atan2(0, base)

	re, im := eulerParts(
		logRe*exponent.re-logIm*exponent.im,
		logRe*exponent.im+logIm*exponent.re,
	)
	return Complex{re: re, im: im}
}

// Sin returns the sine, from sin(z) = (exp(iz) - exp(-iz)) / 2i.
func (z Complex) Sin() Complex {
	re1, im1 := eulerParts(-z.im, z.re) // exp(i*z)
	re2, im2 := eulerParts(z.im, -z.re) // exp(-i*z)
	// Dividing the difference by 2i swaps the components.
	return Complex{re: 0.5 * (im1 - im2), im: -0.5 * (re1 - re2)}
}

// Cos returns the cosine, from cos(z) = (exp(iz) + exp(-iz)) / 2.
func (z Complex) Cos() Complex {
	re1, im1 := eulerParts(-z.im, z.re)
	re2, im2 := eulerParts(z.im, -z.re)
	return Complex{re: 0.5 * (re1 + re2), im: 0.5 * (im1 + im2)}
}

// Tan returns the tangent sin(z)/cos(z). Both halves share a single pair of
// exponential evaluations, and the division goes through Smith's algorithm.
func (z Complex) Tan() Complex {
	re1, im1 := eulerParts(-z.im, z.re)
	re2, im2 := eulerParts(z.im, -z.re)

	sin := Complex{re: 0.5 * (im1 - im2), im: -0.5 * (re1 - re2)}
	return smithDiv(sin.re, sin.im, 0.5*(re1+re2), 0.5*(im1+im2))
}

// Sinh returns the hyperbolic sine, from sinh(z) = (exp(z) - exp(-z)) / 2.
func (z Complex) Sinh() Complex {
	re1, im1 := eulerParts(z.re, z.im)
	re2, im2 := eulerParts(-z.re, -z.im)
	return Complex{re: 0.5 * (re1 - re2), im: 0.5 * (im1 - im2)}
}

// Cosh returns the hyperbolic cosine, from cosh(z) = (exp(z) + exp(-z)) / 2.
func (z Complex) Cosh() Complex {
	re1, im1 := eulerParts(z.re, z.im)
	re2, im2 := eulerParts(-z.re, -z.im)
	return Complex{re: 0.5 * (re1 + re2), im: 0.5 * (im1 + im2)}
}

// Tanh returns the hyperbolic tangent sinh(z)/cosh(z), again from a single
// pair of exponentials.
func (z Complex) Tanh() Complex {
	re1, im1 := eulerParts(z.re, z.im)
	re2, im2 := eulerParts(-z.re, -z.im)
	return smithDiv(re1-re2, im1-im2, re1+re2, im1+im2)
}
