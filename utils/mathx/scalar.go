// File: scalar.go
// Title: Scalar Math Helpers
// Description: Implements the small scalar functions missing from the
//              standard math package: squares, clamping, reciprocal
//              trigonometric functions, extra logarithms, mantissa/exponent
//              decomposition, factorial, and the Gamma function.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-28
// Modified: 2025-11-04
//
// Change History:
// - 2025-10-28 v0.1.0: Initial implementation

package mathx

import "math"

// Sqr returns x*x.
func Sqr(x float64) float64 {
	return x * x
}

// Clamp bounds value to the closed interval [min, max].
func Clamp(value, min, max float64) float64 {
	return math.Min(math.Max(value, min), math.Max(min, max))
}

// Sign returns the magnitude of x with the sign of y.
func Sign(x, y float64) float64 {
	if y < 0 {
		return -math.Abs(x)
	}
	return math.Abs(x)
}

// Sec returns the secant 1/cos(x).
func Sec(x float64) float64 {
	return 1 / math.Cos(x)
}

// Csc returns the cosecant 1/sin(x).
func Csc(x float64) float64 {
	return 1 / math.Sin(x)
}

// Cot returns the cotangent 1/tan(x).
func Cot(x float64) float64 {
	return 1 / math.Tan(x)
}

// Sinc returns sin(x)/x, with the removable singularity at zero filled in.
func Sinc(x float64) float64 {
	if math.Abs(x) < 1e-30 {
		return 1
	}
	return math.Sin(x) / x
}

// Log2 returns the base-2 logarithm of x.
func Log2(x float64) float64 {
	return math.Log(x) * Ln2Scale
}

// LogN returns the base-n logarithm of x.
func LogN(x, n float64) float64 {
	return math.Log(x) / math.Log(n)
}

// Mod returns the floored modulus of number and divisor, which keeps the
// sign of the divisor unlike math.Mod.
func Mod(number, divisor float64) float64 {
	return number - divisor*math.Floor(number/divisor)
}

// Exponent returns the exponent of number in mantissa·10^exponent form.
func Exponent(number float64) int {
	return int(math.Floor(math.Log10(math.Abs(number))))
}

// Mantissa returns the mantissa of number in mantissa·10^exponent form.
func Mantissa(number float64) float64 {
	return number / math.Pow(10, float64(Exponent(number)))
}

// Factorial returns x!. Overflow may occur as early as x = 21.
func Factorial(x int64) int64 {
	if x == 0 {
		return 1
	}
	return x * Factorial(x-1)
}

// Gamma returns the Gamma function of x via the Lanczos approximation.
// The result grows as (x-1)!, so overflow sets in above x ≈ 140; use
// LogGamma beyond that.
func Gamma(x float64) float64 {
	grp1 := x + 0.5
	grp2 := x + 5.5
	grp3 := gammaCoefficients[0]
	for i := 1; i < 7; i++ {
		grp3 += gammaCoefficients[i] / (x + float64(i))
	}
	return (math.Pow(grp2, grp1) * math.Exp(-grp2) * SqrtTwoPi * grp3) / x
}

// LogGamma returns the natural logarithm of the Gamma function of x.
func LogGamma(x float64) float64 {
	return math.Log(Gamma(x))
}
