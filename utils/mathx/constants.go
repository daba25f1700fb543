// File: constants.go
// Title: Shared Mathematical Constants
// Description: Caches frequently used mathematical constants so equations
//              read naturally and avoid recomputing logs and roots.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-28
// Modified: 2025-10-28

package mathx

import "math"

// Angle and circle constants.
const (
	HalfPi = 0.5 * math.Pi
	TwoPi  = 2 * math.Pi
)

// Logarithm scale factors: ln(x) times one of these converts to the
// corresponding base.
var (
	Ln2       = math.Log(2)
	Ln2Scale  = 1 / Ln2
	Ln10      = math.Log(10)
	Ln10Scale = 1 / Ln10
)

// Common roots.
var (
	SqrtTwo   = math.Sqrt(2)
	SqrtThree = math.Sqrt(3)
	SqrtTwoPi = math.Sqrt(TwoPi)
)

// Relative spacing bounds for float64 values.
const (
	EpsilonSmall = 1.11022302462515e-16
	EpsilonLarge = 2.2204460492503e-16
)

// EulersConstant is the Euler-Mascheroni constant γ.
const EulersConstant = 0.57721566490153286

// Lanczos coefficients for the Gamma approximation.
var gammaCoefficients = [7]float64{
	1.000000000190015,
	76.18009172947146,
	-86.50532032941677,
	24.01409824083091,
	-1.231739572450155,
	0.1208650973866179,
	-0.5395239384953e-5,
}
