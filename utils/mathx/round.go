// File: round.go
// Title: Decimal Rounding and Discretization
// Description: Implements rounding to a fixed number of decimal places with
//              selectable rounding modes, discretization to multiples of an
//              arbitrary step, and the 1-2-5 rounding used for chart grid
//              resolution.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-29
// Modified: 2025-11-04
//
// Change History:
// - 2025-10-29 v0.1.0: Initial implementation

package mathx

import (
	"errors"
	"math"
)

// RoundingMode defines how values are rounded at the cut-off digit.
type RoundingMode int

const (
	// RoundingModeHalfUp rounds halves away from zero (classroom rounding).
	RoundingModeHalfUp RoundingMode = iota

	// RoundingModeHalfDown rounds halves toward zero.
	RoundingModeHalfDown

	// RoundingModeHalfEven rounds halves to the nearest even digit
	// (banker's rounding).
	RoundingModeHalfEven

	// RoundingModeUp always rounds away from zero.
	RoundingModeUp

	// RoundingModeDown always rounds toward zero.
	RoundingModeDown
)

// ErrNegativeDecimalPlaces is returned when a rounding function is handed a
// negative decimal-place count.
var ErrNegativeDecimalPlaces = errors.New("number of decimal places must not be negative")

// RoundDecimal rounds number to the given number of decimal places with
// half-up rounding.
func RoundDecimal(number float64, decimalPlaces int) (float64, error) {
	return RoundDecimalMode(number, decimalPlaces, RoundingModeHalfUp)
}

// RoundUpDecimal rounds number away from zero at the given decimal place.
func RoundUpDecimal(number float64, decimalPlaces int) (float64, error) {
	return RoundDecimalMode(number, decimalPlaces, RoundingModeUp)
}

// RoundDownDecimal rounds number toward zero at the given decimal place.
func RoundDownDecimal(number float64, decimalPlaces int) (float64, error) {
	return RoundDecimalMode(number, decimalPlaces, RoundingModeDown)
}

// RoundDecimalMode rounds number to the given number of decimal places
// using the provided rounding mode.
func RoundDecimalMode(number float64, decimalPlaces int, mode RoundingMode) (float64, error) {
	if decimalPlaces < 0 {
		return 0, ErrNegativeDecimalPlaces
	}

	shift := math.Pow10(decimalPlaces)
	scaled := number * shift

	var rounded float64
	switch mode {
	case RoundingModeHalfUp:
		rounded = Sign(math.Floor(math.Abs(scaled)+0.5), scaled)
	case RoundingModeHalfDown:
		rounded = Sign(math.Ceil(math.Abs(scaled)-0.5), scaled)
	case RoundingModeHalfEven:
		rounded = math.RoundToEven(scaled)
	case RoundingModeUp:
		rounded = Sign(math.Ceil(math.Abs(scaled)), scaled)
	case RoundingModeDown:
		rounded = math.Trunc(scaled)
	default:
		return 0, errors.New("unknown rounding mode")
	}

	return rounded / shift, nil
}

// Discretize snaps number to the nearest multiple of multiplier. A zero
// multiplier passes the number through unchanged.
func Discretize(number, multiplier float64) float64 {
	if multiplier == 0 {
		return number
	}
	return multiplier * math.Round(number/multiplier)
}

// DiscretizeUp snaps number to the next higher multiple of multiplier.
func DiscretizeUp(number, multiplier float64) float64 {
	if multiplier == 0 {
		return number
	}
	return multiplier * math.Ceil(number/multiplier)
}

// DiscretizeDown snaps number to the next lower multiple of multiplier.
func DiscretizeDown(number, multiplier float64) float64 {
	if multiplier == 0 {
		return number
	}
	return multiplier * math.Floor(number/multiplier)
}

// RoundUp125 rounds a strictly positive value up to the nearest power of
// ten times 1, 2, or 5, the classic engineering scale for axis ticks.
func RoundUp125(val float64) float64 {
	exponent := math.Floor(math.Log10(val))
	adjusted := val * math.Pow(10, -exponent)
	switch {
	case adjusted > 5:
		adjusted = 10
	case adjusted > 2:
		adjusted = 5
	case adjusted > 1:
		adjusted = 2
	}
	return adjusted * math.Pow(10, exponent)
}

// DecimalStepSize discretizes a step size to its nearest power of ten,
// typically to pick a grid-line resolution for charts. Step sizes at or
// below 1e-10 collapse to 1e-10.
func DecimalStepSize(initialStepSize float64) float64 {
	for power := 3; power >= -10; power-- {
		threshold := math.Pow(10, float64(power))
		if initialStepSize > threshold {
			return Discretize(initialStepSize, threshold)
		}
	}
	return 1e-10
}
