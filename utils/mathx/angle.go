// File: angle.go
// Title: Degree-Based Angle Normalization
// Description: Implements unwrapping and normalization of angles expressed
//              in degrees, used for phase unwrapping and for clamping user
//              entered angles in editors and sliders.
// Author: msto63
// Version: v0.1.0
// Created: 2025-10-29
// Modified: 2025-10-29

package mathx

// UnwrapAngleDegrees unwraps an angle to [0, 360). Use this to avoid the
// ambiguity of both 0 and 360 degrees appearing in a coordinate set.
func UnwrapAngleDegrees(angleDegrees float64) float64 {
	unwrapped := angleDegrees
	for unwrapped < 0 {
		unwrapped += 360
	}
	for unwrapped >= 360 {
		unwrapped -= 360
	}
	return unwrapped
}

// NormalizeAngleDegrees normalizes an angle into a full-circle interval
// around a center value. Passing zero as the center unwraps phase into
// (-180, 180].
func NormalizeAngleDegrees(angleDegrees, centerAngleDegrees float64) float64 {
	normalized := angleDegrees
	for normalized < centerAngleDegrees-180 {
		normalized += 360
	}
	for normalized > 180-centerAngleDegrees {
		normalized -= 360
	}
	return normalized
}

// UnwrapAngleRangeDegrees unwraps an angle into the closed [min, max]
// range. When the range spans less than a full period the angle is returned
// unchanged, since unwrapping could not reach every input.
func UnwrapAngleRangeDegrees(angleDegrees, minimumAngleDegrees, maximumAngleDegrees float64) float64 {
	if maximumAngleDegrees-minimumAngleDegrees < 360 {
		return angleDegrees
	}

	unwrapped := angleDegrees
	for unwrapped < minimumAngleDegrees {
		unwrapped += 360
	}
	for unwrapped > maximumAngleDegrees {
		unwrapped -= 360
	}
	return unwrapped
}

// FlipAngleDegrees flips an angle to its opposite compass value and unwraps
// the result to [0, 360).
func FlipAngleDegrees(angleDegrees float64) float64 {
	return UnwrapAngleDegrees(angleDegrees - 180)
}
