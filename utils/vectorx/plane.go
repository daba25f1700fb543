// File: plane.go
// Title: Plane Projection, Rotation, and Sector Classification
// Description: Implements coordinate exchange, projection of 3D points to
//              an orthogonal plane, in-plane rotation, and quadrant/octant
//              classification relative to an arbitrary origin.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-11
// Modified: 2025-11-12
//
// Change History:
// - 2025-11-11 v0.1.0: Initial implementation

package vectorx

import "math"

// OrthogonalAxes selects an axis pair defining an orthogonal plane.
type OrthogonalAxes int

const (
	PlaneXY OrthogonalAxes = iota
	PlaneXZ
	PlaneYZ
)

// ExchangeCoordinates swaps the two coordinates named by the plane's axis
// pair, leaving the third untouched.
func ExchangeCoordinates(p Vector3D, plane OrthogonalAxes) Vector3D {
	switch plane {
	case PlaneXY:
		return Vector3D{X: p.Y, Y: p.X, Z: p.Z}
	case PlaneXZ:
		return Vector3D{X: p.Z, Y: p.Y, Z: p.X}
	case PlaneYZ:
		return Vector3D{X: p.X, Y: p.Z, Z: p.Y}
	default:
		return Vector3D{}
	}
}

// ProjectToPlane projects a 3D point onto the plane defined by an
// orthogonal axis pair, dropping the remaining coordinate.
func ProjectToPlane(p Vector3D, plane OrthogonalAxes) Vector2D {
	switch plane {
	case PlaneXY:
		return Vector2D{X: p.X, Y: p.Y}
	case PlaneXZ:
		return Vector2D{X: p.X, Y: p.Z}
	case PlaneYZ:
		return Vector2D{X: p.Y, Y: p.Z}
	default:
		return Vector2D{}
	}
}

// RotateInPlane rotates a 3D point by the given angle within the selected
// plane. The out-of-plane coordinate of the result is zero, matching a
// projection followed by rotation.
func RotateInPlane(p Vector3D, plane OrthogonalAxes, angleRadians float64) Vector3D {
	flat := ProjectToPlane(p, plane)

	sin, cos := math.Sincos(angleRadians)
	rotated1 := flat.X*cos - flat.Y*sin
	rotated2 := flat.X*sin + flat.Y*cos

	switch plane {
	case PlaneXY:
		return Vector3D{X: rotated1, Y: rotated2}
	case PlaneXZ:
		return Vector3D{X: rotated1, Z: rotated2}
	case PlaneYZ:
		return Vector3D{Y: rotated1, Z: rotated2}
	default:
		return Vector3D{}
	}
}

// Quadrant returns the quadrant (1-4) of a 2D point relative to an origin.
// Points on the axes count toward the lower-numbered adjacent quadrant in
// y and the right half-plane in x.
func Quadrant(point, origin Vector2D) int {
	if point.X < origin.X {
		if point.Y >= origin.Y {
			return 2
		}
		return 3
	}
	if point.Y >= origin.Y {
		return 1
	}
	return 4
}

// Octant returns the octant (1-8) of a 3D point relative to an origin.
// Octants 1-4 lie at or above the origin's Z plane and follow the quadrant
// numbering; octants 5-8 mirror them below it.
func Octant(point, origin Vector3D) int {
	quadrant := Quadrant(
		Vector2D{X: point.X, Y: point.Y},
		Vector2D{X: origin.X, Y: origin.Y},
	)
	if point.Z < origin.Z {
		return quadrant + 4
	}
	return quadrant
}
