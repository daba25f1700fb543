// File: doc.go
// Title: Package Documentation for vectorx
// Description: Package vectorx provides small 2D/3D vector helpers for
//              geometry code built around mathkit.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-10
// Modified: 2025-11-12

// Package vectorx implements lightweight immutable 2D and 3D vector value
// types with the geometric helpers the charting and layout code needs:
// distances, midpoints, per-axis negation, coordinate exchange, plane
// projection, in-plane rotation, and quadrant/octant classification.
//
// Vector2D bridges to complexx.Complex by reading the real and imaginary
// parts as X and Y coordinates, so phasor results can be fed straight into
// geometric operations.
package vectorx
