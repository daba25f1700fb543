// Package error provides structured error handling for mathkit.
//
// Package: error
// Title: mathkit Error Handling
// Description: This package implements a structured error type with error
//              codes, severity levels, and contextual details, while staying
//              compatible with Go's standard error interface and the
//              errors.Is/As unwrapping machinery.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-05
// Modified: 2025-11-05
//
// Change History:
// - 2025-11-05 v0.1.0: Initial implementation with contextual errors and codes
//
// Usage:
//   import "github.com/msto63/mathkit/core/error"
//
//   // Create a new error with context
//   err := error.New("percentile out of range").
//     WithCode(error.CodeValueOutOfRange).
//     WithDetail("percentile", 120.0)
//
//   // Wrap an existing error with context
//   wrapped := error.Wrap(err, "failed to load settings").
//     WithCode(error.CodeConfigError)
//
//   // Check error type and code
//   if error.HasCode(err, error.CodeValueOutOfRange) {
//     // Handle range errors specifically
//   }
package error
