// Package log provides structured logging for mathkit.
//
// Package: log
// Title: mathkit Logging
// Description: This package implements a structured logger with levels,
//              key-value fields, and pluggable text or JSON output. It
//              integrates with the mathkit error system so structured errors
//              log with their code and severity.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-05
// Modified: 2025-11-05
//
// Change History:
// - 2025-11-05 v0.1.0: Initial implementation with structured logging
//
// Usage:
//   import "github.com/msto63/mathkit/core/log"
//
//   logger := log.New().WithName("cplx").WithLevel(log.LevelDebug)
//   logger.Info("conversion complete", log.Fields{"format": "polar"})
package log
