// File: doc.go
// Title: Package Documentation for logicx
// Description: Package logicx provides labeled enumerations for comparison
//              and conditional logic, replacing loose integer codes.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-13
// Modified: 2025-11-13

// Package logicx implements small labeled enumerations for expressing
// comparison and conditional logic: ComparisonOperator, the
// BinaryConditionalOperator joining two conditions, and GridResolution.
//
// Each enumeration carries a stable numeric index for persistence in
// legacy integer-based settings files and a display label for user
// interfaces. The indices are non-arbitrary where they were inherited
// from existing stored data, so they must not be renumbered. All three
// types implement encoding.TextMarshaler and encoding.TextUnmarshaler
// so they round-trip through TOML and YAML configuration.
package logicx
