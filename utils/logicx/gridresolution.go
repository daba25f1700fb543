// File: gridresolution.go
// Title: Grid Resolution Enumeration
// Description: Implements the grid resolution enumeration with lowercase
//              canonical strings for persistence.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-13
// Modified: 2025-11-13
//
// Change History:
// - 2025-11-13 v0.1.0: Initial implementation

package logicx

import (
	"fmt"
	"strings"
)

// GridResolution enumerates how finely a chart or layout grid is divided.
type GridResolution int

const (
	GridOff GridResolution = iota
	GridCoarse
	GridMedium
	GridFine
)

var gridResolutionNames = map[GridResolution]string{
	GridOff:    "off",
	GridCoarse: "coarse",
	GridMedium: "medium",
	GridFine:   "fine",
}

// DefaultGridResolution returns the resolution used when no explicit choice
// has been made.
func DefaultGridResolution() GridResolution {
	return GridMedium
}

// String returns the lowercase canonical form used in settings files.
func (r GridResolution) String() string {
	if name, ok := gridResolutionNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseGridResolution resolves a canonical string back to its resolution,
// ignoring case. An empty string yields the default.
func ParseGridResolution(s string) (GridResolution, error) {
	if s == "" {
		return DefaultGridResolution(), nil
	}
	canonical := strings.ToLower(s)
	for r, name := range gridResolutionNames {
		if name == canonical {
			return r, nil
		}
	}
	return DefaultGridResolution(), fmt.Errorf("unknown grid resolution: %q", s)
}

// MarshalText implements encoding.TextMarshaler using the canonical form.
func (r GridResolution) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler accepting the canonical
// form in any case.
func (r *GridResolution) UnmarshalText(text []byte) error {
	parsed, err := ParseGridResolution(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
