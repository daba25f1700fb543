// File: gridresolution_test.go
// Title: Unit Tests for the Grid Resolution Enumeration
// Description: Tests for canonical strings, case-insensitive parsing with
//              the empty-string default, and text marshaling.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-13
// Modified: 2025-11-13
//
// Change History:
// - 2025-11-13 v0.1.0: Initial test implementation

package logicx

import "testing"

func TestGridResolutionString(t *testing.T) {
	tests := []struct {
		r    GridResolution
		want string
	}{
		{GridOff, "off"},
		{GridCoarse, "coarse"},
		{GridMedium, "medium"},
		{GridFine, "fine"},
		{GridResolution(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.r.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func TestParseGridResolution(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    GridResolution
		wantErr bool
	}{
		{"canonical", "fine", GridFine, false},
		{"mixed case", "Coarse", GridCoarse, false},
		{"upper case", "OFF", GridOff, false},
		{"empty yields default", "", GridMedium, false},
		{"unknown", "ultra", GridMedium, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseGridResolution(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseGridResolution(%q) expected an error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseGridResolution(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseGridResolution(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDefaultGridResolution(t *testing.T) {
	if got := DefaultGridResolution(); got != GridMedium {
		t.Errorf("DefaultGridResolution = %v, want medium", got)
	}
}

func TestGridResolutionTextRoundTrip(t *testing.T) {
	for r := range gridResolutionNames {
		text, err := r.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) error: %v", r, err)
		}

		var parsed GridResolution
		if err := parsed.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error: %v", text, err)
		}
		if parsed != r {
			t.Errorf("text round trip of %v came back as %v", r, parsed)
		}
	}
}
