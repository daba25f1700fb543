// File: format_test.go
// Title: Unit Tests for Log Formatters
// Description: Tests for JSON and text formatting of log entries and format
//              parsing.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-05
// Modified: 2025-11-05
//
// Change History:
// - 2025-11-05 v0.1.0: Initial test implementation

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	if got, err := ParseFormat("json"); err != nil || got != FormatJSON {
		t.Errorf("ParseFormat(json) = %v, %v", got, err)
	}
	if got, err := ParseFormat(" TEXT "); err != nil || got != FormatText {
		t.Errorf("ParseFormat(TEXT) = %v, %v", got, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Error("ParseFormat(xml) expected an error")
	}
}

func TestFormatString(t *testing.T) {
	if FormatJSON.String() != "json" || FormatText.String() != "text" {
		t.Error("format names wrong")
	}
	if Format(99).String() != "unknown" {
		t.Error("unknown format name wrong")
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := NewEntry(LevelWarn, "tolerance fallback").
		WithFields(Field("tolerance", 1e-13)).
		WithError(errors.New("bad value"))
	entry.Logger = "compare"

	data, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded["level"] != "warn" {
		t.Errorf("level = %v", decoded["level"])
	}
	if decoded["message"] != "tolerance fallback" {
		t.Errorf("message = %v", decoded["message"])
	}
	if decoded["logger"] != "compare" {
		t.Errorf("logger = %v", decoded["logger"])
	}
	if decoded["tolerance"] != 1e-13 {
		t.Errorf("tolerance field = %v", decoded["tolerance"])
	}
	if decoded["error"] != "bad value" {
		t.Errorf("error = %v", decoded["error"])
	}
	if _, ok := decoded["timestamp"]; !ok {
		t.Error("timestamp missing")
	}
}

func TestTextFormatter(t *testing.T) {
	entry := NewEntry(LevelInfo, "computation done").
		WithFields(Field("iterations", 3))
	entry.Logger = "calc"

	data, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}

	line := string(data)
	for _, want := range []string{"[INF]", "{calc}", "computation done", "iterations=3"} {
		if !strings.Contains(line, want) {
			t.Errorf("text output missing %q: %s", want, line)
		}
	}
	if !strings.HasSuffix(line, "\n") {
		t.Error("text output is not newline-terminated")
	}
}

func TestTextFormatterDisabledTimestamp(t *testing.T) {
	formatter := NewTextFormatter()
	formatter.DisableTimestamp = true

	data, err := formatter.Format(NewEntry(LevelError, "boom"))
	if err != nil {
		t.Fatalf("Format error: %v", err)
	}
	if !strings.HasPrefix(string(data), "[ERR]") {
		t.Errorf("output should start with the level tag: %s", data)
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) is not a JSONFormatter")
	}
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(FormatText) is not a TextFormatter")
	}
	if _, ok := GetFormatter(Format(99)).(*JSONFormatter); !ok {
		t.Error("unknown format should fall back to JSON")
	}
}

func TestFieldsHelpers(t *testing.T) {
	merged := Field("a", 1).Merge(String("b", "two")).Merge(Float64("c", 3.0))
	if merged["a"] != 1 || merged["b"] != "two" || merged["c"] != 3.0 {
		t.Errorf("merged fields = %v", merged)
	}

	clone := merged.Clone()
	clone["a"] = 99
	if merged["a"] != 1 {
		t.Error("Clone shares state with the original")
	}

	if Fields(nil).Clone() != nil {
		t.Error("Clone of nil should stay nil")
	}

	errFields := Err(errors.New("x"))
	if errFields["error"] == nil {
		t.Error("Err helper did not set the error key")
	}
}
