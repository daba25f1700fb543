// File: config_test.go
// Title: Unit Tests for Configuration Management
// Description: Tests for TOML/YAML parsing, dot-notation access, typed
//              getters, defaults, environment overrides, and file loading.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial test implementation

package config

import (
	"os"
	"path/filepath"
	"testing"

	kiterror "github.com/msto63/mathkit/core/error"
)

const tomlContent = `
title = "mathkit"
verbose = true

[compare]
tolerance = 1e-13
iterations = 50
mode = "relative"
`

const yamlContent = `
title: mathkit
verbose: true
compare:
  tolerance: 1.0e-13
  iterations: 50
  mode: relative
`

func TestLoadFromStringTOML(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString error: %v", err)
	}

	if got := cfg.GetString("title"); got != "mathkit" {
		t.Errorf("title = %q", got)
	}
	if got := cfg.GetBool("verbose"); !got {
		t.Error("verbose = false, want true")
	}
	if got := cfg.GetFloat("compare.tolerance"); got != 1e-13 {
		t.Errorf("compare.tolerance = %g", got)
	}
	if got := cfg.GetInt("compare.iterations"); got != 50 {
		t.Errorf("compare.iterations = %d", got)
	}
	if got := cfg.GetString("compare.mode"); got != "relative" {
		t.Errorf("compare.mode = %q", got)
	}
}

func TestLoadFromStringYAML(t *testing.T) {
	cfg, err := LoadFromString(yamlContent, FormatYAML)
	if err != nil {
		t.Fatalf("LoadFromString error: %v", err)
	}

	if got := cfg.GetFloat("compare.tolerance"); got != 1e-13 {
		t.Errorf("compare.tolerance = %g", got)
	}
	if got := cfg.GetInt("compare.iterations"); got != 50 {
		t.Errorf("compare.iterations = %d", got)
	}
}

func TestLoadFromStringInvalid(t *testing.T) {
	_, err := LoadFromString("not [ valid = toml", FormatTOML)
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if !kiterror.HasCode(err, kiterror.CodeInvalidConfig) {
		t.Errorf("error code = %v, want CodeInvalidConfig", kiterror.GetCode(err))
	}
}

func TestGetterDefaults(t *testing.T) {
	cfg, err := LoadFromString("", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString error: %v", err)
	}

	if got := cfg.GetString("missing", "fallback"); got != "fallback" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("missing", 42); got != 42 {
		t.Errorf("GetInt default = %d", got)
	}
	if got := cfg.GetBool("missing", true); !got {
		t.Error("GetBool default = false")
	}
	if got := cfg.GetFloat("missing", 2.5); got != 2.5 {
		t.Errorf("GetFloat default = %g", got)
	}
	if got := cfg.GetString("missing"); got != "" {
		t.Errorf("GetString without default = %q, want empty", got)
	}
}

func TestHasAndSet(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString error: %v", err)
	}

	if !cfg.Has("compare.tolerance") {
		t.Error("Has(compare.tolerance) = false")
	}
	if cfg.Has("compare.absent") {
		t.Error("Has(compare.absent) = true")
	}

	cfg.Set("compare.absent", 7)
	if got := cfg.GetInt("compare.absent"); got != 7 {
		t.Errorf("value after Set = %d", got)
	}

	cfg.Set("fresh.nested.key", "deep")
	if got := cfg.GetString("fresh.nested.key"); got != "deep" {
		t.Errorf("nested Set = %q", got)
	}
}

func TestEnvironmentOverride(t *testing.T) {
	cfg, err := LoadFromString(tomlContent, FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString error: %v", err)
	}

	t.Setenv("COMPARE_TOLERANCE", "1e-6")
	if got := cfg.GetFloat("compare.tolerance"); got != 1e-6 {
		t.Errorf("env override = %g, want 1e-6", got)
	}
}

func TestEnvironmentOverrideWithPrefix(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte(tomlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: "mathkit",
	})
	if err != nil {
		t.Fatalf("LoadWithOptions error: %v", err)
	}

	t.Setenv("MATHKIT_COMPARE_ITERATIONS", "9")
	if got := cfg.GetInt("compare.iterations"); got != 9 {
		t.Errorf("prefixed env override = %d, want 9", got)
	}
}

func TestLoadDetectsYAMLExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	if err := os.WriteFile(path, []byte(yamlContent), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got := cfg.GetString("title"); got != "mathkit" {
		t.Errorf("title = %q", got)
	}
	if got := cfg.FilePath(); got != path {
		t.Errorf("FilePath = %q, want %q", got, path)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if !kiterror.HasCode(err, kiterror.CodeMissingConfig) {
		t.Errorf("error code = %v, want CodeMissingConfig", kiterror.GetCode(err))
	}
}

func TestLoadEmptyPath(t *testing.T) {
	_, err := Load("  ")
	if err == nil {
		t.Fatal("expected an error for an empty path")
	}
	if !kiterror.HasCode(err, kiterror.CodeValidationFailed) {
		t.Errorf("error code = %v, want CodeValidationFailed", kiterror.GetCode(err))
	}
}

func TestDefaultsMerge(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.toml")
	if err := os.WriteFile(path, []byte("title = \"from file\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"title":   "from defaults",
			"retries": 3,
		},
	})
	if err != nil {
		t.Fatalf("LoadWithOptions error: %v", err)
	}

	// File values win over defaults; defaults fill the gaps.
	if got := cfg.GetString("title"); got != "from file" {
		t.Errorf("title = %q, want the file value", got)
	}
	if got := cfg.GetInt("retries"); got != 3 {
		t.Errorf("retries = %d, want the default", got)
	}
}
