// Package config provides configuration loading for mathkit tools.
//
// Package: config
// Title: mathkit Configuration Management
// Description: This package implements loading, parsing, and accessing
//              configuration data from TOML and YAML files with environment
//              variable overrides and dot-notation key access.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-06
// Modified: 2025-11-06
//
// Change History:
// - 2025-11-06 v0.1.0: Initial implementation with TOML/YAML support
//
// Usage:
//   import "github.com/msto63/mathkit/core/config"
//
//   cfg, err := config.Load("cplx.toml")
//   if err != nil {
//     // handle error
//   }
//   tolerance := cfg.GetFloat("compare.tolerance", 1e-13)
package config
