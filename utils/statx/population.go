// File: population.go
// Title: Population Model Enumeration
// Description: Implements the labeled enumeration of statistical population
//              models used to select a sampling distribution in user
//              interfaces.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-07
// Modified: 2025-11-07

package statx

import "fmt"

// PopulationModel enumerates the supported sampling distributions.
type PopulationModel int

const (
	PopulationUniform PopulationModel = iota
	PopulationGaussian
	PopulationRayleigh
)

var populationLabels = map[PopulationModel]string{
	PopulationUniform:  "Uniform",
	PopulationGaussian: "Gaussian",
	PopulationRayleigh: "Rayleigh",
}

// DefaultPopulationModel returns the model presented when no explicit
// choice has been made.
func DefaultPopulationModel() PopulationModel {
	return PopulationGaussian
}

// Label returns the human-readable label, suitable for combo-box display.
func (m PopulationModel) Label() string {
	if label, ok := populationLabels[m]; ok {
		return label
	}
	return "Unknown"
}

// String returns the label so the current choice displays in its custom
// label form when hosted by a list or table cell.
func (m PopulationModel) String() string {
	return m.Label()
}

// ParsePopulationModel resolves a label back to its model.
func ParsePopulationModel(label string) (PopulationModel, error) {
	for model, l := range populationLabels {
		if l == label {
			return model, nil
		}
	}
	return DefaultPopulationModel(), fmt.Errorf("unknown population model: %q", label)
}

// Sample draws one value from the model's distribution using the given
// sampler.
func (m PopulationModel) Sample(s Sampler) float64 {
	switch m {
	case PopulationGaussian:
		return s.Gaussian()
	case PopulationRayleigh:
		return s.Rayleigh()
	default:
		return s.rng.Float64()
	}
}
