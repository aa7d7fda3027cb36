// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"fmt"
	"math"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// DefaultN is the result count used when a request asks for zero or fewer.
	// Default: 5.
	DefaultN int `json:"default_n"`

	// MaxN caps the requested result count.
	// Default: 50.
	MaxN int `json:"max_n"`

	// MaxPerCategory is the diversity cap applied by the category reranker.
	// NewEngine rejects a ranker that reports a different cap.
	// Default: 2.
	MaxPerCategory int `json:"max_per_category"`

	// Weights defines the relative contribution of each scoring dimension.
	// Weights are normalized at runtime to sum to 100.
	Weights Weights `json:"weights"`
}

// Weights defines the contribution of each scoring dimension.
type Weights struct {
	// SiteFit rewards plants suited to the location, containers and wind.
	SiteFit float64 `json:"site_fit"`

	// SunFit rewards a sun need matching the site's exposure.
	SunFit float64 `json:"sun_fit"`

	// MaintenanceFit rewards plants within the gardener's effort budget.
	MaintenanceFit float64 `json:"maintenance_fit"`

	// WateringFit rewards plants within the gardener's watering tolerance.
	WateringFit float64 `json:"watering_fit"`

	// ColorFragranceFit rewards preferred colors and fragrance.
	ColorFragranceFit float64 `json:"color_fragrance_fit"`

	// TimeToResultsFit rewards plants that produce within the desired time.
	TimeToResultsFit float64 `json:"time_to_results_fit"`

	// SeasonAlignmentFit rewards plants whose sowing window includes the current month.
	SeasonAlignmentFit float64 `json:"season_alignment_fit"`

	// TypeFit rewards plants tagged with a requested edible or ornamental type.
	TypeFit float64 `json:"type_fit"`
}

// weightTotal is the sum of normalized weights and the maximum attainable score.
const weightTotal = 100.0

// Normalize returns a copy with weights rescaled to sum to 100.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Normalize() Weights {
	sum := w.SiteFit + w.SunFit + w.MaintenanceFit + w.WateringFit +
		w.ColorFragranceFit + w.TimeToResultsFit + w.SeasonAlignmentFit + w.TypeFit

	if sum <= 0 || math.IsNaN(sum) || math.IsInf(sum, 0) {
		// Equal weights if all zero (8 dimensions, each gets 12.5)
		const equalWeight = weightTotal / 8
		return Weights{
			SiteFit: equalWeight, SunFit: equalWeight, MaintenanceFit: equalWeight, WateringFit: equalWeight,
			ColorFragranceFit: equalWeight, TimeToResultsFit: equalWeight, SeasonAlignmentFit: equalWeight,
			TypeFit: equalWeight,
		}
	}

	scale := weightTotal / sum
	return Weights{
		SiteFit:            w.SiteFit * scale,
		SunFit:             w.SunFit * scale,
		MaintenanceFit:     w.MaintenanceFit * scale,
		WateringFit:        w.WateringFit * scale,
		ColorFragranceFit:  w.ColorFragranceFit * scale,
		TimeToResultsFit:   w.TimeToResultsFit * scale,
		SeasonAlignmentFit: w.SeasonAlignmentFit * scale,
		TypeFit:            w.TypeFit * scale,
	}
}

// ToMap returns the weights as a string-keyed map.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) ToMap() map[string]float64 {
	return map[string]float64{
		"site_fit":             w.SiteFit,
		"sun_fit":              w.SunFit,
		"maintenance_fit":      w.MaintenanceFit,
		"watering_fit":         w.WateringFit,
		"color_fragrance_fit":  w.ColorFragranceFit,
		"time_to_results_fit":  w.TimeToResultsFit,
		"season_alignment_fit": w.SeasonAlignmentFit,
		"type_fit":             w.TypeFit,
	}
}

// Validate checks that every weight is a finite, non-negative number.
//
//nolint:gocritic // value receiver is intentional for immutable semantics
func (w Weights) Validate() error {
	values := w.ToMap()
	for _, dim := range dimensionNames {
		v := values[dim]
		if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("weights.%s must be a non-negative number, got %f", dim, v)
		}
	}
	return nil
}

// dimensionNames lists the scoring dimensions in evaluation order.
var dimensionNames = []string{
	"site_fit",
	"sun_fit",
	"maintenance_fit",
	"watering_fit",
	"color_fragrance_fit",
	"time_to_results_fit",
	"season_alignment_fit",
	"type_fit",
}

// DefaultWeights returns the default scoring weights.
func DefaultWeights() Weights {
	return Weights{
		SiteFit:            20,
		SunFit:             20,
		MaintenanceFit:     15,
		WateringFit:        10,
		ColorFragranceFit:  10,
		TimeToResultsFit:   10,
		SeasonAlignmentFit: 10,
		TypeFit:            5,
	}
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultN:       5,
		MaxN:           50,
		MaxPerCategory: 2,
		Weights:        DefaultWeights(),
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.DefaultN < 1 {
		return fmt.Errorf("default_n must be positive, got %d", c.DefaultN)
	}
	if c.MaxN < c.DefaultN {
		return fmt.Errorf("max_n must be >= default_n, got %d < %d", c.MaxN, c.DefaultN)
	}
	if c.MaxPerCategory < 1 {
		return fmt.Errorf("max_per_category must be positive, got %d", c.MaxPerCategory)
	}
	return c.Weights.Validate()
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// Direct field copy - Weights contains only value types
	return &Config{
		DefaultN:       c.DefaultN,
		MaxN:           c.MaxN,
		MaxPerCategory: c.MaxPerCategory,
		Weights:        c.Weights,
	}
}
