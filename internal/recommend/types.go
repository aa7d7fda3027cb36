// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"context"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/prefs"
)

// Season labels attached to every recommendation.
const (
	SeasonStartNow  = "Start now"
	SeasonPlanAhead = "Plan ahead"
)

// ScoredCandidate is an eligible plant with its computed score and justifications.
type ScoredCandidate struct {
	// Plant points into the catalog and must not be modified.
	Plant *catalog.PlantRecord

	// Score is the weighted score in [0, 100], rounded to one decimal.
	Score float64

	// Why lists one justification per dimension that contributed positive credit,
	// in dimension order.
	Why []string

	// SeasonLabel is SeasonStartNow when the month is inside the sowing window.
	SeasonLabel string
}

// Request is a single recommendation request.
type Request struct {
	// Suburb selects the climate record. Empty or unknown suburbs use defaults.
	Suburb string `json:"suburb"`

	// N is the number of recommendations to return.
	// Defaults to Config.DefaultN if zero or negative; capped at Config.MaxN.
	N int `json:"n"`

	// ClimateZoneOverride replaces the suburb's climate zone when valid.
	ClimateZoneOverride string `json:"climate_zone,omitempty"`

	// Month is the current calendar month (1-12). Zero uses the climate record's month.
	Month int `json:"month,omitempty"`

	// Preferences is the raw preferences document.
	Preferences prefs.Input `json:"preferences"`

	// Weights overrides the engine's scoring weights for this request.
	Weights *Weights `json:"weights,omitempty"`

	// RequestID is a unique identifier for tracing. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Result is the engine output.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Notes           []string         `json:"notes"`
}

// Recommendation is one recommended plant.
type Recommendation struct {
	PlantName      string           `json:"plant_name"`
	ScientificName string           `json:"scientific_name"`
	PlantCategory  catalog.Category `json:"plant_category"`

	// Score is in [0, 100] with one decimal.
	Score float64 `json:"score"`

	// Why holds ordered, human-readable justifications.
	Why []string `json:"why"`

	Fit        Fit                `json:"fit"`
	Sowing     Sowing             `json:"sowing"`
	Companions catalog.Companions `json:"companions"`
	Media      Media              `json:"media"`
}

// Fit is a snapshot of the attributes used for hard filtering.
type Fit struct {
	IndoorOK    bool             `json:"indoor_ok"`
	ContainerOK bool             `json:"container_ok"`
	SunNeed     catalog.SunLevel `json:"sun_need"`
	Habit       catalog.Habit    `json:"habit"`
}

// Sowing describes when to start the plant in the active climate zone.
type Sowing struct {
	// SeasonLabel is always SeasonStartNow or SeasonPlanAhead.
	SeasonLabel string `json:"season_label"`
	ClimateZone string `json:"climate_zone"`
	Months      []int  `json:"months"`
}

// Media is the resolved plant image reference.
type Media struct {
	ImageURL string `json:"image_url"`
	HasImage bool   `json:"has_image"`
}

// Reranker modifies a ranked list for diversity or other objectives.
type Reranker interface {
	// Name returns the reranker identifier (e.g., "category_cap").
	Name() string

	// Rerank orders scored candidates and applies its secondary objective.
	// Returns at most k candidates.
	Rerank(ctx context.Context, items []ScoredCandidate, k int) []ScoredCandidate
}

// MediaResolver resolves a plant's image reference.
type MediaResolver interface {
	Resolve(plant *catalog.PlantRecord) Media
}
