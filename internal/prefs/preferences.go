// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package prefs decodes and normalizes the gardener's preferences document.
//
// Input mirrors the JSON document field for field. Normalize turns it into a
// typed Set, substituting documented defaults for unrecognized values and
// reporting each substitution as a note instead of failing.
package prefs

import "github.com/tomtom215/verdant/internal/catalog"

// Input is the raw preferences document as decoded from JSON.
type Input struct {
	Site        SiteInput        `json:"site"`
	Preferences PreferencesInput `json:"preferences"`
	Practical   PracticalInput   `json:"practical"`

	// Unknown holds dotted paths of keys that were present in the document but not recognized.
	Unknown []string `json:"-"`

	// Invalid holds values whose JSON type did not match the field. They are left at
	// the zero value and reported as substitutions.
	Invalid []InvalidValue `json:"-"`
}

// InvalidValue is a document value that could not be decoded into its field.
type InvalidValue struct {
	// Path is the dotted field path, e.g. "site.containers".
	Path string
	// Value is the offending JSON value as text.
	Value string
	// Default describes the fallback. Empty means the field's documented default.
	Default string
}

// SiteInput describes the physical planting site.
type SiteInput struct {
	LocationType   string   `json:"location_type,omitempty" validate:"omitempty,oneof=balcony backyard indoor patio courtyard rooftop windowsill"`
	AreaM2         float64  `json:"area_m2,omitempty" validate:"gte=0"`
	SunExposure    string   `json:"sun_exposure,omitempty" validate:"omitempty,oneof=full_sun part_shade shade"`
	WindExposure   string   `json:"wind_exposure,omitempty" validate:"omitempty,oneof=sheltered moderate windy"`
	Containers     bool     `json:"containers,omitempty"`
	ContainerSizes []string `json:"container_sizes,omitempty" validate:"dive,oneof=small medium large"`
	AllowTall      bool     `json:"allow_tall,omitempty"`
}

// PreferencesInput holds the soft preferences used for scoring.
type PreferencesInput struct {
	Goal            string   `json:"goal,omitempty" validate:"omitempty,oneof=edible ornamental mixed"`
	EdibleTypes     []string `json:"edible_types,omitempty"`
	OrnamentalTypes []string `json:"ornamental_types,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	Fragrant        bool     `json:"fragrant,omitempty"`
	Maintainability string   `json:"maintainability,omitempty" validate:"omitempty,oneof=low medium high"`
	Watering        string   `json:"watering,omitempty" validate:"omitempty,oneof=low medium high"`
	TimeToResults   string   `json:"time_to_results,omitempty" validate:"omitempty,oneof=fast medium slow"`
	SeasonIntent    string   `json:"season_intent,omitempty" validate:"omitempty,oneof=start_now plan_ahead"`
	PollenSensitive bool     `json:"pollen_sensitive,omitempty"`
}

// PracticalInput holds practical constraints. They are validated and carried but not scored.
type PracticalInput struct {
	Budget      string   `json:"budget,omitempty" validate:"omitempty,oneof=low medium high"`
	Tools       []string `json:"tools,omitempty"`
	OrganicOnly bool     `json:"organic_only,omitempty"`
}

// LocationType is where the garden is.
type LocationType string

const (
	LocationBalcony    LocationType = "balcony"
	LocationBackyard   LocationType = "backyard"
	LocationIndoor     LocationType = "indoor"
	LocationPatio      LocationType = "patio"
	LocationCourtyard  LocationType = "courtyard"
	LocationRooftop    LocationType = "rooftop"
	LocationWindowsill LocationType = "windowsill"
)

// Exposed reports whether the location is an elevated, exposed site.
func (l LocationType) Exposed() bool {
	return l == LocationBalcony || l == LocationRooftop
}

// WindExposure is how windy the site is.
type WindExposure string

const (
	WindSheltered WindExposure = "sheltered"
	WindModerate  WindExposure = "moderate"
	WindWindy     WindExposure = "windy"
)

// ContainerSize is the size class of available containers.
type ContainerSize string

const (
	ContainerSmall  ContainerSize = "small"
	ContainerMedium ContainerSize = "medium"
	ContainerLarge  ContainerSize = "large"
)

// Goal is the overall planting goal.
type Goal string

const (
	GoalEdible     Goal = "edible"
	GoalOrnamental Goal = "ornamental"
	GoalMixed      Goal = "mixed"
)

// Admits reports whether a plant category satisfies the goal.
func (g Goal) Admits(c catalog.Category) bool {
	switch g {
	case GoalEdible:
		return c.Edible()
	case GoalOrnamental:
		return !c.Edible()
	default:
		return true
	}
}

// Pace is the desired time to first results.
type Pace string

const (
	PaceFast   Pace = "fast"
	PaceMedium Pace = "medium"
	PaceSlow   Pace = "slow"
)

// MaxDays returns the longest days-to-results that satisfies the pace. Zero means any.
func (p Pace) MaxDays() int {
	switch p {
	case PaceFast:
		return 60
	case PaceMedium:
		return 120
	default:
		return 0
	}
}

// SeasonIntent says whether the gardener wants to plant now or plan ahead.
type SeasonIntent string

const (
	IntentStartNow  SeasonIntent = "start_now"
	IntentPlanAhead SeasonIntent = "plan_ahead"
)

// Set is the validated, typed preference set consumed by the engine.
type Set struct {
	Site        Site        `json:"site"`
	Preferences Preferences `json:"preferences"`
	Practical   Practical   `json:"practical"`
}

// Site holds normalized site facts.
type Site struct {
	LocationType   LocationType     `json:"location_type"`
	AreaM2         float64          `json:"area_m2"`
	SunExposure    catalog.SunLevel `json:"sun_exposure"`
	WindExposure   WindExposure     `json:"wind_exposure"`
	Containers     bool             `json:"containers"`
	ContainerSizes []ContainerSize  `json:"container_sizes"`
	AllowTall      bool             `json:"allow_tall"`
}

// Indoor reports whether the site is indoors.
func (s Site) Indoor() bool {
	return s.LocationType == LocationIndoor
}

// Windy reports whether the site is windy.
func (s Site) Windy() bool {
	return s.WindExposure == WindWindy
}

// SmallContainersOnly reports whether the only containers on offer are small.
func (s Site) SmallContainersOnly() bool {
	if !s.Containers || len(s.ContainerSizes) == 0 {
		return false
	}
	for _, size := range s.ContainerSizes {
		if size != ContainerSmall {
			return false
		}
	}
	return true
}

// Preferences holds normalized soft preferences.
type Preferences struct {
	Goal            Goal          `json:"goal"`
	EdibleTypes     []string      `json:"edible_types"`
	OrnamentalTypes []string      `json:"ornamental_types"`
	Colors          []string      `json:"colors"`
	Fragrant        bool          `json:"fragrant"`
	Maintainability catalog.Level `json:"maintainability"`
	Watering        catalog.Level `json:"watering"`
	TimeToResults   Pace          `json:"time_to_results"`
	SeasonIntent    SeasonIntent  `json:"season_intent"`
	PollenSensitive bool          `json:"pollen_sensitive"`
}

// TypeTags returns the requested edible and ornamental type tags in document order.
func (p Preferences) TypeTags() []string {
	out := make([]string, 0, len(p.EdibleTypes)+len(p.OrnamentalTypes))
	out = append(out, p.EdibleTypes...)
	return append(out, p.OrnamentalTypes...)
}

// Practical holds practical constraints.
type Practical struct {
	Budget      catalog.Level `json:"budget"`
	Tools       []string      `json:"tools"`
	OrganicOnly bool          `json:"organic_only"`
}
