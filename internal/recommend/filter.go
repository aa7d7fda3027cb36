// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/prefs"
)

// Constraints is the relaxable part of the hard filter. Indoor compatibility and
// pollen sensitivity come straight from the preference set and are never relaxed.
type Constraints struct {
	// SunTolerance is the number of sun tiers a plant may differ from the site.
	SunTolerance int `json:"sun_tolerance"`

	// RequireContainer admits only container-friendly plants.
	RequireContainer bool `json:"require_container"`

	// WindExclusion removes tall or climbing plants that need support.
	WindExclusion bool `json:"wind_exclusion"`

	// Goal restricts plant categories.
	Goal prefs.Goal `json:"goal"`
}

// StrictConstraints returns the constraints of the strict pass for set.
//
//nolint:gocritic // prefs.Set passed by value to keep the filter free of shared state
func StrictConstraints(set prefs.Set) Constraints {
	return Constraints{
		SunTolerance:     0,
		RequireContainer: set.Site.Containers,
		WindExclusion:    set.Site.Windy() && !set.Site.AllowTall,
		Goal:             set.Preferences.Goal,
	}
}

// Filter returns the plants passing every hard predicate, in catalog order.
// The returned pointers reference plants and must not be modified.
//
//nolint:gocritic // prefs.Set passed by value to keep the filter free of shared state
func Filter(plants []catalog.PlantRecord, set prefs.Set, c Constraints) []*catalog.PlantRecord {
	eligible := make([]*catalog.PlantRecord, 0, len(plants))
	for i := range plants {
		if Eligible(&plants[i], set, c) {
			eligible = append(eligible, &plants[i])
		}
	}
	return eligible
}

// Eligible reports whether a single plant passes the hard filter.
//
//nolint:gocritic // prefs.Set passed by value to keep the filter free of shared state
func Eligible(p *catalog.PlantRecord, set prefs.Set, c Constraints) bool {
	if set.Site.Indoor() && !p.IndoorOK {
		return false
	}
	if c.RequireContainer && !p.ContainerOK {
		return false
	}
	if p.SunNeed.Distance(set.Site.SunExposure) > c.SunTolerance {
		return false
	}
	if !c.Goal.Admits(p.Category) {
		return false
	}
	if c.WindExclusion && windSensitive(p) {
		return false
	}
	if set.Preferences.PollenSensitive && p.Category == catalog.CategoryFlower && p.HighPollen {
		return false
	}
	return true
}

// windSensitive reports whether the plant's habit is tall or climbing without self support.
func windSensitive(p *catalog.PlantRecord) bool {
	return p.Habit.Tall() && !p.SelfSupporting
}
