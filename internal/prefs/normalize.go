// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package prefs

import (
	"fmt"
	"strings"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/climate"
	"github.com/tomtom215/verdant/internal/metrics"
	"github.com/tomtom215/verdant/internal/validation"
)

// enumField binds one enumerated document field to its canonicalizer and default.
// An empty def means the default is derived from the environment.
type enumField struct {
	path  string
	value func(*Input) *string
	canon func(string) string
	def   string
}

var enumFields = []enumField{
	{"site.location_type", func(in *Input) *string { return &in.Site.LocationType }, canonicalLocation, string(LocationBackyard)},
	{"site.sun_exposure", func(in *Input) *string { return &in.Site.SunExposure }, canonicalSun, catalog.SunPartShade.String()},
	{"site.wind_exposure", func(in *Input) *string { return &in.Site.WindExposure }, catalog.NormalizeToken, ""},
	{"preferences.goal", func(in *Input) *string { return &in.Preferences.Goal }, catalog.NormalizeToken, string(GoalMixed)},
	{"preferences.maintainability", func(in *Input) *string { return &in.Preferences.Maintainability }, canonicalLevel, catalog.LevelMedium.String()},
	{"preferences.watering", func(in *Input) *string { return &in.Preferences.Watering }, canonicalLevel, catalog.LevelMedium.String()},
	{"preferences.time_to_results", func(in *Input) *string { return &in.Preferences.TimeToResults }, catalog.NormalizeToken, string(PaceMedium)},
	{"preferences.season_intent", func(in *Input) *string { return &in.Preferences.SeasonIntent }, canonicalIntent, string(IntentStartNow)},
	{"practical.budget", func(in *Input) *string { return &in.Practical.Budget }, canonicalLevel, catalog.LevelMedium.String()},
}

var locationAliases = map[string]LocationType{
	"garden":      LocationBackyard,
	"yard":        LocationBackyard,
	"back_yard":   LocationBackyard,
	"window_sill": LocationWindowsill,
	"window":      LocationWindowsill,
	"roof":        LocationRooftop,
	"roof_top":    LocationRooftop,
	"terrace":     LocationPatio,
	"inside":      LocationIndoor,
	"indoors":     LocationIndoor,
}

func canonicalLocation(s string) string {
	token := catalog.NormalizeToken(s)
	if alias, ok := locationAliases[token]; ok {
		return string(alias)
	}
	return token
}

func canonicalSun(s string) string {
	if level, ok := catalog.ParseSunLevel(s); ok {
		return level.String()
	}
	return catalog.NormalizeToken(s)
}

func canonicalLevel(s string) string {
	if level, ok := catalog.ParseLevel(s); ok {
		return level.String()
	}
	return catalog.NormalizeToken(s)
}

func canonicalIntent(s string) string {
	switch token := catalog.NormalizeToken(s); token {
	case "now", "start", "startnow":
		return string(IntentStartNow)
	case "later", "plan", "planahead", "plan_later":
		return string(IntentPlanAhead)
	default:
		return token
	}
}

// Normalize validates in and converts it to a typed Set. Unrecognized values are
// replaced by their documented defaults; each replacement and each ignored key is
// reported as a note. A missing wind exposure is derived from env.
func Normalize(in Input, env climate.Environment) (Set, []string) {
	var notes []string
	for _, key := range in.Unknown {
		notes = append(notes, fmt.Sprintf("Ignored unknown preference key %q", key))
	}

	derivedWind := string(WindModerate)
	if env.Windy() {
		derivedWind = string(WindWindy)
	}

	for _, iv := range in.Invalid {
		def := iv.Default
		if def == "" {
			def = enumDefault(iv.Path, derivedWind)
		}
		notes = append(notes, substituted(fieldName(iv.Path), iv.Value, def))
	}

	w := in
	w.Site.ContainerSizes = make([]string, len(in.Site.ContainerSizes))
	for i, size := range in.Site.ContainerSizes {
		w.Site.ContainerSizes[i] = catalog.NormalizeToken(size)
	}

	raws := make([]string, len(enumFields))
	for i, f := range enumFields {
		p := f.value(&w)
		raws[i] = strings.TrimSpace(*p)
		*p = f.canon(raws[i])
	}

	verr := validation.ValidateStruct(&w)

	for i, f := range enumFields {
		p := f.value(&w)
		def := f.def
		if def == "" {
			def = derivedWind
		}
		switch {
		case verr.Has(f.path):
			notes = append(notes, substituted(fieldName(f.path), raws[i], def))
			*p = def
		case *p == "":
			*p = def
		}
	}

	if verr.Has("site.area_m2") {
		notes = append(notes, substituted("area_m2", fmt.Sprint(in.Site.AreaM2), "0"))
		w.Site.AreaM2 = 0
	}

	sizes := make([]ContainerSize, 0, len(w.Site.ContainerSizes))
	seen := make(map[ContainerSize]struct{}, len(w.Site.ContainerSizes))
	for i, size := range w.Site.ContainerSizes {
		if verr.Has(fmt.Sprintf("site.container_sizes[%d]", i)) {
			notes = append(notes, fmt.Sprintf("Unrecognized container_sizes item %q; dropped",
				strings.TrimSpace(in.Site.ContainerSizes[i])))
			metrics.RecordPreferenceDefault("container_sizes")
			continue
		}
		cs := ContainerSize(size)
		if _, dup := seen[cs]; dup {
			continue
		}
		seen[cs] = struct{}{}
		sizes = append(sizes, cs)
	}

	sun, _ := catalog.ParseSunLevel(w.Site.SunExposure)
	maintain, _ := catalog.ParseLevel(w.Preferences.Maintainability)
	watering, _ := catalog.ParseLevel(w.Preferences.Watering)
	budget, _ := catalog.ParseLevel(w.Practical.Budget)

	set := Set{
		Site: Site{
			LocationType:   LocationType(w.Site.LocationType),
			AreaM2:         w.Site.AreaM2,
			SunExposure:    sun,
			WindExposure:   WindExposure(w.Site.WindExposure),
			Containers:     w.Site.Containers,
			ContainerSizes: sizes,
			AllowTall:      w.Site.AllowTall,
		},
		Preferences: Preferences{
			Goal:            Goal(w.Preferences.Goal),
			EdibleTypes:     cleanList(w.Preferences.EdibleTypes),
			OrnamentalTypes: cleanList(w.Preferences.OrnamentalTypes),
			Colors:          cleanList(w.Preferences.Colors),
			Fragrant:        w.Preferences.Fragrant,
			Maintainability: maintain,
			Watering:        watering,
			TimeToResults:   Pace(w.Preferences.TimeToResults),
			SeasonIntent:    SeasonIntent(w.Preferences.SeasonIntent),
			PollenSensitive: w.Preferences.PollenSensitive,
		},
		Practical: Practical{
			Budget:      budget,
			Tools:       cleanList(w.Practical.Tools),
			OrganicOnly: w.Practical.OrganicOnly,
		},
	}
	return set, notes
}

// Default returns the preference set of an empty document for env.
func Default(env climate.Environment) Set {
	set, _ := Normalize(Input{}, env)
	return set
}

// enumDefault returns the documented default of the enum field at path.
func enumDefault(path, derivedWind string) string {
	for _, f := range enumFields {
		if f.path != path {
			continue
		}
		if f.def == "" {
			return derivedWind
		}
		return f.def
	}
	return ""
}

func substituted(field, value, def string) string {
	metrics.RecordPreferenceDefault(field)
	return fmt.Sprintf("Unrecognized %s %q; using %q", field, value, def)
}

func fieldName(path string) string {
	if i := strings.LastIndexByte(path, '.'); i >= 0 {
		return path[i+1:]
	}
	return path
}

// cleanList lowercases and trims items, dropping blanks and duplicates. The result is never nil.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, item := range in {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if _, dup := seen[item]; dup {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
