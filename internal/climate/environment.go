// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package climate resolves the growing environment of a site from a suburb-keyed
// climate dataset.
//
// Resolution never fails: missing suburbs, missing fields, and bad overrides fall
// back to defaults and are reported as human-readable notes.
package climate

import "strings"

// Zone is a coarse climate zone used to select a plant's sowing calendar.
type Zone string

const (
	ZoneTropical    Zone = "tropical"
	ZoneSubtropical Zone = "subtropical"
	ZoneArid        Zone = "arid"
	ZoneTemperate   Zone = "temperate"
	ZoneCool        Zone = "cool"
)

// Zones lists every recognized zone.
var Zones = []Zone{ZoneTropical, ZoneSubtropical, ZoneArid, ZoneTemperate, ZoneCool}

// ParseZone parses a zone name case-insensitively.
func ParseZone(s string) (Zone, bool) {
	z := Zone(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Zones {
		if z == known {
			return z, true
		}
	}
	return "", false
}

// Thresholds used to classify an environment.
const (
	WindyKmh = 30.0
	HotC     = 30.0
	DryPct   = 35.0
)

// Default environment readings used when a suburb or a field is missing.
const (
	DefaultUVIndex      = 5.0
	DefaultTemperatureC = 20.0
	DefaultHumidityPct  = 60.0
	DefaultWindKmh      = 10.0
)

// Environment is the resolved climate context of one request. It is read-only once resolved.
type Environment struct {
	Suburb       string  `json:"suburb"`
	Zone         Zone    `json:"climate_zone"`
	Month        int     `json:"month"`
	UVIndex      float64 `json:"uv_index"`
	TemperatureC float64 `json:"temperature_c"`
	HumidityPct  float64 `json:"humidity_pct"`
	WindKmh      float64 `json:"wind_kmh"`

	// Defaulted is set when the suburb was not found and default readings were used.
	Defaulted bool `json:"defaulted"`
}

// Windy reports whether wind speed reaches the windy threshold.
func (e Environment) Windy() bool {
	return e.WindKmh >= WindyKmh
}

// Hot reports whether the temperature reaches the hot threshold.
func (e Environment) Hot() bool {
	return e.TemperatureC >= HotC
}

// Dry reports whether humidity is below the dry threshold.
func (e Environment) Dry() bool {
	return e.HumidityPct < DryPct
}

// DefaultEnvironment returns the fallback environment for zone.
func DefaultEnvironment(zone Zone) Environment {
	return Environment{
		Zone:         zone,
		UVIndex:      DefaultUVIndex,
		TemperatureC: DefaultTemperatureC,
		HumidityPct:  DefaultHumidityPct,
		WindKmh:      DefaultWindKmh,
		Defaulted:    true,
	}
}
