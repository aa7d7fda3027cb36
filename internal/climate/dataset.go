// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package climate

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/validation"
)

// ErrMalformed marks a climate dataset that cannot be decoded or fails validation.
var ErrMalformed = errors.New("malformed climate dataset")

// LoadError describes a fatal problem reading a climate dataset.
type LoadError struct {
	Path   string
	Suburb string
	Err    error
}

func (e *LoadError) Error() string {
	if e.Suburb != "" {
		return fmt.Sprintf("climate %s: suburb %q: %v", e.Path, e.Suburb, e.Err)
	}
	return fmt.Sprintf("climate %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Record is one suburb entry of the dataset. Missing readings are nil.
type Record struct {
	ClimateZone  string   `json:"climate_zone" validate:"required"`
	UVIndex      *float64 `json:"uv_index" validate:"omitempty,gte=0,lte=20"`
	TemperatureC *float64 `json:"temperature_c" validate:"omitempty,gte=-60,lte=60"`
	HumidityPct  *float64 `json:"humidity_pct" validate:"omitempty,gte=0,lte=100"`
	WindKmh      *float64 `json:"wind_kmh" validate:"omitempty,gte=0"`
	Month        int      `json:"month,omitempty" validate:"gte=0,lte=12"`
}

type entry struct {
	name   string
	zone   Zone
	record Record
}

// Dataset is an immutable suburb-keyed climate lookup table.
type Dataset struct {
	entries     map[string]entry
	defaultZone Zone
}

// NormalizeSuburb folds case and whitespace so lookups are forgiving.
func NormalizeSuburb(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// LoadDataset reads and validates a JSON climate dataset.
// An empty defaultZone means temperate.
func LoadDataset(path string, defaultZone Zone) (*Dataset, error) {
	data, err := os.ReadFile(path) //nolint:gosec // dataset path comes from operator input
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return ParseDataset(path, data, defaultZone)
}

// ParseDataset decodes a JSON climate dataset. name is used only for error reporting.
func ParseDataset(name string, data []byte, defaultZone Zone) (*Dataset, error) {
	var raw map[string]Record
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	if raw == nil {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("%w: top level must be an object", ErrMalformed)}
	}
	return newDataset(name, raw, defaultZone)
}

// NewDataset builds a dataset from in-memory records.
func NewDataset(records map[string]Record, defaultZone Zone) (*Dataset, error) {
	return newDataset("memory", records, defaultZone)
}

func newDataset(name string, records map[string]Record, defaultZone Zone) (*Dataset, error) {
	if defaultZone == "" {
		defaultZone = ZoneTemperate
	}
	if _, ok := ParseZone(string(defaultZone)); !ok {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("%w: unknown default zone %q", ErrMalformed, defaultZone)}
	}

	suburbs := make([]string, 0, len(records))
	for suburb := range records {
		suburbs = append(suburbs, suburb)
	}
	sort.Strings(suburbs)

	d := &Dataset{entries: make(map[string]entry, len(records)), defaultZone: defaultZone}
	for _, suburb := range suburbs {
		rec := records[suburb]
		key := NormalizeSuburb(suburb)
		if key == "" {
			return nil, &LoadError{Path: name, Suburb: suburb, Err: fmt.Errorf("%w: empty suburb name", ErrMalformed)}
		}
		if prev, dup := d.entries[key]; dup {
			return nil, &LoadError{Path: name, Suburb: suburb, Err: fmt.Errorf("%w: duplicates %q", ErrMalformed, prev.name)}
		}
		if verr := validation.ValidateStruct(&rec); verr != nil {
			return nil, &LoadError{Path: name, Suburb: suburb, Err: fmt.Errorf("%w: %v", ErrMalformed, verr)}
		}
		zone, ok := ParseZone(rec.ClimateZone)
		if !ok {
			return nil, &LoadError{Path: name, Suburb: suburb, Err: fmt.Errorf("%w: unknown climate_zone %q", ErrMalformed, rec.ClimateZone)}
		}
		d.entries[key] = entry{name: strings.TrimSpace(suburb), zone: zone, record: rec}
	}
	return d, nil
}

// Len returns the number of suburbs in the dataset.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.entries)
}

// DefaultZone returns the zone used for unknown suburbs.
func (d *Dataset) DefaultZone() Zone {
	if d == nil || d.defaultZone == "" {
		return ZoneTemperate
	}
	return d.defaultZone
}

// Lookup returns the record for suburb.
func (d *Dataset) Lookup(suburb string) (Record, bool) {
	if d == nil {
		return Record{}, false
	}
	e, ok := d.entries[NormalizeSuburb(suburb)]
	return e.record, ok
}

// Resolve returns the environment for suburb. A valid override replaces the zone.
// month in 1..12 wins over the dataset's month; otherwise January is assumed.
// Resolve never fails; every fallback is described in the returned notes.
func (d *Dataset) Resolve(suburb, override string, month int) (Environment, []string) {
	var notes []string

	env, found := d.lookupEnvironment(suburb, &notes)
	if !found {
		if strings.TrimSpace(suburb) == "" {
			notes = append(notes, fmt.Sprintf("No suburb provided; using %s defaults", env.Zone))
		} else {
			notes = append(notes, fmt.Sprintf("Climate data for suburb %q not found; using %s defaults",
				strings.TrimSpace(suburb), env.Zone))
		}
	}

	if override = strings.TrimSpace(override); override != "" {
		if zone, ok := ParseZone(override); ok {
			env.Zone = zone
			notes = append(notes, fmt.Sprintf("Climate zone overridden to %s", zone))
		} else {
			notes = append(notes, fmt.Sprintf("Unrecognized climate_zone %q; using %q", override, env.Zone))
		}
	}

	switch {
	case month >= 1 && month <= 12:
		env.Month = month
	case env.Month >= 1 && env.Month <= 12:
		if month != 0 {
			notes = append(notes, fmt.Sprintf("Unrecognized month %d; using %s from climate data",
				month, catalog.MonthName(env.Month)))
		}
	default:
		env.Month = 1
		if month != 0 {
			notes = append(notes, fmt.Sprintf("Unrecognized month %d; assuming Jan", month))
		} else {
			notes = append(notes, "Current month unavailable; assuming Jan")
		}
	}

	return env, notes
}

func (d *Dataset) lookupEnvironment(suburb string, notes *[]string) (Environment, bool) {
	if d == nil {
		return DefaultEnvironment(ZoneTemperate), false
	}
	e, ok := d.entries[NormalizeSuburb(suburb)]
	if !ok {
		env := DefaultEnvironment(d.DefaultZone())
		env.Suburb = strings.TrimSpace(suburb)
		return env, false
	}

	env := Environment{
		Suburb: e.name,
		Zone:   e.zone,
		Month:  e.record.Month,
	}
	readings := []struct {
		field string
		src   *float64
		def   float64
		dst   *float64
	}{
		{"uv_index", e.record.UVIndex, DefaultUVIndex, &env.UVIndex},
		{"temperature_c", e.record.TemperatureC, DefaultTemperatureC, &env.TemperatureC},
		{"humidity_pct", e.record.HumidityPct, DefaultHumidityPct, &env.HumidityPct},
		{"wind_kmh", e.record.WindKmh, DefaultWindKmh, &env.WindKmh},
	}
	for _, r := range readings {
		if r.src == nil {
			*r.dst = r.def
			*notes = append(*notes, fmt.Sprintf("Climate data for suburb %q missing %s; using %g", e.name, r.field, r.def))
			continue
		}
		*r.dst = *r.src
	}
	return env, true
}
