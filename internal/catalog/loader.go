// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package catalog

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/tomtom215/verdant/internal/metrics"
)

// sowColumnPrefix marks per-zone sowing calendar columns (sow_temperate, sow_tropical, ...).
const sowColumnPrefix = "sow_"

var mandatoryColumns = []string{"name", "category", "sun_need"}

// columnAliases maps alternative header names onto canonical column names.
var columnAliases = map[string]string{
	"plant_name":         "name",
	"common_name":        "name",
	"scientific":         "scientific_name",
	"botanical_name":     "scientific_name",
	"plant_category":     "category",
	"sun":                "sun_need",
	"water":              "water_need",
	"maintenance":        "maintenance_level",
	"growth_habit":       "habit",
	"indoor":             "indoor_ok",
	"container":          "container_ok",
	"days_to_maturity":   "days_to_results",
	"days_to_harvest":    "days_to_results",
	"flower_colors":      "colors",
	"color":              "colors",
	"beneficial":         "companions_beneficial",
	"harmful":            "companions_harmful",
	"neutral":            "companions_neutral",
	"image":              "media_id",
	"image_url":          "media_id",
	"image_id":           "media_id",
	"pollen_high":        "high_pollen",
	"needs_no_staking":   "self_supporting",
	"wind_hardy_upright": "self_supporting",
}

// Discover lists the CSV catalog files in dir and its immediate subdirectories, sorted by path.
func Discover(dir string) ([]string, error) {
	var files []string
	for _, pattern := range []string{"*.csv", filepath.Join("*", "*.csv")} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, &LoadError{Path: dir, Err: err}
		}
		files = append(files, matches...)
	}
	if len(files) == 0 {
		return nil, &LoadError{Path: dir, Err: fmt.Errorf("no catalog files found: %w", ErrEmptyCatalog)}
	}
	sort.Strings(files)
	return files, nil
}

// Load reads every path concurrently and merges the records in the order the paths were given.
// Any malformed file fails the whole load.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func Load(ctx context.Context, logger zerolog.Logger, paths ...string) (*Catalog, error) {
	if len(paths) == 0 {
		metrics.RecordCatalogLoad(0, ErrEmptyCatalog)
		return nil, &LoadError{Err: ErrEmptyCatalog}
	}

	parts := make([][]PlantRecord, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			records, err := loadFile(gctx, path)
			if err != nil {
				return err
			}
			parts[i] = records
			logger.Debug().
				Str("path", path).
				Int("records", len(records)).
				Msg("catalog file parsed")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		metrics.RecordCatalogLoad(0, err)
		return nil, err
	}

	var merged []PlantRecord
	for _, p := range parts {
		merged = append(merged, p...)
	}

	c := New(merged)
	for _, name := range c.Skipped() {
		logger.Warn().Str("plant", name).Msg("duplicate catalog entry skipped")
	}
	if c.Len() == 0 {
		metrics.RecordCatalogLoad(0, ErrEmptyCatalog)
		return nil, &LoadError{Err: ErrEmptyCatalog}
	}

	metrics.RecordCatalogLoad(c.Len(), nil)
	logger.Info().
		Int("files", len(paths)).
		Int("records", c.Len()).
		Int("duplicates", len(c.Skipped())).
		Msg("plant catalog loaded")
	return c, nil
}

func loadFile(ctx context.Context, path string) ([]PlantRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(path) //nolint:gosec // catalog paths come from operator configuration
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	defer f.Close()

	return Parse(path, f)
}

// Parse reads CSV catalog rows from r. name is used only for error reporting.
func Parse(name string, r io.Reader) ([]PlantRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &LoadError{Path: name, Err: fmt.Errorf("no header row: %w", ErrMissingField)}
	}
	if err != nil {
		return nil, &LoadError{Path: name, Err: err}
	}

	cols := indexHeader(header)
	for _, col := range mandatoryColumns {
		if _, ok := cols[col]; !ok {
			return nil, &LoadError{Path: name, Field: col, Err: ErrMissingField}
		}
	}

	var records []PlantRecord
	for {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &LoadError{Path: name, Line: perr.Line, Err: perr.Err}
			}
			return nil, &LoadError{Path: name, Err: err}
		}
		if blankRow(fields) {
			continue
		}
		rec, field, err := parseRow(cols, fields)
		if err != nil {
			line, _ := reader.FieldPos(0)
			return nil, &LoadError{Path: name, Line: line, Field: field, Err: err}
		}
		records = append(records, rec)
	}
	return records, nil
}

func indexHeader(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		key := NormalizeToken(strings.TrimPrefix(h, "\ufeff"))
		if alias, ok := columnAliases[key]; ok {
			key = alias
		}
		if _, dup := cols[key]; !dup {
			cols[key] = i
		}
	}
	return cols
}

func blankRow(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}

type row struct {
	cols   map[string]int
	fields []string
}

func (r row) get(col string) string {
	i, ok := r.cols[col]
	if !ok || i >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[i])
}

//nolint:gocyclo // one branch per catalog column
func parseRow(cols map[string]int, fields []string) (PlantRecord, string, error) {
	r := row{cols: cols, fields: fields}
	rec := PlantRecord{
		Name:           r.get("name"),
		ScientificName: r.get("scientific_name"),
		WaterNeed:      LevelMedium,
		Maintenance:    LevelMedium,
		Habit:          HabitBush,
		MediaID:        r.get("media_id"),
	}

	if rec.Name == "" {
		return rec, "name", ErrMissingField
	}

	raw := r.get("category")
	if raw == "" {
		return rec, "category", ErrMissingField
	}
	category, ok := ParseCategory(raw)
	if !ok {
		return rec, "category", fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	rec.Category = category

	raw = r.get("sun_need")
	if raw == "" {
		return rec, "sun_need", ErrMissingField
	}
	sun, ok := ParseSunLevel(raw)
	if !ok {
		return rec, "sun_need", fmt.Errorf("%w: %q", ErrInvalidValue, raw)
	}
	rec.SunNeed = sun

	for _, lv := range []struct {
		col string
		dst *Level
	}{
		{"water_need", &rec.WaterNeed},
		{"maintenance_level", &rec.Maintenance},
	} {
		if raw := r.get(lv.col); raw != "" {
			level, ok := ParseLevel(raw)
			if !ok {
				return rec, lv.col, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
			}
			*lv.dst = level
		}
	}

	if raw := r.get("habit"); raw != "" {
		rec.Habit = ParseHabit(raw)
	}

	for _, b := range []struct {
		col string
		dst *bool
	}{
		{"indoor_ok", &rec.IndoorOK},
		{"container_ok", &rec.ContainerOK},
		{"self_supporting", &rec.SelfSupporting},
		{"high_pollen", &rec.HighPollen},
		{"fragrant", &rec.Fragrant},
	} {
		raw := r.get(b.col)
		v, ok := ParseBool(raw)
		if !ok {
			return rec, b.col, fmt.Errorf("%w: %q", ErrInvalidValue, raw)
		}
		*b.dst = v
	}

	if raw := r.get("days_to_results"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 0 {
			return rec, "days_to_results", fmt.Errorf("%w: %q", ErrInvalidValue, raw)
		}
		rec.DaysToResults = days
	}

	rec.Colors = lowerAll(SplitList(r.get("colors")))
	rec.Tags = lowerAll(SplitList(r.get("tags")))
	rec.Companions = Companions{
		Beneficial: SplitList(r.get("companions_beneficial")),
		Harmful:    SplitList(r.get("companions_harmful")),
		Neutral:    SplitList(r.get("companions_neutral")),
	}

	for _, col := range sowColumns(cols) {
		zone, ok := strings.CutPrefix(col, sowColumnPrefix)
		if !ok || zone == "" {
			continue
		}
		raw := r.get(col)
		if raw == "" {
			continue
		}
		months, err := ParseMonths(raw)
		if err != nil {
			return rec, col, fmt.Errorf("%w: %v", ErrInvalidValue, err)
		}
		if rec.Sowing == nil {
			rec.Sowing = make(map[string]MonthSet)
		}
		rec.Sowing[zone] = months
	}

	return rec, "", nil
}

// sowColumns returns the sowing calendar columns in sorted order.
func sowColumns(cols map[string]int) []string {
	var out []string
	for col := range cols {
		if strings.HasPrefix(col, sowColumnPrefix) {
			out = append(out, col)
		}
	}
	sort.Strings(out)
	return out
}

func lowerAll(in []string) []string {
	for i := range in {
		in[i] = strings.ToLower(in[i])
	}
	return in
}
