// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/climate"
	"github.com/tomtom215/verdant/internal/logging"
	"github.com/tomtom215/verdant/internal/metrics"
	"github.com/tomtom215/verdant/internal/prefs"
	"github.com/tomtom215/verdant/internal/recommend"
	"github.com/tomtom215/verdant/internal/recommend/reranking"
)

const climateJSON = `{
  "Fitzroy":     {"climate_zone": "temperate", "uv_index": 6, "temperature_c": 18, "humidity_pct": 65, "wind_kmh": 12, "month": 4},
  "Gusty Point": {"climate_zone": "temperate", "uv_index": 7, "temperature_c": 16, "humidity_pct": 70, "wind_kmh": 42, "month": 4},
  "Cairns":      {"climate_zone": "subtropical", "uv_index": 11, "temperature_c": 31, "humidity_pct": 75, "wind_kmh": 15, "month": 4}
}`

type plantRow struct {
	name        string
	category    catalog.Category
	sun         catalog.SunLevel
	habit       catalog.Habit
	supported   bool
	container   bool
	indoor      bool
	pollen      bool
	temperate   string
	subtropical string
}

var plantRows = []plantRow{
	{"Rose", catalog.CategoryFlower, catalog.SunFull, catalog.HabitBush, false, true, false, false, "jul-aug", "apr-may"},
	{"Lavender", catalog.CategoryFlower, catalog.SunFull, catalog.HabitBush, false, true, false, false, "sep-oct", "mar-apr"},
	{"Sunflower", catalog.CategoryFlower, catalog.SunFull, catalog.HabitUpright, false, false, false, true, "sep-nov", "aug-sep"},
	{"Sweet Pea", catalog.CategoryFlower, catalog.SunFull, catalog.HabitClimber, false, true, false, false, "mar-apr", "mar-may"},
	{"Marigold", catalog.CategoryFlower, catalog.SunFull, catalog.HabitBush, false, true, false, false, "sep-oct", "jan-dec"},
	{"Hosta", catalog.CategoryFlower, catalog.SunShade, catalog.HabitGroundCover, false, false, false, false, "sep", "jun"},
	{"Cosmos", catalog.CategoryFlower, catalog.SunFull, catalog.HabitUpright, false, false, false, true, "sep-nov", "aug-oct"},
	{"Basil", catalog.CategoryHerb, catalog.SunFull, catalog.HabitBush, false, true, true, false, "sep-nov", "aug-dec"},
	{"Rosemary", catalog.CategoryHerb, catalog.SunFull, catalog.HabitUpright, true, true, false, false, "mar-may", "mar-may"},
	{"Mint", catalog.CategoryHerb, catalog.SunPartShade, catalog.HabitGroundCover, false, true, true, false, "sep-nov", "apr-jun"},
	{"Parsley", catalog.CategoryHerb, catalog.SunPartShade, catalog.HabitRosette, false, true, true, false, "mar, sep", "apr-jul"},
	{"Tomato", catalog.CategoryVegetable, catalog.SunFull, catalog.HabitVine, false, true, false, false, "sep-nov", "jul-sep"},
	{"Lettuce", catalog.CategoryVegetable, catalog.SunPartShade, catalog.HabitRosette, false, true, false, false, "mar-may, aug-oct", "apr-aug"},
	{"Bean", catalog.CategoryVegetable, catalog.SunFull, catalog.HabitClimber, false, false, false, false, "oct-dec", "aug-oct"},
	{"Zucchini", catalog.CategoryVegetable, catalog.SunFull, catalog.HabitBush, false, false, false, false, "oct-dec", "aug-nov"},
	{"Chilli", catalog.CategoryVegetable, catalog.SunFull, catalog.HabitBush, false, true, false, false, "sep-oct", "jul-oct"},
}

func newTestCatalog(t *testing.T, rows []plantRow) *catalog.Catalog {
	t.Helper()
	records := make([]catalog.PlantRecord, 0, len(rows))
	for _, s := range rows {
		temperate, err := catalog.ParseMonths(s.temperate)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		subtropical, err := catalog.ParseMonths(s.subtropical)
		if err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		records = append(records, catalog.PlantRecord{
			Name:           s.name,
			ScientificName: s.name + " officinalis",
			Category:       s.category,
			SunNeed:        s.sun,
			WaterNeed:      catalog.LevelMedium,
			Maintenance:    catalog.LevelMedium,
			Habit:          s.habit,
			SelfSupporting: s.supported,
			IndoorOK:       s.indoor,
			ContainerOK:    s.container,
			HighPollen:     s.pollen,
			Sowing: map[string]catalog.MonthSet{
				"temperate":   temperate,
				"subtropical": subtropical,
			},
			Companions: catalog.Companions{Beneficial: []string{"Marigold"}},
			MediaID:    strings.ToLower(strings.ReplaceAll(s.name, " ", "-")) + ".jpg",
		})
	}
	return catalog.New(records)
}

func newTestEngine(t *testing.T, cfg *recommend.Config) *recommend.Engine {
	t.Helper()
	return newTestEngineWithRows(t, cfg, plantRows)
}

func newTestEngineWithRows(t *testing.T, cfg *recommend.Config, rows []plantRow) *recommend.Engine {
	t.Helper()
	dataset, err := climate.ParseDataset("climate.json", []byte(climateJSON), climate.ZoneTemperate)
	if err != nil {
		t.Fatalf("ParseDataset() error = %v", err)
	}
	maxPerCategory := 2
	if cfg != nil {
		maxPerCategory = cfg.MaxPerCategory
	}
	engine, err := recommend.NewEngine(cfg, recommend.Sources{
		Catalog: newTestCatalog(t, rows),
		Climate: dataset,
		Media:   recommend.CatalogMedia{BaseURL: "https://cdn.example.com/plants"},
		Ranker:  reranking.NewCategoryCap(maxPerCategory),
	}, logging.NewTestLogger(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func generate(t *testing.T, engine *recommend.Engine, req recommend.Request) *recommend.Result {
	t.Helper()
	result, err := engine.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	return result
}

func fullSunBackyard(goal string) prefs.Input {
	return prefs.Input{
		Site: prefs.SiteInput{
			LocationType: "backyard",
			SunExposure:  "full_sun",
			WindExposure: "sheltered",
		},
		Preferences: prefs.PreferencesInput{Goal: goal},
	}
}

func containsNote(notes []string, want string) bool {
	for _, n := range notes {
		if n == want {
			return true
		}
	}
	return false
}

func TestNewEngine_Errors(t *testing.T) {
	cat := catalog.New(nil)
	capper := reranking.NewCategoryCap(2)
	logger := logging.NewTestLogger(&bytes.Buffer{})

	if _, err := recommend.NewEngine(nil, recommend.Sources{Ranker: capper}, logger); !errors.Is(err, recommend.ErrNoCatalog) {
		t.Errorf("missing catalog: err = %v, want ErrNoCatalog", err)
	}
	if _, err := recommend.NewEngine(nil, recommend.Sources{Catalog: cat}, logger); !errors.Is(err, recommend.ErrNoRanker) {
		t.Errorf("missing ranker: err = %v, want ErrNoRanker", err)
	}

	bad := recommend.DefaultConfig()
	bad.MaxPerCategory = 0
	if _, err := recommend.NewEngine(bad, recommend.Sources{Catalog: cat, Ranker: capper}, logger); err == nil {
		t.Error("invalid config: expected error")
	}
}

func TestNewEngine_RankerCapMismatch(t *testing.T) {
	cat := catalog.New(nil)
	logger := logging.NewTestLogger(&bytes.Buffer{})
	cfg := recommend.DefaultConfig()
	cfg.MaxPerCategory = 2

	_, err := recommend.NewEngine(cfg, recommend.Sources{Catalog: cat, Ranker: reranking.NewCategoryCap(3)}, logger)
	if !errors.Is(err, recommend.ErrRankerCapMismatch) {
		t.Fatalf("err = %v, want ErrRankerCapMismatch", err)
	}
	if !strings.Contains(err.Error(), "caps at 3, config has 2") {
		t.Errorf("err = %q, want both caps named", err)
	}

	cfg.MaxPerCategory = 3
	if _, err := recommend.NewEngine(cfg, recommend.Sources{Catalog: cat, Ranker: reranking.NewCategoryCap(3)}, logger); err != nil {
		t.Errorf("matching caps: err = %v", err)
	}
}

func TestNewEngine_CopiesConfig(t *testing.T) {
	cfg := recommend.DefaultConfig()
	engine := newTestEngine(t, cfg)
	cfg.DefaultN = 42

	if got := engine.GetConfig().DefaultN; got != 5 {
		t.Errorf("DefaultN = %d, want 5", got)
	}
}

func TestGenerate_ScenarioOrnamental(t *testing.T) {
	engine := newTestEngine(t, nil)
	result := generate(t, engine, recommend.Request{
		Suburb:      "Fitzroy",
		N:           5,
		Preferences: fullSunBackyard("ornamental"),
	})

	if len(result.Recommendations) == 0 {
		t.Fatal("expected recommendations")
	}
	for _, rec := range result.Recommendations {
		if rec.PlantCategory != catalog.CategoryFlower {
			t.Errorf("%s: category = %s, want flower", rec.PlantName, rec.PlantCategory)
		}
	}
	if !containsNote(result.Notes, "Diversity cap limited results to 2 of 5 requested") {
		t.Errorf("Notes = %v, want diversity note", result.Notes)
	}
	if containsNote(result.Notes, recommend.RelaxGoalStrictness.Note()) {
		t.Errorf("Notes = %v, goal relaxed although enough flowers were eligible", result.Notes)
	}
}

func TestGenerate_ScenarioEdible(t *testing.T) {
	engine := newTestEngine(t, nil)
	result := generate(t, engine, recommend.Request{
		Suburb:      "Fitzroy",
		N:           5,
		Preferences: fullSunBackyard("edible"),
	})

	if len(result.Recommendations) != 4 {
		t.Errorf("len = %d, want 4 (two herbs, two vegetables)", len(result.Recommendations))
	}
	for _, rec := range result.Recommendations {
		if rec.PlantCategory != catalog.CategoryHerb && rec.PlantCategory != catalog.CategoryVegetable {
			t.Errorf("%s: category = %s, want herb or vegetable", rec.PlantName, rec.PlantCategory)
		}
	}
}

func TestGenerate_ScenarioWindy(t *testing.T) {
	engine := newTestEngine(t, &recommend.Config{
		DefaultN: 5, MaxN: 50, MaxPerCategory: 5, Weights: recommend.DefaultWeights(),
	})

	in := fullSunBackyard("mixed")
	in.Site.WindExposure = "windy"
	result := generate(t, engine, recommend.Request{Suburb: "Fitzroy", N: 5, Preferences: in})

	if len(result.Recommendations) != 5 {
		t.Fatalf("len = %d, want 5", len(result.Recommendations))
	}
	tall := 0
	for _, rec := range result.Recommendations {
		switch rec.Fit.Habit {
		case catalog.HabitClimber, catalog.HabitVine, catalog.HabitUpright:
			tall++
		}
	}
	if tall >= 3 {
		t.Errorf("%d of 5 recommendations are tall or climbing, want fewer than 3", tall)
	}
}

func TestGenerate_ScenarioWindySelfSupporting(t *testing.T) {
	rows := []plantRow{
		{"Foxglove", catalog.CategoryFlower, catalog.SunFull, catalog.HabitUpright, true, false, false, false, "sep-oct", "apr-may"},
		{"Delphinium", catalog.CategoryFlower, catalog.SunFull, catalog.HabitUpright, true, false, false, false, "sep-oct", "apr-may"},
		{"Fennel", catalog.CategoryHerb, catalog.SunFull, catalog.HabitUpright, true, false, false, false, "sep-oct", "apr-may"},
		{"Dill", catalog.CategoryHerb, catalog.SunFull, catalog.HabitUpright, true, false, false, false, "sep-oct", "apr-may"},
		{"Corn", catalog.CategoryVegetable, catalog.SunFull, catalog.HabitUpright, true, false, false, false, "sep-oct", "apr-may"},
		{"Pansy", catalog.CategoryFlower, catalog.SunFull, catalog.HabitGroundCover, false, false, false, false, "sep-oct", "apr-may"},
		{"Thyme", catalog.CategoryHerb, catalog.SunFull, catalog.HabitBush, false, false, false, false, "sep-oct", "apr-may"},
		{"Lettuce", catalog.CategoryVegetable, catalog.SunFull, catalog.HabitRosette, false, false, false, false, "sep-oct", "apr-may"},
	}
	engine := newTestEngineWithRows(t, nil, rows)

	in := fullSunBackyard("mixed")
	in.Site.WindExposure = "windy"
	result := generate(t, engine, recommend.Request{Suburb: "Fitzroy", N: 5, Preferences: in})

	if len(result.Recommendations) != 5 {
		t.Fatalf("len = %d, want 5", len(result.Recommendations))
	}
	tall := 0
	low := map[string]bool{}
	for _, rec := range result.Recommendations {
		if rec.Fit.Habit.Tall() {
			tall++
			continue
		}
		low[rec.PlantName] = true
	}
	if tall >= 3 {
		t.Errorf("%d of 5 recommendations are tall, want fewer than 3", tall)
	}
	for _, name := range []string{"Pansy", "Thyme", "Lettuce"} {
		if !low[name] {
			t.Errorf("%s missing from a windy result", name)
		}
	}
}

func TestGenerate_WindDerivedFromClimate(t *testing.T) {
	engine := newTestEngine(t, nil)
	in := fullSunBackyard("mixed")
	in.Site.WindExposure = ""

	result := generate(t, engine, recommend.Request{Suburb: "Gusty Point", N: 5, Preferences: in})
	for _, rec := range result.Recommendations {
		if rec.Fit.Habit == catalog.HabitClimber || rec.Fit.Habit == catalog.HabitVine {
			t.Errorf("%s: climbing habit on a windy site", rec.PlantName)
		}
	}
}

func TestGenerate_ScenarioClimateZone(t *testing.T) {
	engine := newTestEngine(t, nil)
	req := recommend.Request{Suburb: "Fitzroy", N: 5, Preferences: fullSunBackyard("mixed")}

	req.ClimateZoneOverride = "temperate"
	temperate := generate(t, engine, req)
	req.ClimateZoneOverride = "subtropical"
	subtropical := generate(t, engine, req)

	names := func(r *recommend.Result) map[string]bool {
		out := make(map[string]bool)
		for _, rec := range r.Recommendations {
			out[rec.PlantName] = true
		}
		return out
	}
	a, b := names(temperate), names(subtropical)
	diff := 0
	for name := range a {
		if !b[name] {
			diff++
		}
	}
	for name := range b {
		if !a[name] {
			diff++
		}
	}
	if diff == 0 {
		t.Errorf("temperate and subtropical results are identical: %v", a)
	}
	if !containsNote(subtropical.Notes, "Climate zone overridden to subtropical") {
		t.Errorf("Notes = %v, want override note", subtropical.Notes)
	}
	if subtropical.Recommendations[0].Sowing.ClimateZone != "subtropical" {
		t.Errorf("Sowing.ClimateZone = %q", subtropical.Recommendations[0].Sowing.ClimateZone)
	}
}

func TestGenerate_ScenarioRelaxation(t *testing.T) {
	engine := newTestEngine(t, nil)
	in := prefs.Input{
		Site: prefs.SiteInput{
			LocationType: "patio",
			SunExposure:  "shade",
			WindExposure: "sheltered",
			Containers:   true,
		},
	}

	result := generate(t, engine, recommend.Request{Suburb: "Fitzroy", N: 3, Preferences: in})

	if len(result.Recommendations) != 3 {
		t.Fatalf("len = %d, want 3", len(result.Recommendations))
	}
	if len(result.Notes) == 0 {
		t.Fatal("expected relaxation notes")
	}
	if !containsNote(result.Notes, "Sun-exposure constraint relaxed to meet requested count") {
		t.Errorf("Notes = %v, want sun relaxation note", result.Notes)
	}
}

func TestGenerate_IndoorNeverRelaxed(t *testing.T) {
	engine := newTestEngine(t, nil)
	in := fullSunBackyard("ornamental")
	in.Site.LocationType = "indoor"

	result := generate(t, engine, recommend.Request{Suburb: "Fitzroy", N: 5, Preferences: in})
	// Only herbs grow indoors; the goal relaxation admits them.
	for _, rec := range result.Recommendations {
		if !rec.Fit.IndoorOK {
			t.Errorf("%s: not indoor-compatible", rec.PlantName)
		}
	}

	if !containsNote(result.Notes, "Only 3 eligible plants found after relaxing all constraints (requested 5)") {
		t.Errorf("Notes = %v, want exhaustion note", result.Notes)
	}
}

func TestGenerate_EmptyResult(t *testing.T) {
	cat := catalog.New([]catalog.PlantRecord{{
		Name:     "Pumpkin",
		Category: catalog.CategoryVegetable,
		SunNeed:  catalog.SunFull,
		Habit:    catalog.HabitVine,
	}})
	engine, err := recommend.NewEngine(nil, recommend.Sources{
		Catalog: cat,
		Ranker:  reranking.NewCategoryCap(2),
	}, logging.NewTestLogger(&bytes.Buffer{}))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	in := fullSunBackyard("edible")
	in.Site.LocationType = "indoor"
	result := generate(t, engine, recommend.Request{Suburb: "Anywhere", N: 5, Month: 6, Preferences: in})

	if result.Recommendations == nil || len(result.Recommendations) != 0 {
		t.Errorf("Recommendations = %v, want empty non-nil", result.Recommendations)
	}
	if !containsNote(result.Notes, "No plants matched your site and preferences") {
		t.Errorf("Notes = %v, want empty-result note", result.Notes)
	}
	if !containsNote(result.Notes, `Climate data for suburb "Anywhere" not found; using temperate defaults`) {
		t.Errorf("Notes = %v, want climate fallback note", result.Notes)
	}
}

func TestGenerate_NotesOrder(t *testing.T) {
	engine := newTestEngine(t, nil)
	in := fullSunBackyard("ornamental")
	in.Preferences.Watering = "daily"

	result := generate(t, engine, recommend.Request{Suburb: "Atlantis", N: 5, Month: 4, Preferences: in})

	want := []string{
		`Climate data for suburb "Atlantis" not found; using temperate defaults`,
		`Unrecognized watering "daily"; using "medium"`,
		"Diversity cap limited results to 2 of 5 requested",
	}
	if !reflect.DeepEqual(result.Notes, want) {
		t.Errorf("Notes = %#v, want %#v", result.Notes, want)
	}
}

func TestGenerate_RequestCount(t *testing.T) {
	engine := newTestEngine(t, &recommend.Config{
		DefaultN: 3, MaxN: 4, MaxPerCategory: 5, Weights: recommend.DefaultWeights(),
	})
	in := fullSunBackyard("mixed")

	result := generate(t, engine, recommend.Request{Suburb: "Fitzroy", Preferences: in})
	if len(result.Recommendations) != 3 {
		t.Errorf("default N: len = %d, want 3", len(result.Recommendations))
	}

	result = generate(t, engine, recommend.Request{Suburb: "Fitzroy", N: 40, Preferences: in})
	if len(result.Recommendations) != 4 {
		t.Errorf("capped N: len = %d, want 4", len(result.Recommendations))
	}
	if result.Notes[0] != "Requested 40 recommendations; limited to 4" {
		t.Errorf("Notes[0] = %q", result.Notes[0])
	}
}

func TestGenerate_WeightsOverride(t *testing.T) {
	engine := newTestEngine(t, nil)
	in := fullSunBackyard("mixed")

	bad := recommend.Weights{SunFit: -1}
	result := generate(t, engine, recommend.Request{Suburb: "Fitzroy", Preferences: in, Weights: &bad})
	if !containsNoteWithPrefix(result.Notes, "Ignored invalid weights override") {
		t.Errorf("Notes = %v, want weights note", result.Notes)
	}

	seasonOnly := recommend.Weights{SeasonAlignmentFit: 1}
	result = generate(t, engine, recommend.Request{Suburb: "Fitzroy", Month: 4, Preferences: in, Weights: &seasonOnly})
	for _, rec := range result.Recommendations {
		if rec.Sowing.SeasonLabel == recommend.SeasonStartNow && rec.Score != 100 {
			t.Errorf("%s: in-season score = %v, want 100", rec.PlantName, rec.Score)
		}
	}
}

func containsNoteWithPrefix(notes []string, prefix string) bool {
	for _, n := range notes {
		if strings.HasPrefix(n, prefix) {
			return true
		}
	}
	return false
}

func TestGenerate_ContextCanceled(t *testing.T) {
	engine := newTestEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Generate(ctx, recommend.Request{}); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestGenerate_RecordsMetrics(t *testing.T) {
	engine := newTestEngine(t, nil)
	in := prefs.Input{Site: prefs.SiteInput{SunExposure: "shade", Containers: true, WindExposure: "sheltered"}}

	relaxed := metrics.RecommendRequests.WithLabelValues("relaxed")
	step := metrics.RelaxationSteps.WithLabelValues("widen_sun_tolerance")
	beforeRelaxed := testutil.ToFloat64(relaxed)
	beforeStep := testutil.ToFloat64(step)

	generate(t, engine, recommend.Request{Suburb: "Fitzroy", N: 3, Preferences: in})

	if got := testutil.ToFloat64(relaxed) - beforeRelaxed; got != 1 {
		t.Errorf("relaxed requests delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(step) - beforeStep; got != 1 {
		t.Errorf("widen_sun_tolerance delta = %v, want 1", got)
	}
}

// TestGenerate_Properties checks result properties over a grid of requests.
func TestGenerate_Properties(t *testing.T) {
	engine := newTestEngine(t, nil)

	goals := []string{"edible", "ornamental", "mixed", "bogus"}
	suns := []string{"full_sun", "part_shade", "shade"}
	winds := []string{"sheltered", "windy"}
	locations := []string{"backyard", "balcony", "indoor"}
	zones := []string{"", "subtropical"}

	for _, goal := range goals {
		for _, sun := range suns {
			for _, wind := range winds {
				for _, loc := range locations {
					for _, zone := range zones {
						in := prefs.Input{
							Site: prefs.SiteInput{
								LocationType: loc,
								SunExposure:  sun,
								WindExposure: wind,
								Containers:   loc == "balcony",
							},
							Preferences: prefs.PreferencesInput{
								Goal:            goal,
								PollenSensitive: wind == "windy",
								SeasonIntent:    "plan_ahead",
							},
						}
						req := recommend.Request{
							Suburb:              "Fitzroy",
							N:                   5,
							ClimateZoneOverride: zone,
							Preferences:         in,
						}
						first := generate(t, engine, req)
						second := generate(t, engine, req)
						if !reflect.DeepEqual(first, second) {
							t.Errorf("%+v: results differ between runs", in)
						}
						checkResult(t, first, req.N, 2)
					}
				}
			}
		}
	}
}

func checkResult(t *testing.T, result *recommend.Result, n, maxPerCategory int) {
	t.Helper()
	if len(result.Recommendations) > n {
		t.Errorf("len = %d exceeds n = %d", len(result.Recommendations), n)
	}
	seen := make(map[string]bool)
	perCategory := make(map[catalog.Category]int)
	for _, rec := range result.Recommendations {
		if rec.Score < 0 || rec.Score > 100 {
			t.Errorf("%s: score %v out of range", rec.PlantName, rec.Score)
		}
		if rec.Sowing.SeasonLabel != recommend.SeasonStartNow && rec.Sowing.SeasonLabel != recommend.SeasonPlanAhead {
			t.Errorf("%s: season label %q", rec.PlantName, rec.Sowing.SeasonLabel)
		}
		id := strings.ToLower(rec.ScientificName)
		if id == "" {
			id = strings.ToLower(rec.PlantName)
		}
		if seen[id] {
			t.Errorf("duplicate plant %q", id)
		}
		seen[id] = true
		perCategory[rec.PlantCategory]++
		if perCategory[rec.PlantCategory] > maxPerCategory {
			t.Errorf("category %s exceeds cap %d", rec.PlantCategory, maxPerCategory)
		}
	}
}
