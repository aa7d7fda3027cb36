// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/climate"
	"github.com/tomtom215/verdant/internal/prefs"
)

type plantOption func(*catalog.PlantRecord)

func plant(name string, category catalog.Category, sun catalog.SunLevel, opts ...plantOption) catalog.PlantRecord {
	p := catalog.PlantRecord{
		Name:        name,
		Category:    category,
		SunNeed:     sun,
		WaterNeed:   catalog.LevelMedium,
		Maintenance: catalog.LevelMedium,
		Habit:       catalog.HabitBush,
		Sowing:      map[string]catalog.MonthSet{},
	}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func withHabit(h catalog.Habit) plantOption {
	return func(p *catalog.PlantRecord) { p.Habit = h }
}

func selfSupporting() plantOption {
	return func(p *catalog.PlantRecord) { p.SelfSupporting = true }
}

func indoorOK() plantOption {
	return func(p *catalog.PlantRecord) { p.IndoorOK = true }
}

func containerOK() plantOption {
	return func(p *catalog.PlantRecord) { p.ContainerOK = true }
}

func highPollen() plantOption {
	return func(p *catalog.PlantRecord) { p.HighPollen = true }
}

func sowIn(zone string, months ...int) plantOption {
	return func(p *catalog.PlantRecord) {
		set := p.Sowing[zone]
		for _, m := range months {
			set = set.With(m)
		}
		p.Sowing[zone] = set
	}
}

// indexed assigns catalog indices in slice order.
func indexed(plants ...catalog.PlantRecord) []catalog.PlantRecord {
	for i := range plants {
		plants[i].Index = i
	}
	return plants
}

// testSet is a full-sun, sheltered backyard with default soft preferences.
func testSet() prefs.Set {
	return prefs.Set{
		Site: prefs.Site{
			LocationType:   prefs.LocationBackyard,
			SunExposure:    catalog.SunFull,
			WindExposure:   prefs.WindSheltered,
			ContainerSizes: []prefs.ContainerSize{},
		},
		Preferences: prefs.Preferences{
			Goal:            prefs.GoalMixed,
			EdibleTypes:     []string{},
			OrnamentalTypes: []string{},
			Colors:          []string{},
			Maintainability: catalog.LevelMedium,
			Watering:        catalog.LevelMedium,
			TimeToResults:   prefs.PaceMedium,
			SeasonIntent:    prefs.IntentStartNow,
		},
		Practical: prefs.Practical{
			Budget: catalog.LevelMedium,
			Tools:  []string{},
		},
	}
}

// testEnv is a mild temperate environment in March.
func testEnv() climate.Environment {
	return climate.Environment{
		Suburb:       "Testville",
		Zone:         climate.ZoneTemperate,
		Month:        3,
		UVIndex:      5,
		TemperatureC: 20,
		HumidityPct:  60,
		WindKmh:      10,
	}
}

func plantNames(plants []*catalog.PlantRecord) []string {
	out := make([]string, len(plants))
	for i, p := range plants {
		out[i] = p.Name
	}
	return out
}
