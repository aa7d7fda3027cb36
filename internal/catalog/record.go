// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package catalog

import (
	"sort"
	"strings"
)

// Category is the top-level plant grouping used for goal filtering and diversity capping.
type Category string

const (
	CategoryFlower    Category = "flower"
	CategoryHerb      Category = "herb"
	CategoryVegetable Category = "vegetable"
)

// Edible reports whether plants in this category are grown to be eaten.
func (c Category) Edible() bool {
	return c == CategoryHerb || c == CategoryVegetable
}

// SunLevel is an ordered sun tier. Lower values want more sun.
type SunLevel int

const (
	SunFull SunLevel = iota
	SunPartShade
	SunShade
)

// String returns the canonical name of the tier.
func (s SunLevel) String() string {
	switch s {
	case SunFull:
		return "full_sun"
	case SunPartShade:
		return "part_shade"
	case SunShade:
		return "shade"
	default:
		return "unknown"
	}
}

// Distance returns the number of tiers between two sun levels.
func (s SunLevel) Distance(other SunLevel) int {
	d := int(s) - int(other)
	if d < 0 {
		return -d
	}
	return d
}

// MarshalText lets sun levels serialize by name.
func (s SunLevel) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Level is an ordered low/medium/high scale shared by water need and maintenance effort.
type Level int

const (
	LevelLow Level = iota
	LevelMedium
	LevelHigh
)

// String returns the canonical name of the level.
func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// MarshalText lets levels serialize by name.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// Habit describes the growth form of a plant. Unlisted habits are kept verbatim.
type Habit string

const (
	HabitUpright     Habit = "upright"
	HabitBush        Habit = "bush"
	HabitClimber     Habit = "climber"
	HabitVine        Habit = "vine"
	HabitGroundCover Habit = "ground-cover"
	HabitTrailing    Habit = "trailing"
	HabitRosette     Habit = "rosette"
)

// Tall reports whether the habit grows tall or climbs.
func (h Habit) Tall() bool {
	return h == HabitUpright || h == HabitClimber || h == HabitVine
}

// MonthSet is a set of calendar months (1-12) stored as a bitmask.
type MonthSet uint16

// Contains reports whether month m is in the set.
func (m MonthSet) Contains(month int) bool {
	if month < 1 || month > 12 {
		return false
	}
	return m&(1<<uint(month)) != 0
}

// With returns a copy of the set including month.
func (m MonthSet) With(month int) MonthSet {
	if month < 1 || month > 12 {
		return m
	}
	return m | 1<<uint(month)
}

// Months returns the months in ascending order.
func (m MonthSet) Months() []int {
	out := make([]int, 0, 12)
	for month := 1; month <= 12; month++ {
		if m.Contains(month) {
			out = append(out, month)
		}
	}
	return out
}

// Empty reports whether no month is set.
func (m MonthSet) Empty() bool {
	return m == 0
}

// Companions lists companion-planting relationships by plant name.
type Companions struct {
	Beneficial []string `json:"beneficial"`
	Harmful    []string `json:"harmful"`
	Neutral    []string `json:"neutral"`
}

// PlantRecord is a single normalized catalog entry. Records are immutable once loaded;
// callers must copy slices before handing them out.
type PlantRecord struct {
	Name           string
	ScientificName string
	Category       Category

	SunNeed        SunLevel
	WaterNeed      Level
	Maintenance    Level
	Habit          Habit
	SelfSupporting bool
	IndoorOK       bool
	ContainerOK    bool

	HighPollen    bool
	Fragrant      bool
	Colors        []string
	DaysToResults int
	Tags          []string

	// Sowing maps a climate zone name to the months a plant can be started there.
	Sowing map[string]MonthSet

	Companions Companions
	MediaID    string

	// Index is the position of the record in the merged catalog.
	Index int
}

// Identity returns the dedup key: scientific name, or common name when absent.
func (p *PlantRecord) Identity() string {
	if id := strings.TrimSpace(p.ScientificName); id != "" {
		return strings.ToLower(id)
	}
	return strings.ToLower(strings.TrimSpace(p.Name))
}

// SowingWindow returns the sowing months for a climate zone.
func (p *PlantRecord) SowingWindow(zone string) MonthSet {
	return p.Sowing[zone]
}

// HasTag reports whether the record carries tag (case-insensitive).
func (p *PlantRecord) HasTag(tag string) bool {
	return containsFold(p.Tags, tag)
}

// HasColor reports whether the record flowers or fruits in color (case-insensitive).
func (p *PlantRecord) HasColor(color string) bool {
	return containsFold(p.Colors, color)
}

// SowingZones returns the zones with a sowing calendar, sorted.
func (p *PlantRecord) SowingZones() []string {
	zones := make([]string, 0, len(p.Sowing))
	for z := range p.Sowing {
		zones = append(zones, z)
	}
	sort.Strings(zones)
	return zones
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
