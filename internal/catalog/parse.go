// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// NormalizeToken lowercases and trims s and folds spaces and hyphens to underscores.
func NormalizeToken(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}

// ParseCategory parses a category, accepting plural forms ("herbs").
func ParseCategory(s string) (Category, bool) {
	switch NormalizeToken(s) {
	case "flower", "flowers", "ornamental":
		return CategoryFlower, true
	case "herb", "herbs":
		return CategoryHerb, true
	case "vegetable", "vegetables", "veg", "veggie":
		return CategoryVegetable, true
	default:
		return "", false
	}
}

// ParseSunLevel parses a sun tier and its common aliases.
func ParseSunLevel(s string) (SunLevel, bool) {
	switch NormalizeToken(s) {
	case "full_sun", "full", "sun", "sunny":
		return SunFull, true
	case "part_shade", "part_sun", "partial", "part", "partial_shade", "partial_sun", "half_sun":
		return SunPartShade, true
	case "shade", "full_shade", "shady":
		return SunShade, true
	default:
		return 0, false
	}
}

// ParseLevel parses a low/medium/high value.
func ParseLevel(s string) (Level, bool) {
	switch NormalizeToken(s) {
	case "low", "l", "minimal":
		return LevelLow, true
	case "medium", "med", "m", "moderate":
		return LevelMedium, true
	case "high", "h":
		return LevelHigh, true
	default:
		return 0, false
	}
}

// ParseHabit normalizes a growth habit. Unknown habits are returned verbatim (lowercased).
func ParseHabit(s string) Habit {
	token := NormalizeToken(s)
	switch token {
	case "ground_cover", "groundcover":
		return HabitGroundCover
	case "climbing":
		return HabitClimber
	case "vining":
		return HabitVine
	case "bushy", "shrub", "mound", "mounding":
		return HabitBush
	case "":
		return ""
	default:
		return Habit(strings.ReplaceAll(token, "_", "-"))
	}
}

// ParseBool parses a catalog boolean. Empty values are false.
func ParseBool(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "yes", "y", "1", "t":
		return true, true
	case "false", "no", "n", "0", "f", "":
		return false, true
	default:
		return false, false
	}
}

// SplitList splits a list cell on ';' or '|', trimming blanks.
func SplitList(s string) []string {
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '|' })
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

var monthNames = map[string]int{
	"jan": 1, "january": 1,
	"feb": 2, "february": 2,
	"mar": 3, "march": 3,
	"apr": 4, "april": 4,
	"may": 5,
	"jun": 6, "june": 6,
	"jul": 7, "july": 7,
	"aug": 8, "august": 8,
	"sep": 9, "sept": 9, "september": 9,
	"oct": 10, "october": 10,
	"nov": 11, "november": 11,
	"dec": 12, "december": 12,
}

var monthAbbrev = [...]string{"", "Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

// MonthName returns the three-letter English name of month m.
func MonthName(m int) string {
	if m < 1 || m > 12 {
		return ""
	}
	return monthAbbrev[m]
}

func parseMonth(s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 1 || n > 12 {
			return 0, fmt.Errorf("month %d out of range", n)
		}
		return n, nil
	}
	if n, ok := monthNames[s]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("unknown month %q", s)
}

// ParseMonths parses a sowing window such as "3", "mar,apr", "9-11" or "nov-feb".
// Ranges may wrap past December.
func ParseMonths(s string) (MonthSet, error) {
	var set MonthSet
	tokens := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' || r == '|' })
	for _, tok := range tokens {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		from, to, isRange := strings.Cut(tok, "-")
		if !isRange {
			m, err := parseMonth(tok)
			if err != nil {
				return 0, err
			}
			set = set.With(m)
			continue
		}
		start, err := parseMonth(from)
		if err != nil {
			return 0, err
		}
		end, err := parseMonth(to)
		if err != nil {
			return 0, err
		}
		for m := start; ; m = m%12 + 1 {
			set = set.With(m)
			if m == end {
				break
			}
		}
	}
	return set, nil
}

// FormatMonths renders a month set as compact ranges, e.g. "Mar-May, Sep".
// Windows that wrap past December are rendered as a single range.
func FormatMonths(set MonthSet) string {
	if set.Empty() {
		return ""
	}
	months := set.Months()
	if len(months) == 12 {
		return "all year"
	}

	// Start from a month whose predecessor is not in the set so wrapping runs stay intact.
	start := months[0]
	for _, m := range months {
		prev := (m+10)%12 + 1
		if !set.Contains(prev) {
			start = m
			break
		}
	}

	var parts []string
	runStart, runEnd := 0, 0
	flush := func() {
		if runStart == 0 {
			return
		}
		if runStart == runEnd {
			parts = append(parts, MonthName(runStart))
		} else {
			parts = append(parts, MonthName(runStart)+"-"+MonthName(runEnd))
		}
	}
	for i := 0; i < 12; i++ {
		m := (start+i-1)%12 + 1
		if !set.Contains(m) {
			flush()
			runStart = 0
			continue
		}
		if runStart == 0 {
			runStart = m
		}
		runEnd = m
	}
	flush()
	return strings.Join(parts, ", ")
}
