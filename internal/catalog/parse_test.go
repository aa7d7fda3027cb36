// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package catalog

import (
	"reflect"
	"testing"
)

func TestParseSunLevel(t *testing.T) {
	tests := []struct {
		in     string
		want   SunLevel
		wantOK bool
	}{
		{"full_sun", SunFull, true},
		{"Full Sun", SunFull, true},
		{"sun", SunFull, true},
		{"part-shade", SunPartShade, true},
		{"partial", SunPartShade, true},
		{"part_sun", SunPartShade, true},
		{"full shade", SunShade, true},
		{"blazing", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseSunLevel(tt.in)
			if ok != tt.wantOK || (ok && got != tt.want) {
				t.Errorf("ParseSunLevel(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in     string
		want   Category
		wantOK bool
	}{
		{"flower", CategoryFlower, true},
		{"Flowers", CategoryFlower, true},
		{"herbs", CategoryHerb, true},
		{"Vegetable", CategoryVegetable, true},
		{"fruit tree", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCategory(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseCategory(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseHabit(t *testing.T) {
	tests := map[string]Habit{
		"Upright":      HabitUpright,
		"ground cover": HabitGroundCover,
		"ground_cover": HabitGroundCover,
		"climbing":     HabitClimber,
		"shrub":        HabitBush,
		"Clumping":     Habit("clumping"),
		"":             Habit(""),
	}

	for in, want := range tests {
		if got := ParseHabit(in); got != want {
			t.Errorf("ParseHabit(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		in     string
		want   bool
		wantOK bool
	}{
		{"true", true, true},
		{"YES", true, true},
		{"1", true, true},
		{"no", false, true},
		{"", false, true},
		{"maybe", false, false},
	}

	for _, tt := range tests {
		got, ok := ParseBool(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseBool(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSplitList(t *testing.T) {
	got := SplitList(" basil ; marigold| |chives ")
	want := []string{"basil", "marigold", "chives"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitList() = %v, want %v", got, want)
	}
	if got := SplitList(""); len(got) != 0 {
		t.Errorf("SplitList(\"\") = %v, want empty", got)
	}
}

func TestParseMonths(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    []int
		wantErr bool
	}{
		{"single number", "3", []int{3}, false},
		{"names", "mar, April", []int{3, 4}, false},
		{"numeric range", "9-11", []int{9, 10, 11}, false},
		{"named range", "sep-nov", []int{9, 10, 11}, false},
		{"wrapping range", "11-2", []int{1, 2, 11, 12}, false},
		{"mixed separators", "1;3|5", []int{1, 3, 5}, false},
		{"empty", "", []int{}, false},
		{"out of range", "13", nil, true},
		{"unknown name", "smarch", nil, true},
		{"bad range end", "3-x", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMonths(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMonths(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if months := got.Months(); !reflect.DeepEqual(months, tt.want) {
				t.Errorf("ParseMonths(%q) = %v, want %v", tt.in, months, tt.want)
			}
		})
	}
}

func TestFormatMonths(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"3-5", "Mar-May"},
		{"3-5,9", "Mar-May, Sep"},
		{"11-2", "Nov-Feb"},
		{"1-12", "all year"},
		{"6", "Jun"},
		{"", ""},
	}

	for _, tt := range tests {
		set, err := ParseMonths(tt.in)
		if err != nil {
			t.Fatalf("ParseMonths(%q): %v", tt.in, err)
		}
		if got := FormatMonths(set); got != tt.want {
			t.Errorf("FormatMonths(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSunLevel_Distance(t *testing.T) {
	if d := SunFull.Distance(SunShade); d != 2 {
		t.Errorf("full->shade distance = %d, want 2", d)
	}
	if d := SunShade.Distance(SunPartShade); d != 1 {
		t.Errorf("shade->part distance = %d, want 1", d)
	}
	if d := SunPartShade.Distance(SunPartShade); d != 0 {
		t.Errorf("same tier distance = %d, want 0", d)
	}
}
