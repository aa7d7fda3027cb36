// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/climate"
	"github.com/tomtom215/verdant/internal/prefs"
)

// Partial credit values.
const (
	creditFull           = 1.0
	creditHalf           = 0.5
	creditWateringNear   = 0.34
	creditPlanAhead      = 0.5
	penaltyOutOfSeason   = -0.5
	slowResultsTolerance = 1.5
)

// Scorer computes weighted scores and justifications. It holds no mutable state
// and is safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with w normalized to sum to 100.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w.Normalize()}
}

// Weights returns the normalized weights in use.
func (s *Scorer) Weights() Weights {
	return s.weights
}

// dimension evaluates one scoring axis, returning its credit in [-1, 1] and a
// justification used when the contribution is positive.
type dimension struct {
	weight float64
	eval   func(p *catalog.PlantRecord, set *prefs.Set, env *climate.Environment) (float64, string)
}

func (s *Scorer) dimensions() []dimension {
	return []dimension{
		{s.weights.SiteFit, siteFit},
		{s.weights.SunFit, sunFit},
		{s.weights.MaintenanceFit, maintenanceFit},
		{s.weights.WateringFit, wateringFit},
		{s.weights.ColorFragranceFit, colorFragranceFit},
		{s.weights.TimeToResultsFit, timeToResultsFit},
		{s.weights.SeasonAlignmentFit, seasonAlignmentFit},
		{s.weights.TypeFit, typeFit},
	}
}

// ScoreAll scores every plant, preserving input order.
//
//nolint:gocritic // prefs.Set and climate.Environment are read-only inputs passed by value
func (s *Scorer) ScoreAll(plants []*catalog.PlantRecord, set prefs.Set, env climate.Environment) []ScoredCandidate {
	dims := s.dimensions()
	out := make([]ScoredCandidate, 0, len(plants))
	for _, p := range plants {
		out = append(out, s.score(dims, p, &set, &env))
	}
	return out
}

// Score scores a single plant.
//
//nolint:gocritic // prefs.Set and climate.Environment are read-only inputs passed by value
func (s *Scorer) Score(p *catalog.PlantRecord, set prefs.Set, env climate.Environment) ScoredCandidate {
	return s.score(s.dimensions(), p, &set, &env)
}

func (s *Scorer) score(dims []dimension, p *catalog.PlantRecord, set *prefs.Set, env *climate.Environment) ScoredCandidate {
	total := 0.0
	why := make([]string, 0, len(dims))
	for _, d := range dims {
		credit, reason := d.eval(p, set, env)
		contribution := d.weight * credit
		total += contribution
		if contribution > 0 && reason != "" {
			why = append(why, reason)
		}
	}

	label := SeasonPlanAhead
	if inSeason(p, env) {
		label = SeasonStartNow
	}

	return ScoredCandidate{
		Plant:       p,
		Score:       roundScore(total),
		Why:         why,
		SeasonLabel: label,
	}
}

// roundScore clamps to [0, 100] and rounds to one decimal.
func roundScore(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > weightTotal {
		v = weightTotal
	}
	return math.Round(v*10) / 10
}

func inSeason(p *catalog.PlantRecord, env *climate.Environment) bool {
	return p.SowingWindow(string(env.Zone)).Contains(env.Month)
}

// siteFit is the mean of the applicable location, container and wind checks.
func siteFit(p *catalog.PlantRecord, set *prefs.Set, _ *climate.Environment) (float64, string) {
	site := set.Site
	var sum float64
	var checks int
	var phrases []string

	checks++
	switch site.LocationType {
	case prefs.LocationIndoor:
		if p.IndoorOK {
			sum += creditFull
			phrases = append(phrases, "grows well indoors")
		}
	case prefs.LocationBalcony, prefs.LocationRooftop, prefs.LocationWindowsill:
		if p.ContainerOK {
			sum += creditFull
			phrases = append(phrases, fmt.Sprintf("suited to %s growing", site.LocationType))
		}
	default:
		sum += creditFull
		phrases = append(phrases, fmt.Sprintf("suited to %s planting", site.LocationType))
	}

	if site.Containers {
		checks++
		switch {
		case !p.ContainerOK:
		case site.SmallContainersOnly() && windSensitive(p):
			sum += creditHalf
		default:
			sum += creditFull
			phrases = append(phrases, "container-friendly")
		}
	}

	// Self-supporting tall habits earn half credit so low habits rank first.
	if site.Windy() {
		checks++
		switch {
		case !p.Habit.Tall():
			sum += creditFull
			phrases = append(phrases, "wind-tolerant habit")
		case !windSensitive(p):
			sum += creditHalf
			phrases = append(phrases, "self-supporting habit")
		}
	}

	return sum / float64(checks), sentence(phrases)
}

func sunFit(p *catalog.PlantRecord, set *prefs.Set, _ *climate.Environment) (float64, string) {
	switch p.SunNeed.Distance(set.Site.SunExposure) {
	case 0:
		return creditFull, fmt.Sprintf("Matches %s %s position", sunPhrase(set.Site.SunExposure), set.Site.LocationType)
	case 1:
		return creditHalf, fmt.Sprintf("Tolerates a %s position (prefers %s)",
			sunPhrase(set.Site.SunExposure), sunPhrase(p.SunNeed))
	default:
		return 0, ""
	}
}

func sunPhrase(s catalog.SunLevel) string {
	switch s {
	case catalog.SunFull:
		return "full-sun"
	case catalog.SunPartShade:
		return "part-shade"
	default:
		return "shady"
	}
}

func maintenanceFit(p *catalog.PlantRecord, set *prefs.Set, _ *climate.Environment) (float64, string) {
	want := set.Preferences.Maintainability
	switch {
	case p.Maintenance <= want:
		if p.Maintenance == catalog.LevelLow {
			return creditFull, "Low maintenance"
		}
		return creditFull, fmt.Sprintf("%s maintenance fits your preference", capitalize(p.Maintenance.String()))
	case p.Maintenance == want+1:
		return creditHalf, fmt.Sprintf("Needs %s maintenance, slightly above your preference", p.Maintenance)
	default:
		return 0, ""
	}
}

func wateringFit(p *catalog.PlantRecord, set *prefs.Set, env *climate.Environment) (float64, string) {
	want := set.Preferences.Watering
	var credit float64
	var reason string
	switch {
	case p.WaterNeed <= want:
		credit = creditFull
		reason = fmt.Sprintf("%s water needs suit your watering routine", capitalize(p.WaterNeed.String()))
	case p.WaterNeed == want+1:
		credit = creditWateringNear
		reason = fmt.Sprintf("%s water needs, slightly above your watering preference", capitalize(p.WaterNeed.String()))
	default:
		return 0, ""
	}
	if p.WaterNeed == catalog.LevelHigh && (env.Hot() || env.Dry()) {
		credit /= 2
	}
	return credit, reason
}

func colorFragranceFit(p *catalog.PlantRecord, set *prefs.Set, _ *climate.Environment) (float64, string) {
	want := set.Preferences
	stated := 0
	satisfied := 0

	var matched []string
	if len(want.Colors) > 0 {
		stated++
		for _, c := range want.Colors {
			if p.HasColor(c) {
				matched = append(matched, c)
			}
		}
		if len(matched) > 0 {
			satisfied++
		}
	}

	fragrant := false
	if want.Fragrant {
		stated++
		if p.Fragrant {
			satisfied++
			fragrant = true
		}
	}

	if stated == 0 || satisfied == 0 {
		return 0, ""
	}

	credit := float64(satisfied) / float64(stated)
	if len(matched) == 0 {
		return credit, "Fragrant, as requested"
	}

	noun := "varieties match"
	if p.Category == catalog.CategoryFlower {
		noun = "bloom matches"
	}
	colors := strings.Join(matched, " and ")
	if fragrant {
		return credit, fmt.Sprintf("Fragrant %s %s color preference", colors, noun)
	}
	return credit, fmt.Sprintf("%s %s color preference", capitalize(colors), noun)
}

func timeToResultsFit(p *catalog.PlantRecord, set *prefs.Set, _ *climate.Environment) (float64, string) {
	days := p.DaysToResults
	if days <= 0 {
		return 0, ""
	}
	limit := set.Preferences.TimeToResults.MaxDays()
	switch {
	case limit == 0 || days <= limit:
		return creditFull, fmt.Sprintf("Ready in about %d days", days)
	case float64(days) <= float64(limit)*slowResultsTolerance:
		return creditHalf, fmt.Sprintf("Ready in about %d days, a little slower than hoped", days)
	default:
		return 0, ""
	}
}

func seasonAlignmentFit(p *catalog.PlantRecord, set *prefs.Set, env *climate.Environment) (float64, string) {
	window := p.SowingWindow(string(env.Zone))
	if window.Contains(env.Month) {
		return creditFull, fmt.Sprintf("In its %s sowing window now (%s)", env.Zone, catalog.FormatMonths(window))
	}
	if set.Preferences.SeasonIntent == prefs.IntentPlanAhead {
		if window.Empty() {
			return 0, ""
		}
		return creditPlanAhead, fmt.Sprintf("Plan ahead: sow in %s", catalog.FormatMonths(window))
	}
	return penaltyOutOfSeason, ""
}

func typeFit(p *catalog.PlantRecord, set *prefs.Set, _ *climate.Environment) (float64, string) {
	for _, tag := range set.Preferences.TypeTags() {
		if p.HasTag(tag) {
			return creditFull, fmt.Sprintf("Matches requested type: %s", tag)
		}
	}
	return 0, ""
}

// sentence joins phrases and capitalizes the first letter.
func sentence(phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return capitalize(strings.Join(phrases, ", "))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
