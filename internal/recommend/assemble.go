// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"fmt"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/climate"
)

// Assemble converts ranked candidates into recommendation records. Every slice in
// the output is freshly allocated; catalog records are never aliased or modified.
//
//nolint:gocritic // climate.Environment is a read-only input passed by value
func Assemble(ranked []ScoredCandidate, env climate.Environment, media MediaResolver) []Recommendation {
	if media == nil {
		media = CatalogMedia{}
	}

	out := make([]Recommendation, 0, len(ranked))
	for i := range ranked {
		c := &ranked[i]
		p := c.Plant
		out = append(out, Recommendation{
			PlantName:      p.Name,
			ScientificName: p.ScientificName,
			PlantCategory:  p.Category,
			Score:          c.Score,
			Why:            cloneStrings(c.Why),
			Fit: Fit{
				IndoorOK:    p.IndoorOK,
				ContainerOK: p.ContainerOK,
				SunNeed:     p.SunNeed,
				Habit:       p.Habit,
			},
			Sowing: Sowing{
				SeasonLabel: c.SeasonLabel,
				ClimateZone: string(env.Zone),
				Months:      p.SowingWindow(string(env.Zone)).Months(),
			},
			Companions: catalog.Companions{
				Beneficial: cloneStrings(p.Companions.Beneficial),
				Harmful:    cloneStrings(p.Companions.Harmful),
				Neutral:    cloneStrings(p.Companions.Neutral),
			},
			Media: media.Resolve(p),
		})
	}
	return out
}

// DiversityNote returns the note describing a result shortened by the diversity
// cap, or "" when the cap did not shorten it.
func DiversityNote(returned, requested, eligible int) string {
	if returned >= requested || eligible <= returned {
		return ""
	}
	return fmt.Sprintf("Diversity cap limited results to %d of %d requested", returned, requested)
}

// cloneStrings copies s. The result is never nil.
func cloneStrings(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}
