// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"fmt"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/prefs"
)

// Relaxation is one documented loosening of a hard constraint.
type Relaxation string

const (
	// WidenSunTolerance admits plants one sun tier further from the site's exposure.
	WidenSunTolerance Relaxation = "widen_sun_tolerance"
	// DropContainerRequirement admits plants that are not container-friendly.
	DropContainerRequirement Relaxation = "drop_container_requirement"
	// DropWindExclusion admits tall and climbing plants on windy sites.
	DropWindExclusion Relaxation = "drop_wind_exclusion"
	// RelaxGoalStrictness treats the goal as mixed.
	RelaxGoalStrictness Relaxation = "relax_goal_strictness"
)

// RelaxationOrder is the fixed order in which relaxations are attempted.
var RelaxationOrder = []Relaxation{
	WidenSunTolerance,
	DropContainerRequirement,
	DropWindExclusion,
	RelaxGoalStrictness,
}

// Apply returns c loosened by r. Apply never tightens a constraint.
func (r Relaxation) Apply(c Constraints) Constraints {
	switch r {
	case WidenSunTolerance:
		c.SunTolerance++
	case DropContainerRequirement:
		c.RequireContainer = false
	case DropWindExclusion:
		c.WindExclusion = false
	case RelaxGoalStrictness:
		c.Goal = prefs.GoalMixed
	}
	return c
}

// Note returns the human-readable annotation for an applied relaxation.
func (r Relaxation) Note() string {
	switch r {
	case WidenSunTolerance:
		return "Sun-exposure constraint relaxed to meet requested count"
	case DropContainerRequirement:
		return "Container requirement relaxed to meet requested count"
	case DropWindExclusion:
		return "Wind-exposure habit exclusion relaxed to meet requested count"
	case RelaxGoalStrictness:
		return "Goal relaxed to mixed to meet requested count"
	default:
		return fmt.Sprintf("Constraint %q relaxed to meet requested count", string(r))
	}
}

// RelaxState is the terminal state of the relaxation controller.
type RelaxState string

const (
	// StateSatisfied means at least the target number of candidates was reached.
	StateSatisfied RelaxState = "satisfied"
	// StateExhausted means every relaxation was tried and the target was not reached.
	StateExhausted RelaxState = "exhausted"
)

// RelaxOutcome is the result of Relax.
type RelaxOutcome struct {
	// Candidates is the chosen eligible set, in catalog order.
	Candidates []*catalog.PlantRecord

	// State is the terminal state.
	State RelaxState

	// Applied lists the relaxations that produced Candidates, in order.
	Applied []Relaxation

	// Attempted lists every relaxation that was tried, in order.
	Attempted []Relaxation

	// Counts[0] is the strict count; Counts[i] is the count after Attempted[i-1].
	Counts []int

	// Constraints are the constraints that produced Candidates.
	Constraints Constraints
}

// StrictCount returns the number of candidates of the strict pass.
func (o *RelaxOutcome) StrictCount() int {
	if len(o.Counts) == 0 {
		return 0
	}
	return o.Counts[0]
}

// Notes returns the process annotations for this outcome.
func (o *RelaxOutcome) Notes(target int) []string {
	notes := make([]string, 0, len(o.Applied)+1)
	for _, r := range o.Applied {
		notes = append(notes, r.Note())
	}
	if o.State == StateExhausted {
		if len(o.Candidates) == 0 {
			notes = append(notes, "No plants matched your site and preferences")
		} else {
			notes = append(notes, fmt.Sprintf("Only %d eligible plants found after relaxing all constraints (requested %d)",
				len(o.Candidates), target))
		}
	}
	return notes
}

// Relax runs the strict hard filter and, while fewer than target plants survive,
// applies the relaxations in RelaxationOrder cumulatively. Relaxations that would
// not change the constraints are skipped. When every relaxation is exhausted the
// largest eligible set is returned, preferring the least relaxed on ties.
//
//nolint:gocritic // prefs.Set passed by value to keep the filter free of shared state
func Relax(plants []catalog.PlantRecord, set prefs.Set, target int) RelaxOutcome {
	current := StrictConstraints(set)
	eligible := Filter(plants, set, current)

	out := RelaxOutcome{
		Candidates:  eligible,
		State:       StateSatisfied,
		Counts:      []int{len(eligible)},
		Constraints: current,
	}
	if len(eligible) >= target {
		return out
	}

	bestCount := len(eligible)
	bestStep := 0
	for _, step := range RelaxationOrder {
		next := step.Apply(current)
		if next == current {
			continue
		}
		current = next
		eligible = Filter(plants, set, current)
		out.Attempted = append(out.Attempted, step)
		out.Counts = append(out.Counts, len(eligible))

		if len(eligible) > bestCount {
			bestCount = len(eligible)
			bestStep = len(out.Attempted)
			out.Candidates = eligible
			out.Constraints = current
		}
		if len(eligible) >= target {
			out.Applied = out.Attempted
			return out
		}
	}

	out.State = StateExhausted
	out.Applied = out.Attempted[:bestStep]
	return out
}
