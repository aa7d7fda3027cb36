// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package reranking

import (
	"context"
	"sort"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/recommend"
)

// DefaultMaxPerCategory is the cap used when a non-positive cap is configured.
const DefaultMaxPerCategory = 2

// maxRerankSize limits slice allocations; k is also bounded by len(items).
const maxRerankSize = 10000

// CategoryCap enforces a per-category limit over the full candidate pool.
//
// Candidates are sorted by score descending (ties broken by catalog order) and
// walked once. A candidate is accepted only while its category has fewer than
// maxPerCategory accepted items and its identity has not been accepted before.
// Rejected candidates are dropped; there is no backfill, so the result can be
// shorter than k even when more candidates exist.
type CategoryCap struct {
	maxPerCategory int
}

// NewCategoryCap creates a category-capping reranker.
func NewCategoryCap(maxPerCategory int) *CategoryCap {
	if maxPerCategory < 1 {
		maxPerCategory = DefaultMaxPerCategory
	}
	return &CategoryCap{maxPerCategory: maxPerCategory}
}

// Name returns the reranker identifier.
func (c *CategoryCap) Name() string {
	return "category_cap"
}

// MaxPerCategory returns the configured cap.
func (c *CategoryCap) MaxPerCategory() int {
	return c.maxPerCategory
}

// Rerank sorts items and applies the category cap, returning at most k items.
// The input slice is not modified.
func (c *CategoryCap) Rerank(_ context.Context, items []recommend.ScoredCandidate, k int) []recommend.ScoredCandidate {
	if len(items) == 0 || k <= 0 {
		return []recommend.ScoredCandidate{}
	}

	if k > maxRerankSize {
		k = maxRerankSize
	}
	if k > len(items) {
		k = len(items)
	}

	sorted := make([]recommend.ScoredCandidate, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Score != sorted[j].Score {
			return sorted[i].Score > sorted[j].Score
		}
		return sorted[i].Plant.Index < sorted[j].Plant.Index
	})

	selected := make([]recommend.ScoredCandidate, 0, k)
	perCategory := make(map[catalog.Category]int)
	seen := make(map[string]struct{}, k)

	for i := range sorted {
		if len(selected) == k {
			break
		}
		p := sorted[i].Plant
		if perCategory[p.Category] >= c.maxPerCategory {
			continue
		}
		id := p.Identity()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		perCategory[p.Category]++
		selected = append(selected, sorted[i])
	}

	return selected
}

// Ensure CategoryCap implements the interface.
var _ recommend.Reranker = (*CategoryCap)(nil)
