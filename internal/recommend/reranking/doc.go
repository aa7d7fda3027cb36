// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package reranking implements post-processing of scored recommendations.
//
// Reranking is applied after scoring:
//
//	Filter -> Relax -> Score -> Rerankers -> Assemble
//	                           (diversity)
//
// # Available Rerankers
//
// CategoryCap:
//   - Sorts by score descending with catalog order as the tie-break
//   - Accepts at most N plants per category, walking the full pool once
//   - Drops repeated plant identities
//   - Never backfills with over-cap plants, so results may be shorter than k
//
// # Interface
//
// All rerankers implement the recommend.Reranker interface:
//
//	type Reranker interface {
//	    Name() string
//	    Rerank(ctx context.Context, items []ScoredCandidate, k int) []ScoredCandidate
//	}
//
// # Usage Example
//
//	capper := reranking.NewCategoryCap(2)
//	top := capper.Rerank(ctx, scored, 5)
//
// # Thread Safety
//
// Rerankers are stateless after construction and safe for concurrent use.
package reranking
