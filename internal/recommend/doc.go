// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package recommend implements the plant recommendation pipeline.
//
// # Architecture
//
// A request flows through five stages:
//
//   - Filter: hard eligibility predicates (indoor, container, sun, goal, wind, pollen)
//   - Relax: ordered, cumulative loosening of constraints while too few plants survive
//   - Scorer: weighted soft-preference scoring with one justification per dimension
//   - Reranker: diversity cap per plant category (see package reranking)
//   - Assemble: recommendation records with sowing, companions and media
//
// # Design Principles
//
//   - Deterministic: identical catalog, environment and preferences give identical output
//   - Pure: no stage mutates its inputs or holds process-wide state
//   - Forgiving: invalid preferences and missing climate data become notes, not errors
//   - Observable: pipeline outcomes are recorded as Prometheus metrics
//   - Traceable: request IDs are propagated into every log line
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), recommend.Sources{
//	    Catalog: cat,
//	    Climate: dataset,
//	    Media:   recommend.CatalogMedia{BaseURL: "https://cdn.example.com/plants"},
//	    Ranker:  reranking.NewCategoryCap(2),
//	}, logger)
//	if err != nil {
//	    return err
//	}
//
//	result, err := engine.Generate(ctx, recommend.Request{
//	    Suburb:      "Fitzroy",
//	    N:           5,
//	    Preferences: input,
//	})
//
// # Thread Safety
//
// The engine holds only read-only state after construction and is safe for
// concurrent use without locking.
package recommend
