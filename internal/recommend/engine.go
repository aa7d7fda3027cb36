// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/climate"
	"github.com/tomtom215/verdant/internal/logging"
	"github.com/tomtom215/verdant/internal/metrics"
	"github.com/tomtom215/verdant/internal/prefs"
)

var (
	// ErrNoCatalog is returned by NewEngine when no catalog is supplied.
	ErrNoCatalog = errors.New("recommend: catalog is required")

	// ErrNoRanker is returned by NewEngine when no diversity ranker is supplied.
	ErrNoRanker = errors.New("recommend: diversity ranker is required")

	// ErrRankerCapMismatch is returned by NewEngine when the ranker enforces a
	// different per-category cap than Config.MaxPerCategory.
	ErrRankerCapMismatch = errors.New("recommend: ranker cap does not match max_per_category")
)

// categoryCapper is implemented by rankers that enforce a per-category cap.
type categoryCapper interface {
	MaxPerCategory() int
}

// Outcome labels recorded per pipeline run.
const (
	outcomeSatisfied = "satisfied"
	outcomeRelaxed   = "relaxed"
	outcomeExhausted = "exhausted"
	outcomeEmpty     = "empty"
)

// EnvironmentResolver resolves a site's climate context. It must never fail;
// fallbacks are reported as notes. *climate.Dataset implements it.
type EnvironmentResolver interface {
	Resolve(suburb, override string, month int) (climate.Environment, []string)
}

// Sources bundles the read-only collaborators of the engine.
type Sources struct {
	// Catalog is the plant catalog. Required.
	Catalog *catalog.Catalog

	// Climate resolves environments. Nil uses temperate defaults for every suburb.
	Climate EnvironmentResolver

	// Media resolves plant images. Nil returns media ids as-is.
	Media MediaResolver

	// Ranker applies the diversity cap. Required.
	Ranker Reranker
}

// Engine runs the recommendation pipeline:
//
//	filter -> relax -> score -> diversity rerank -> assemble
//
// It holds only read-only state and is safe for concurrent use.
type Engine struct {
	config  *Config
	logger  zerolog.Logger
	catalog *catalog.Catalog
	climate EnvironmentResolver
	media   MediaResolver
	ranker  Reranker
}

// NewEngine creates a new recommendation engine. A nil cfg uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, src Sources, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if src.Catalog == nil {
		return nil, ErrNoCatalog
	}
	if src.Ranker == nil {
		return nil, ErrNoRanker
	}
	if capper, ok := src.Ranker.(categoryCapper); ok && capper.MaxPerCategory() != cfg.MaxPerCategory {
		return nil, fmt.Errorf("%w: ranker %s caps at %d, config has %d",
			ErrRankerCapMismatch, src.Ranker.Name(), capper.MaxPerCategory(), cfg.MaxPerCategory)
	}

	resolver := src.Climate
	if resolver == nil {
		resolver = (*climate.Dataset)(nil)
	}
	media := src.Media
	if media == nil {
		media = CatalogMedia{}
	}

	e := &Engine{
		config:  cfg.Clone(),
		logger:  logger.With().Str("component", "recommend").Logger(),
		catalog: src.Catalog,
		climate: resolver,
		media:   media,
		ranker:  src.Ranker,
	}

	e.logger.Info().
		Int("plants", src.Catalog.Len()).
		Str("reranker", src.Ranker.Name()).
		Msg("recommendation engine ready")

	return e, nil
}

// GetConfig returns a copy of the engine configuration.
func (e *Engine) GetConfig() *Config {
	return e.config.Clone()
}

// Generate produces recommendations for req. Identical inputs always yield an
// identical Result. Generate only fails when ctx is already done; data-shape
// problems are recovered and reported in Result.Notes.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Generate(ctx context.Context, req Request) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()

	req = e.prepareRequest(ctx, req)
	logger := e.createRequestLogger(req)

	var notes []string
	n := req.N
	switch {
	case n <= 0:
		n = e.config.DefaultN
	case n > e.config.MaxN:
		notes = append(notes, fmt.Sprintf("Requested %d recommendations; limited to %d", n, e.config.MaxN))
		n = e.config.MaxN
	}

	env, envNotes := e.climate.Resolve(req.Suburb, req.ClimateZoneOverride, req.Month)
	notes = append(notes, envNotes...)

	set, prefNotes := prefs.Normalize(req.Preferences, env)
	notes = append(notes, prefNotes...)

	weights, weightNote := e.requestWeights(req.Weights)
	if weightNote != "" {
		notes = append(notes, weightNote)
	}

	logger.Debug().
		Str("suburb", env.Suburb).
		Int("n", n).
		Str("zone", string(env.Zone)).
		Int("month", env.Month).
		Msg("processing recommendation request")

	outcome := Relax(e.catalog.Records(), set, n)
	for i, step := range outcome.Attempted {
		logger.Debug().
			Str("step", string(step)).
			Int("eligible", outcome.Counts[i+1]).
			Msg("relaxation step applied")
	}
	for _, step := range outcome.Applied {
		metrics.RecordRelaxationStep(string(step))
	}
	if outcome.State == StateExhausted {
		logger.Info().
			Int("eligible", len(outcome.Candidates)).
			Int("requested", n).
			Msg("relaxation exhausted")
	}
	notes = append(notes, outcome.Notes(n)...)

	scored := NewScorer(weights).ScoreAll(outcome.Candidates, set, env)
	ranked := e.ranker.Rerank(ctx, scored, n)
	if note := DiversityNote(len(ranked), n, len(scored)); note != "" {
		notes = append(notes, note)
	}

	result := &Result{
		Recommendations: Assemble(ranked, env, e.media),
		Notes:           notes,
	}
	if result.Notes == nil {
		result.Notes = []string{}
	}

	metrics.RecordRecommendation(outcomeLabel(&outcome), outcome.StrictCount(), len(outcome.Candidates),
		len(result.Recommendations), time.Since(start))

	logger.Debug().
		Int("eligible_strict", outcome.StrictCount()).
		Int("eligible_final", len(outcome.Candidates)).
		Str("relaxation", string(outcome.State)).
		Int("returned", len(result.Recommendations)).
		Msg("recommendation complete")

	return result, nil
}

// prepareRequest fills in the request ID from the context or a fresh UUID.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(ctx context.Context, req Request) Request {
	if req.RequestID == "" {
		req.RequestID = logging.RequestIDFromContext(ctx)
	}
	if req.RequestID == "" {
		req.RequestID = logging.GenerateRequestID()
	}
	return req
}

// createRequestLogger creates a logger with request context.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Logger()
}

// requestWeights returns the weights for one request. An invalid override is
// ignored and reported.
func (e *Engine) requestWeights(override *Weights) (Weights, string) {
	if override == nil {
		return e.config.Weights, ""
	}
	if err := override.Validate(); err != nil {
		return e.config.Weights, fmt.Sprintf("Ignored invalid weights override: %v", err)
	}
	return *override, ""
}

func outcomeLabel(o *RelaxOutcome) string {
	switch {
	case len(o.Candidates) == 0:
		return outcomeEmpty
	case o.State == StateExhausted:
		return outcomeExhausted
	case len(o.Applied) > 0:
		return outcomeRelaxed
	default:
		return outcomeSatisfied
	}
}
