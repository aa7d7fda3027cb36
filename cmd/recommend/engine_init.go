// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/verdant/internal/catalog"
	"github.com/tomtom215/verdant/internal/climate"
	"github.com/tomtom215/verdant/internal/config"
	"github.com/tomtom215/verdant/internal/recommend"
	"github.com/tomtom215/verdant/internal/recommend/reranking"
)

// catalogPaths picks the catalog files: explicit flag paths, then configured
// paths, then every CSV discovered under the configured directory.
func catalogPaths(flagPaths []string, cfg *config.Config) ([]string, error) {
	if len(flagPaths) > 0 {
		return flagPaths, nil
	}
	if len(cfg.Catalog.Paths) > 0 {
		return cfg.Catalog.Paths, nil
	}
	return catalog.Discover(cfg.Catalog.Dir)
}

// initEngine loads the catalog and climate dataset and builds the engine.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initEngine(ctx context.Context, cfg *config.Config, paths []string, climatePath string, logger zerolog.Logger) (*recommend.Engine, error) {
	plants, err := catalog.Load(ctx, logger.With().Str("component", "catalog").Logger(), paths...)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	dataset, err := climate.LoadDataset(climatePath, climate.Zone(cfg.Climate.DefaultZone))
	if err != nil {
		return nil, fmt.Errorf("load climate dataset: %w", err)
	}
	logger.Info().
		Str("path", climatePath).
		Int("suburbs", dataset.Len()).
		Str("default_zone", string(dataset.DefaultZone())).
		Msg("climate dataset loaded")

	src := recommend.Sources{
		Catalog: plants,
		Climate: dataset,
		Media:   recommend.CatalogMedia{BaseURL: cfg.Media.BaseURL},
		Ranker:  reranking.NewCategoryCap(cfg.Recommend.MaxPerCategory),
	}

	engine, err := recommend.NewEngine(buildEngineConfig(cfg), src, logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}
	return engine, nil
}

// buildEngineConfig maps application configuration onto the engine configuration.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	w := cfg.Recommend.Weights
	return &recommend.Config{
		DefaultN:       cfg.Recommend.DefaultN,
		MaxN:           cfg.Recommend.MaxN,
		MaxPerCategory: cfg.Recommend.MaxPerCategory,
		Weights: recommend.Weights{
			SiteFit:            w.SiteFit,
			SunFit:             w.SunFit,
			MaintenanceFit:     w.MaintenanceFit,
			WateringFit:        w.WateringFit,
			ColorFragranceFit:  w.ColorFragranceFit,
			TimeToResultsFit:   w.TimeToResultsFit,
			SeasonAlignmentFit: w.SeasonAlignmentFit,
			TypeFit:            w.TypeFit,
		},
	}
}
