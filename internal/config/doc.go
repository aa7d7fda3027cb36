// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

/*
Package config provides centralized configuration management for Verdant.

Configuration is layered with Koanf v2:
  - Built-in defaults (defaultConfig)
  - An optional YAML file (explicit path, VERDANT_CONFIG, or verdant.yaml)
  - VERDANT_* environment variables

# Configuration Structure

  - LoggingConfig: log level, format and caller info
  - CatalogConfig: plant catalog directory or explicit CSV paths
  - ClimateConfig: suburb climate dataset and fallback zone
  - RecommendConfig: result counts, diversity cap and scoring weights
  - MediaConfig: base URL for plant images
  - MetricsConfig: Prometheus textfile export

# Usage Example

	cfg, err := config.Load("")
	if err != nil {
	    log.Fatal(err)
	}
	fmt.Println(cfg.Recommend.MaxPerCategory)

# Environment Variables

	VERDANT_LOG_LEVEL=debug
	VERDANT_CATALOG_PATHS=data/plants/herbs.csv,data/plants/flowers.csv
	VERDANT_CLIMATE_DEFAULT_ZONE=subtropical
	VERDANT_MAX_PER_CATEGORY=3
	VERDANT_WEIGHT_SUN_FIT=30
	VERDANT_MEDIA_BASE_URL=https://cdn.example.com/plants

# Thread Safety

Config is immutable after Load() and safe for concurrent read access.
*/
package config
