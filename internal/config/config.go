// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package config

// Config holds all application configuration loaded from defaults, an optional
// YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in defaults for every setting
//  2. Config File: Optional YAML file (verdant.yaml)
//  3. Environment Variables: VERDANT_* overrides
//
// Config is immutable after Load() and safe for concurrent read access.
type Config struct {
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Climate   ClimateConfig   `koanf:"climate"`
	Recommend RecommendConfig `koanf:"recommend"`
	Media     MediaConfig     `koanf:"media"`
	Metrics   MetricsConfig   `koanf:"metrics"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// CatalogConfig locates the plant catalog files.
type CatalogConfig struct {
	// Dir is scanned for *.csv files (and one level of subdirectories) when Paths is empty.
	// Default: data/plants
	Dir string `koanf:"dir"`

	// Paths lists catalog files explicitly, merged in order.
	// Env: VERDANT_CATALOG_PATHS (comma-separated)
	Paths []string `koanf:"paths"`
}

// ClimateConfig locates the suburb climate dataset.
type ClimateConfig struct {
	// DatasetPath is the JSON climate dataset.
	// Default: data/climate.json
	DatasetPath string `koanf:"dataset_path"`

	// DefaultZone is used for suburbs missing from the dataset.
	// Default: temperate
	DefaultZone string `koanf:"default_zone"`
}

// RecommendConfig holds recommendation engine settings.
type RecommendConfig struct {
	// DefaultN is the result count used when a request asks for zero or fewer.
	// Default: 5
	DefaultN int `koanf:"default_n"`

	// MaxN caps the requested result count.
	// Default: 50
	MaxN int `koanf:"max_n"`

	// MaxPerCategory is the diversity cap per plant category.
	// Default: 2
	MaxPerCategory int `koanf:"max_per_category"`

	// Weights are the scoring dimension weights. They are rescaled to sum to 100.
	Weights WeightsConfig `koanf:"weights"`
}

// WeightsConfig holds the raw scoring dimension weights.
type WeightsConfig struct {
	SiteFit            float64 `koanf:"site_fit" validate:"gte=0"`
	SunFit             float64 `koanf:"sun_fit" validate:"gte=0"`
	MaintenanceFit     float64 `koanf:"maintenance_fit" validate:"gte=0"`
	WateringFit        float64 `koanf:"watering_fit" validate:"gte=0"`
	ColorFragranceFit  float64 `koanf:"color_fragrance_fit" validate:"gte=0"`
	TimeToResultsFit   float64 `koanf:"time_to_results_fit" validate:"gte=0"`
	SeasonAlignmentFit float64 `koanf:"season_alignment_fit" validate:"gte=0"`
	TypeFit            float64 `koanf:"type_fit" validate:"gte=0"`
}

// MediaConfig configures plant image resolution.
type MediaConfig struct {
	// BaseURL is joined with relative catalog media ids. Empty means relative ids
	// are returned as-is.
	BaseURL string `koanf:"base_url"`
}

// MetricsConfig configures metrics export.
type MetricsConfig struct {
	// Textfile, when set, receives the Prometheus metrics in textfile-collector format on exit.
	Textfile string `koanf:"textfile"`
}
