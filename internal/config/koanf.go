// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"verdant.yaml",
	"verdant.yml",
	"config.yaml",
	"/etc/verdant/verdant.yaml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "VERDANT_CONFIG"

// defaultConfig returns a Config struct with all default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Dir:   "data/plants",
			Paths: []string{},
		},
		Climate: ClimateConfig{
			DatasetPath: "data/climate.json",
			DefaultZone: "temperate",
		},
		Recommend: RecommendConfig{
			DefaultN:       5,
			MaxN:           50,
			MaxPerCategory: 2,
			Weights: WeightsConfig{
				SiteFit:            20,
				SunFit:             20,
				MaintenanceFit:     15,
				WateringFit:        10,
				ColorFragranceFit:  10,
				TimeToResultsFit:   10,
				SeasonAlignmentFit: 10,
				TypeFit:            5,
			},
		},
		Media: MediaConfig{
			BaseURL: "",
		},
		Metrics: MetricsConfig{
			Textfile: "",
		},
	}
}

// Load loads configuration using Koanf v2 with layered sources:
//  1. Defaults: Built-in defaults
//  2. Config File: path if non-empty (must exist), else the first of
//     VERDANT_CONFIG and DefaultConfigPaths that exists
//  3. Environment Variables: VERDANT_* overrides
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Layer 1: Load defaults from struct
	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// Layer 2: Load config file
	configPath := path
	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	// Layer 3: Load environment variables (highest priority)
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile searches for a config file in the default paths.
// Returns the path to the first file found, or empty string if none found.
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}

	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}

	return ""
}

// sliceConfigPaths defines which config paths should be parsed as comma-separated slices
var sliceConfigPaths = []string{
	"catalog.paths",
}

// processSliceFields converts comma-separated string values to slices for known slice fields.
// Env vars arrive as strings while the config expects slices.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf config paths.
var envMappings = map[string]string{
	// Logging
	"verdant_log_level":  "logging.level",
	"verdant_log_format": "logging.format",
	"verdant_log_caller": "logging.caller",

	// Catalog
	"verdant_catalog_dir":   "catalog.dir",
	"verdant_catalog_paths": "catalog.paths",

	// Climate
	"verdant_climate_dataset":      "climate.dataset_path",
	"verdant_climate_default_zone": "climate.default_zone",

	// Recommendation engine
	"verdant_default_n":        "recommend.default_n",
	"verdant_max_n":            "recommend.max_n",
	"verdant_max_per_category": "recommend.max_per_category",

	// Scoring weights
	"verdant_weight_site_fit":             "recommend.weights.site_fit",
	"verdant_weight_sun_fit":              "recommend.weights.sun_fit",
	"verdant_weight_maintenance_fit":      "recommend.weights.maintenance_fit",
	"verdant_weight_watering_fit":         "recommend.weights.watering_fit",
	"verdant_weight_color_fragrance_fit":  "recommend.weights.color_fragrance_fit",
	"verdant_weight_time_to_results_fit":  "recommend.weights.time_to_results_fit",
	"verdant_weight_season_alignment_fit": "recommend.weights.season_alignment_fit",
	"verdant_weight_type_fit":             "recommend.weights.type_fit",

	// Media
	"verdant_media_base_url": "media.base_url",

	// Metrics
	"verdant_metrics_textfile": "metrics.textfile",
}

// envTransformFunc transforms environment variable names to koanf config paths.
//
// Examples:
//   - VERDANT_LOG_LEVEL -> logging.level
//   - VERDANT_MAX_PER_CATEGORY -> recommend.max_per_category
//   - VERDANT_WEIGHT_SUN_FIT -> recommend.weights.sun_fit
func envTransformFunc(key string) string {
	if mapped, ok := envMappings[strings.ToLower(key)]; ok {
		return mapped
	}

	// Unmapped keys are skipped so unrelated environment variables never reach the config.
	return ""
}
