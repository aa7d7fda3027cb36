// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package config

import (
	"fmt"
	"strings"

	"github.com/tomtom215/verdant/internal/climate"
	"github.com/tomtom215/verdant/internal/validation"
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateClimate(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	return c.validateMedia()
}

func (c *Config) validateLogging() error {
	if !validLogLevels[strings.ToLower(c.Logging.Level)] {
		return fmt.Errorf("VERDANT_LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("VERDANT_LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateCatalog() error {
	if len(c.Catalog.Paths) == 0 && strings.TrimSpace(c.Catalog.Dir) == "" {
		return fmt.Errorf("catalog.dir or catalog.paths is required")
	}
	for i, p := range c.Catalog.Paths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("catalog.paths[%d] is empty", i)
		}
	}
	return nil
}

func (c *Config) validateClimate() error {
	if _, ok := climate.ParseZone(c.Climate.DefaultZone); !ok {
		return fmt.Errorf("climate.default_zone must be one of: tropical, subtropical, arid, temperate, cool; got %q",
			c.Climate.DefaultZone)
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.DefaultN < 1 {
		return fmt.Errorf("recommend.default_n must be positive, got %d", r.DefaultN)
	}
	if r.MaxN < r.DefaultN {
		return fmt.Errorf("recommend.max_n must be >= recommend.default_n, got %d < %d", r.MaxN, r.DefaultN)
	}
	if r.MaxPerCategory < 1 {
		return fmt.Errorf("recommend.max_per_category must be positive, got %d", r.MaxPerCategory)
	}
	if verr := validation.ValidateStruct(&r.Weights); verr != nil {
		return fmt.Errorf("recommend.weights: %w", verr)
	}
	return nil
}

func (c *Config) validateMedia() error {
	if c.Media.BaseURL == "" {
		return nil
	}
	return validateBaseURL(c.Media.BaseURL, "media.base_url")
}
