// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package validation provides struct validation using go-playground/validator v10.
//
// The package wraps a thread-safe singleton validator that reports field names
// from `json` struct tags, so errors name fields the way they appear in the
// preferences document and the climate dataset rather than by Go identifier.
//
// # Quick Start
//
//	type Site struct {
//	    LocationType string  `json:"location_type" validate:"omitempty,oneof=balcony backyard indoor"`
//	    AreaM2       float64 `json:"area_m2" validate:"gte=0"`
//	}
//
//	if verr := validation.ValidateStruct(&site); verr != nil {
//	    for _, fe := range verr.Errors() {
//	        fmt.Println(fe.Path(), fe.Tag(), fe.Value())
//	    }
//	}
//
// # Error Types
//
// ValidationError represents a single field validation failure:
//
//	Field()     string // JSON field name ("location_type")
//	Namespace() string // full validator namespace ("Input.site.location_type")
//	Path()      string // namespace without the root type ("site.location_type")
//	Tag()       string // failed tag ("oneof")
//	Param()     string // tag parameter ("balcony backyard indoor")
//	Value()     any    // offending value
//
// RequestValidationError aggregates the failures of one ValidateStruct call and
// indexes them by Path for callers that substitute defaults field by field.
//
// # Error Message Translation
//
//	required   -> "location_type is required"
//	oneof=a b  -> "goal must be one of: a b"
//	gte=0      -> "area_m2 must be greater than or equal to 0"
//	min=1      -> "n must be at least 1"
//
// # Thread Safety
//
// The singleton validator is initialized once and safe for concurrent use.
package validation
