// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField marks a row or header missing a mandatory value.
	ErrMissingField = errors.New("missing mandatory field")

	// ErrInvalidValue marks a value that cannot be parsed into its typed field.
	ErrInvalidValue = errors.New("invalid value")

	// ErrEmptyCatalog is returned when no records were loaded from any source.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

// LoadError describes a fatal problem reading a catalog source.
// Line is the 1-based line in the file, counting the header and comment
// lines (0 for file-level problems).
type LoadError struct {
	Path  string
	Line  int
	Field string
	Err   error
}

func (e *LoadError) Error() string {
	switch {
	case e.Line > 0 && e.Field != "":
		return fmt.Sprintf("catalog %s: line %d: %s: %v", e.Path, e.Line, e.Field, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("catalog %s: line %d: %v", e.Path, e.Line, e.Err)
	case e.Field != "":
		return fmt.Sprintf("catalog %s: %s: %v", e.Path, e.Field, e.Err)
	case e.Path != "":
		return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
	default:
		return fmt.Sprintf("catalog: %v", e.Err)
	}
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
