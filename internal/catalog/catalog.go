// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

// Package catalog loads and normalizes plant records from category-partitioned CSV files.
//
// A Catalog is immutable after construction and safe for concurrent readers.
// Records keep their merged load order in PlantRecord.Index, which the
// recommendation engine uses as its stable tie-break.
package catalog

// Catalog is a read-only, deduplicated collection of plant records.
type Catalog struct {
	records []PlantRecord
	skipped []string
}

// New builds a catalog from records, assigning indices in slice order and
// dropping records whose identity has already been seen.
func New(records []PlantRecord) *Catalog {
	c := &Catalog{records: make([]PlantRecord, 0, len(records))}
	seen := make(map[string]struct{}, len(records))
	for i := range records {
		r := records[i]
		id := r.Identity()
		if _, dup := seen[id]; dup || id == "" {
			c.skipped = append(c.skipped, r.Name)
			continue
		}
		seen[id] = struct{}{}
		r.Index = len(c.records)
		c.records = append(c.records, r)
	}
	return c
}

// Records returns the catalog records in load order. The slice must not be modified.
func (c *Catalog) Records() []PlantRecord {
	if c == nil {
		return nil
	}
	return c.records
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.records)
}

// Skipped returns the names of records dropped as duplicates.
func (c *Catalog) Skipped() []string {
	return c.skipped
}

// CountByCategory returns the number of records per category.
func (c *Catalog) CountByCategory() map[Category]int {
	counts := make(map[Category]int, 3)
	for i := range c.Records() {
		counts[c.records[i].Category]++
	}
	return counts
}
