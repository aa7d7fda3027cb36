// Verdant - Garden Plant Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/verdant

package recommend

import (
	"strings"

	"github.com/tomtom215/verdant/internal/catalog"
)

// CatalogMedia resolves images from the catalog's media id column.
type CatalogMedia struct {
	// BaseURL is joined with relative media ids. Empty leaves ids untouched.
	BaseURL string
}

// Resolve returns the image reference for plant. An empty id has no image;
// absolute http(s) ids are used verbatim.
func (m CatalogMedia) Resolve(plant *catalog.PlantRecord) Media {
	id := strings.TrimSpace(plant.MediaID)
	if id == "" {
		return Media{}
	}
	if isAbsoluteURL(id) || m.BaseURL == "" {
		return Media{ImageURL: id, HasImage: true}
	}
	return Media{
		ImageURL: strings.TrimRight(m.BaseURL, "/") + "/" + strings.TrimLeft(id, "/"),
		HasImage: true,
	}
}

func isAbsoluteURL(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

var _ MediaResolver = CatalogMedia{}
