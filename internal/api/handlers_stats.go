// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package api

import "net/http"

// Stats handles GET /stats. Returns collection counts and the per-category
// book breakdown sorted by count descending.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.catalog.Stats()
	if err != nil {
		respondCatalogError(w, r, err)
		return
	}

	respondSuccess(w, r, stats)
}
