// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/biblio/internal/models"
)

// Root handles GET /. Returns the service banner payload.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, map[string]string{
		"message": "Biblio API - Système de gestion de bibliothèque",
	})
}

// Health handles GET /health. The service reports degraded when the store
// is not reachable; a missing prediction model does not degrade health, it
// only disables /predict.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	storeConnected := h.store != nil && h.store.Connected()

	status := "healthy"
	if !storeConnected {
		status = "degraded"
	}

	respondSuccess(w, r, models.HealthStatus{
		Status:         status,
		Message:        "API is running",
		Version:        Version,
		StoreConnected: storeConnected,
		ModelLoaded:    h.model != nil,
		Uptime:         time.Since(h.startTime).Seconds(),
	})
}
