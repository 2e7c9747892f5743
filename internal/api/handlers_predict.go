// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package api

import (
	"net/http"
	"strconv"

	"github.com/tomtom215/biblio/internal/metrics"
	"github.com/tomtom215/biblio/internal/models"
	"github.com/tomtom215/biblio/internal/predict"
)

// Predict handles GET /predict?val=<float>. Applies the pre-trained
// regression to the input. Answers 503 when no model artifact was loaded at
// startup and 400 when val is missing or not a number.
func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	if h.model == nil {
		metrics.RecordPrediction("unavailable")
		respondError(w, r, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Modèle ML non disponible", nil)
		return
	}

	raw := r.URL.Query().Get("val")
	if raw == "" {
		metrics.RecordPrediction("invalid_input")
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter val is required", nil)
		return
	}

	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		metrics.RecordPrediction("invalid_input")
		respondError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Query parameter val must be a number", nil)
		return
	}

	metrics.RecordPrediction("ok")
	respondSuccess(w, r, models.PredictionResult{
		InputValue: val,
		Prediction: h.model.Predict(val),
		ModelInfo:  predict.ModelInfo,
	})
}
