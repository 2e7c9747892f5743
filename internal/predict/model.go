// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

// Package predict wraps the pre-trained scalar regression model.
//
// The model is produced offline by the training pipeline and serialized as a
// JSON artifact holding the fitted parameters. This package only applies the
// regression; it never trains. A missing artifact at startup disables the
// prediction endpoint instead of failing the process.
package predict

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/biblio/internal/logging"
)

// ModelInfo describes the model family in prediction responses.
const ModelInfo = "Linear Regression Model"

// artifact is the on-disk shape of the serialized model. Slope and intercept
// are pointers so an absent field can be told apart from a fitted zero.
type artifact struct {
	Slope     *float64 `json:"slope"`
	Intercept *float64 `json:"intercept"`
	R2        float64  `json:"r2,omitempty"`
	MSE       float64  `json:"mse,omitempty"`
	TrainedAt string   `json:"trained_at,omitempty"`
}

// Model is a fitted scalar linear regression.
type Model struct {
	slope     float64
	intercept float64
}

// Load reads a model artifact from disk.
//
// A missing file is reported with os.ErrNotExist in the chain so the caller
// can treat it as "prediction disabled" rather than a startup failure.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read model artifact %s: %w", path, err)
	}

	var a artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("parse model artifact %s: %w", path, err)
	}
	if a.Slope == nil || a.Intercept == nil {
		return nil, fmt.Errorf("model artifact %s is missing slope or intercept", path)
	}

	m := &Model{slope: *a.Slope, intercept: *a.Intercept}
	logging.Info().
		Float64("slope", m.slope).
		Float64("intercept", m.intercept).
		Float64("r2", a.R2).
		Msg("regression model loaded")
	return m, nil
}

// New builds a model directly from fitted parameters. Intended for tests.
func New(slope, intercept float64) *Model {
	return &Model{slope: slope, intercept: intercept}
}

// Predict applies the fitted regression to a single input.
func (m *Model) Predict(x float64) float64 {
	return m.slope*x + m.intercept
}
