// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

// Package api provides the HTTP handlers and routing for the catalog service.
package api

import (
	"time"

	"github.com/tomtom215/biblio/internal/catalog"
	"github.com/tomtom215/biblio/internal/config"
	"github.com/tomtom215/biblio/internal/predict"
	"github.com/tomtom215/biblio/internal/store"
)

// Version is the service version reported by /health.
const Version = "1.0.0"

// Handler holds the dependencies shared by all HTTP handlers.
//
// model is nil when no artifact was found at startup; the predict endpoint
// then answers 503 while the rest of the API stays up.
type Handler struct {
	catalog   *catalog.Service
	store     *store.Store
	model     *predict.Model
	config    *config.Config
	startTime time.Time
}

// NewHandler creates a Handler with its dependencies injected.
func NewHandler(svc *catalog.Service, st *store.Store, model *predict.Model, cfg *config.Config) *Handler {
	return &Handler{
		catalog:   svc,
		store:     st,
		model:     model,
		config:    cfg,
		startTime: time.Now(),
	}
}
