// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/biblio/internal/config"
	"github.com/tomtom215/biblio/internal/middleware"
)

// NewRouter wires the HTTP routes and middleware stack around the handlers.
func NewRouter(h *Handler, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// ========================
	// Global Middleware Stack
	// ========================
	// Applied to ALL routes in order
	r.Use(middleware.RequestID)      // X-Request-ID header + logging context
	r.Use(chimiddleware.RealIP)      // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)   // Recover from panics
	r.Use(corsHandler(cfg))          // CORS must be global to handle OPTIONS preflight
	r.Use(middleware.AccessLog)      // One structured log line per request
	r.Use(middleware.PrometheusMetrics)

	if !cfg.Security.RateLimitDisabled {
		r.Use(httprate.LimitByIP(cfg.Security.RateLimitReqs, cfg.Security.RateLimitWindow))
	}

	// ========================
	// Service Endpoints
	// ========================
	r.Get("/", h.Root)
	r.Get("/health", h.Health)
	r.Handle("/metrics", promhttp.Handler())

	// ========================
	// Catalog Endpoints
	// ========================
	r.Route("/livres", func(r chi.Router) {
		r.Get("/", h.Books)
		r.Get("/details", h.BookDetails)
		r.Post("/", h.CreateBook)
	})

	r.Route("/emprunts", func(r chi.Router) {
		r.Get("/", h.Loans)
		r.Post("/", h.CreateLoan)
		r.Delete("/{id}", h.ReturnLoan)
	})

	r.Route("/auteurs", func(r chi.Router) {
		r.Get("/", h.Authors)
		r.Post("/", h.CreateAuthor)
	})

	r.Route("/editeurs", func(r chi.Router) {
		r.Get("/", h.Publishers)
		r.Post("/", h.CreatePublisher)
	})

	r.Route("/categories", func(r chi.Router) {
		r.Get("/", h.Categories)
		r.Post("/", h.CreateCategory)
	})

	r.Get("/stats", h.Stats)
	r.Get("/predict", h.Predict)

	return r
}

// corsHandler builds the CORS middleware from the configured origins.
func corsHandler(cfg *config.Config) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Security.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
