// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

// Package main is the entry point for the Biblio server application.
//
// Biblio is a library-catalog management service exposing a JSON API over
// books, authors, publishers, categories and loans, plus a prediction
// endpoint backed by a pre-trained linear-regression artifact.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Load settings from environment variables and config files (Koanf v2)
//  2. Document store: Open BadgerDB and optionally seed the sample dataset
//  3. Prediction model: Load the regression artifact (optional, /predict is 503 without it)
//  4. HTTP server: Chi router with CORS, rate limiting and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest priority wins):
//   - Environment variables
//   - Config file (config.yaml, or CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the document store
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/biblio/internal/api"
	"github.com/tomtom215/biblio/internal/catalog"
	"github.com/tomtom215/biblio/internal/config"
	"github.com/tomtom215/biblio/internal/logging"
	"github.com/tomtom215/biblio/internal/predict"
	"github.com/tomtom215/biblio/internal/store"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		// Use default logger for config errors (config not yet available)
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Initialize zerolog with configuration
	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("store_path", cfg.Store.Path).
		Bool("in_memory", cfg.Store.InMemory).
		Str("model_path", cfg.Model.Path).
		Msg("Configuration loaded")

	// Open the document store
	st, err := store.Open(store.Config{Path: cfg.Store.Path, InMemory: cfg.Store.InMemory})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open document store")
	}
	defer func() {
		if err := st.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing document store")
		}
	}()
	logging.Info().Msg("Document store opened")

	// Seed the sample dataset if enabled and the store is empty
	if cfg.Store.SeedSampleData {
		if err := st.SeedSampleData(); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed sample data")
		}
	}

	// Load the prediction model. A missing artifact only disables /predict.
	var model *predict.Model
	model, err = predict.Load(cfg.Model.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Warn().Str("path", cfg.Model.Path).Msg("Model artifact not found, prediction endpoint disabled")
			model = nil
		} else {
			logging.Fatal().Err(err).Msg("Failed to load prediction model")
		}
	}

	handler := api.NewHandler(catalog.NewService(st), st, model, cfg)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(handler, cfg),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Setup signal handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
		cancel()
	}()

	serveErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serveErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logging.Error().Err(err).Msg("HTTP server shutdown error")
		}
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("HTTP server failed")
		}
	}

	logging.Info().Msg("Application stopped gracefully")
}
