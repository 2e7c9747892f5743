// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

package models

import "time"

// APIResponse is the envelope for every endpoint.
//
// Success responses carry status "success", the payload in data, and for
// list endpoints the element count. Error responses carry status "error"
// and a machine-readable error.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data,omitempty"`
	Count    *int        `json:"count,omitempty"`
	Error    *APIError   `json:"error,omitempty"`
	Metadata Metadata    `json:"metadata"`
}

// APIError represents an error payload.
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp time.Time `json:"timestamp"`
	RequestID string    `json:"request_id,omitempty"`
}

// InsertResult is the payload returned by every create operation.
type InsertResult struct {
	ID      int64  `json:"id"`
	Message string `json:"message"`
}

// PredictionResult is the payload of the /predict endpoint.
type PredictionResult struct {
	InputValue float64 `json:"input_value"`
	Prediction float64 `json:"prediction"`
	ModelInfo  string  `json:"model_info"`
}

// HealthStatus is the payload of the /health endpoint.
type HealthStatus struct {
	Status         string  `json:"status"`
	Message        string  `json:"message"`
	Version        string  `json:"version"`
	StoreConnected bool    `json:"store_connected"`
	ModelLoaded    bool    `json:"model_loaded"`
	Uptime         float64 `json:"uptime"`
}
