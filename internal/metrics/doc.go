// Biblio - Library Catalog Management Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/biblio

/*
Package metrics provides Prometheus metrics collection for the catalog service.

Metrics are exposed at the /metrics endpoint in Prometheus text format:

	curl http://localhost:8000/metrics

Available metrics:

API metrics:
  - api_requests_total: total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: in-flight requests (gauge)

Store metrics:
  - store_operations_total: document store operations (counter)
    Labels: operation (next_id, insert, get, all, delete, count), collection
  - store_operation_errors_total: failed store operations (counter)
    Labels: operation, collection
  - store_operation_duration_seconds: store operation latency (histogram)
    Labels: operation, collection

Prediction metrics:
  - predictions_total: prediction requests by outcome (counter)
    Labels: outcome (ok, unavailable, invalid_input)

All recording functions are thread-safe; the Prometheus client library handles
synchronization internally. Endpoint labels use the registered route pattern,
never the raw URL, to keep cardinality bounded.
*/
package metrics
