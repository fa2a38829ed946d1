// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

// Package models defines the shared data types exchanged between the API
// layer, the project registry, and the workspace store.
package models

import (
	"time"
)

// APIResponse is the standardized response wrapper used by all HTTP endpoints.
//
// Status field values:
//   - "success": request completed, see Data
//   - "error": request failed, see Error
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {"code": "NO_ACTIVE_PROJECT", "message": "no project selected"},
//	  "metadata": {"timestamp": "2026-08-28T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError carries a machine-readable code and a human-readable message.
//
// Codes used by this API: CONFLICT, NOT_FOUND, NO_ACTIVE_PROJECT,
// UNSUPPORTED_FORMAT, INGEST_FAILED, QUERY_ERROR, RAW_SQL_DISABLED,
// VALIDATION_ERROR, PROVISION_FAILED, INTERNAL_ERROR.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}
