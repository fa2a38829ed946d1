// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

// Package api provides the HTTP handlers and routing for the DataNexus
// workspace backend.
//
// errors.go - API error codes
//
// Every failure is caught at the request boundary and turned into a
// structured error body; none of the core's failures crash the process.
package api

// Error codes returned in APIError.Code.
const (
	codeConflict          = "CONFLICT"
	codeNotFound          = "NOT_FOUND"
	codeNoActiveProject   = "NO_ACTIVE_PROJECT"
	codeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	codeIngestFailed      = "INGEST_FAILED"
	codeQueryError        = "QUERY_ERROR"
	codeRawSQLDisabled    = "RAW_SQL_DISABLED"
	codeValidationError   = "VALIDATION_ERROR"
	codeProvisionFailed   = "PROVISION_FAILED"
	codeInternalError     = "INTERNAL_ERROR"
)
