// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/datanexushq/datanexus/internal/logging"
	"github.com/datanexushq/datanexus/internal/workspace"
)

// ingestRequest is the body of POST /ingest-data. FilePath is a path on the
// client's filesystem; its separator convention is configured, not guessed.
type ingestRequest struct {
	FilePath string `json:"file_path" validate:"required"`
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"uptime": time.Since(h.startTime).String(),
	})
}

// IngestData handles POST /ingest-data.
//
// Pipeline: require an active session, detect the file format, derive the
// table name from the file stem, then let the store's reader materialize the
// table. Exactly one table appears on success; none on any failure path
// (statement atomicity of CREATE TABLE AS SELECT).
func (h *Handler) IngestData(w http.ResponseWriter, r *http.Request) {
	var req ingestRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	store, err := h.session.Current()
	if err != nil {
		respondError(w, http.StatusUnauthorized, codeNoActiveProject,
			"no project selected; create or select a project first", nil)
		return
	}

	format, err := workspace.DetectFormat(req.FilePath, h.pathSep)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, codeUnsupportedFormat,
			"unsupported file format; please upload a CSV, JSON, or Parquet file", err)
		return
	}

	tableName := workspace.TableIdent(workspace.FileStem(req.FilePath, h.pathSep))

	if err := store.Ingest(r.Context(), tableName, format, req.FilePath); err != nil {
		// The engine's message names the real cause (collision, malformed
		// file, unreadable path); pass it through verbatim.
		respondError(w, http.StatusBadGateway, codeIngestFailed, err.Error(), err)
		return
	}

	logging.Info().Str("table", tableName).Str("format", string(format)).Msg("File ingested")

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message":    fmt.Sprintf("Data ingested successfully into table %q", tableName),
		"table_name": tableName,
		"status":     "created",
	})
}

// Dashboard handles GET /project/dashboard.
// Lists the tables of the active workspace.
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	store, err := h.session.Current()
	if err != nil {
		respondError(w, http.StatusUnauthorized, codeNoActiveProject,
			"no project selected; create or select a project first", nil)
		return
	}

	tables, err := store.Tables(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeQueryError, "failed to list tables", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"tables": tables,
	})
}

// ExecuteSQL handles POST /execute-sql?query_str=...
//
// This is a trusted, administrative passthrough: the query runs verbatim
// against the active store with no statement whitelisting, timeout, or
// row-count cap. Deployments that cannot trust their callers disable it via
// api.enable_raw_sql.
func (h *Handler) ExecuteSQL(w http.ResponseWriter, r *http.Request) {
	if !h.config.API.EnableRawSQL {
		respondError(w, http.StatusForbidden, codeRawSQLDisabled,
			"ad-hoc SQL execution is disabled on this server", nil)
		return
	}

	store, err := h.session.Current()
	if err != nil {
		respondError(w, http.StatusUnauthorized, codeNoActiveProject,
			"no project selected; create or select a project first", nil)
		return
	}

	queryStr := r.URL.Query().Get("query_str")
	if queryStr == "" {
		respondError(w, http.StatusBadRequest, codeValidationError, "query_str is required", nil)
		return
	}

	rowset, err := store.Query(r.Context(), queryStr)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeQueryError, err.Error(), err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"results": rowset.Rows,
		"columns": rowset.Columns,
	})
}
