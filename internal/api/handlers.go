// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package api

import (
	"time"

	"github.com/datanexushq/datanexus/internal/config"
	"github.com/datanexushq/datanexus/internal/registry"
	"github.com/datanexushq/datanexus/internal/session"
	"github.com/datanexushq/datanexus/internal/workspace"
)

// Handler contains the dependencies for the API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: shared response helpers
//   - handlers_projects.go: project registry endpoints
//   - handlers_data.go: ingestion, dashboard, and query endpoints
type Handler struct {
	config      *config.Config
	registry    *registry.Registry
	provisioner *workspace.Provisioner
	session     *session.Session
	pathSep     workspace.PathSeparator
	startTime   time.Time
}

// NewHandler creates the API handler.
//
// The session is owned by the caller and shared with nothing else: all
// operations that need the active workspace go through it, so "no project
// selected" is a session-state error, not an authentication concern.
func NewHandler(cfg *config.Config, reg *registry.Registry, prov *workspace.Provisioner, sess *session.Session) *Handler {
	return &Handler{
		config:      cfg,
		registry:    reg,
		provisioner: prov,
		session:     sess,
		pathSep:     workspace.PathSeparator(cfg.Ingest.PathSeparator),
		startTime:   time.Now(),
	}
}
