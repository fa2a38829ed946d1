// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/datanexushq/datanexus/internal/logging"
	"github.com/datanexushq/datanexus/internal/metrics"
	"github.com/datanexushq/datanexus/internal/registry"
)

// createProjectRequest is the body of POST /create-new-project.
type createProjectRequest struct {
	ProjectName string `json:"project_name" validate:"required,min=1,max=128"`
}

// ListProjects handles GET /.
// Returns every registered project in insertion order.
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.registry.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeInternalError, "failed to list projects", err)
		return
	}

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"projects": projects,
	})
}

// CreateProject handles POST /create-new-project.
//
// The registry commit happens first and is durable before provisioning
// starts. Registry creation and workspace provisioning are not one
// transaction: if provisioning fails the just-created registry row is
// deleted again so no orphaned project record survives. On success the new
// workspace becomes the active session.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req createProjectRequest
	if err := decodeJSONBody(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, "invalid JSON body", err)
		return
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
		return
	}

	proj, err := h.registry.Create(r.Context(), req.ProjectName)
	if err != nil {
		if errors.Is(err, registry.ErrNameConflict) {
			respondError(w, http.StatusConflict, codeConflict,
				"a project with this name already exists", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, codeInternalError, "failed to create project", err)
		return
	}

	store, err := h.provisioner.Provision(proj.Name)
	if err != nil {
		// Compensate: remove the registry row so the name stays reusable.
		if delErr := h.registry.Delete(r.Context(), proj.ID); delErr != nil {
			logging.Error().Err(delErr).Int64("project_id", proj.ID).
				Msg("Failed to compensate registry after provisioning failure")
		}
		respondError(w, http.StatusInternalServerError, codeProvisionFailed,
			"failed to provision project workspace", err)
		return
	}

	h.session.Select(store)
	metrics.ProjectsCreated.Inc()
	logging.Info().Int64("project_id", proj.ID).Str("name", proj.Name).Msg("Project created")

	respondSuccess(w, http.StatusCreated, map[string]interface{}{
		"message": "Project created successfully",
		"project": proj,
	})
}

// SelectProject handles POST /select-current-project/{project_id}.
// Binds the session to the workspace of a known project (last write wins).
func (h *Handler) SelectProject(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "project_id"), 10, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, codeValidationError, "project_id must be an integer", nil)
		return
	}

	proj, err := h.registry.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, registry.ErrProjectNotFound) {
			respondError(w, http.StatusNotFound, codeNotFound, "project not found", nil)
			return
		}
		respondError(w, http.StatusInternalServerError, codeInternalError, "failed to load project", err)
		return
	}

	// Provision is idempotent; for an existing project it reopens the store.
	store, err := h.provisioner.Provision(proj.Name)
	if err != nil {
		respondError(w, http.StatusInternalServerError, codeProvisionFailed,
			"failed to open project workspace", err)
		return
	}

	h.session.Select(store)
	logging.Info().Int64("project_id", proj.ID).Str("name", proj.Name).Msg("Project selected")

	respondSuccess(w, http.StatusOK, map[string]interface{}{
		"message": "Project selected",
		"project": proj,
	})
}
