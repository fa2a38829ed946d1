// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/datanexushq/datanexus/internal/middleware"
)

// NewRouter configures all HTTP routes using the Chi router.
//
// The endpoint paths mirror the frontend's contract:
//
//	GET  /                                     project list
//	GET  /health                               liveness
//	GET  /metrics                              Prometheus metrics
//	POST /create-new-project                   register + provision + select
//	POST /select-current-project/{project_id}  bind session to workspace
//	POST /ingest-data                          load a file into the active store
//	GET  /project/dashboard                    table names of the active store
//	POST /execute-sql                          ad-hoc SQL (query_str parameter)
func NewRouter(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   h.config.API.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	if rpm := h.config.API.RateLimitRPM; rpm > 0 {
		r.Use(httprate.LimitByIP(rpm, time.Minute))
	}
	r.Use(middleware.PrometheusMetrics)

	r.Get("/", h.ListProjects)
	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Post("/create-new-project", h.CreateProject)
	r.Post("/select-current-project/{project_id}", h.SelectProject)
	r.Post("/ingest-data", h.IngestData)
	r.Get("/project/dashboard", h.Dashboard)
	r.Post("/execute-sql", h.ExecuteSQL)

	return r
}
