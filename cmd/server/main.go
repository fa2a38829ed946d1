// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

// Package main is the entry point for the DataNexus server.
//
// DataNexus is a data-project workspace backend: users create named projects,
// ingest CSV/JSON/Parquet files into a per-project DuckDB analytical store,
// browse the resulting tables, and run ad-hoc SQL against the active project.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: Koanf v2 layered sources (defaults, YAML file, env vars)
//  2. Registry: SQLite catalog of projects (id, name, created_at)
//  3. Provisioner: per-project workspace directories with DuckDB stores
//  4. Session: in-memory binding of the process to one active project
//  5. HTTP Server: Chi router with the REST API and Prometheus metrics
//
// # Configuration
//
// Configuration is loaded via Koanf v2 with layered sources (highest
// priority wins):
//   - Environment variables (DATANEXUS_ prefix)
//   - Config file (config.yaml, or DATANEXUS_CONFIG)
//   - Built-in defaults
//
// # Signal Handling
//
// The server handles graceful shutdown on SIGINT and SIGTERM:
//   - Stops accepting new connections
//   - Waits for in-flight requests to complete (10s timeout)
//   - Closes the active session's store and the project registry
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/datanexushq/datanexus/internal/api"
	"github.com/datanexushq/datanexus/internal/config"
	"github.com/datanexushq/datanexus/internal/logging"
	"github.com/datanexushq/datanexus/internal/registry"
	"github.com/datanexushq/datanexus/internal/session"
	"github.com/datanexushq/datanexus/internal/workspace"
)

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
		Str("registry_path", cfg.Registry.Path).
		Str("workspace_root", cfg.Workspace.Root).
		Bool("raw_sql_enabled", cfg.API.EnableRawSQL).
		Msg("Configuration loaded")

	reg, err := registry.Open(cfg.Registry.Path)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open project registry")
	}
	defer func() {
		if err := reg.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing project registry")
		}
	}()
	logging.Info().Msg("Project registry initialized")

	provisioner := workspace.NewProvisioner(cfg.Workspace.Root, &cfg.Database)
	sess := session.New()
	defer func() {
		if err := sess.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing active session")
		}
	}()

	if !cfg.API.EnableRawSQL {
		logging.Warn().Msg("Ad-hoc SQL execution disabled (api.enable_raw_sql=false)")
	}

	handler := api.NewHandler(cfg, reg, provisioner, sess)
	router := api.NewRouter(handler)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	// Setup signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", server.Addr).Msg("HTTP server listening")
		serverErr <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		logging.Info().Msg("Received shutdown signal")
	case err := <-serverErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error().Err(err).Msg("HTTP server error")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("HTTP server shutdown error")
	}

	logging.Info().Msg("Application stopped gracefully")
}
