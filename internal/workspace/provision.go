// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package workspace

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/datanexushq/datanexus/internal/config"
	"github.com/datanexushq/datanexus/internal/logging"
)

const (
	// storeFileName is the DuckDB database file inside each workspace.
	storeFileName = "project.duckdb"

	// layoutFileName is the dashboard layout artifact, written as an empty
	// JSON object at provisioning and never populated by this backend.
	layoutFileName = "dashboard_layout.json"
)

// Provisioner creates and opens per-project workspaces under a root
// directory.
type Provisioner struct {
	root string
	cfg  *config.DatabaseConfig
}

// NewProvisioner returns a Provisioner rooted at root. The root directory is
// created on first use.
func NewProvisioner(root string, cfg *config.DatabaseConfig) *Provisioner {
	return &Provisioner{root: root, cfg: cfg}
}

// Provision creates the workspace for a project (idempotent: an existing
// directory or store file is reused) and returns an open Store handle.
// Filesystem errors are surfaced, never swallowed.
func (p *Provisioner) Provision(projectName string) (*Store, error) {
	dir := filepath.Join(p.root, DirName(projectName))

	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create workspace directory %s: %w", dir, err)
	}

	storePath := filepath.Join(dir, storeFileName)
	store, err := openStore(dir, storePath, p.cfg)
	if err != nil {
		return nil, err
	}

	if err := writeLayoutPlaceholder(dir); err != nil {
		closeQuietly(store)
		return nil, err
	}

	logging.Info().Str("project", projectName).Str("dir", dir).Msg("Workspace provisioned")
	return store, nil
}

// writeLayoutPlaceholder writes the empty layout artifact if absent.
func writeLayoutPlaceholder(dir string) error {
	path := filepath.Join(dir, layoutFileName)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat layout file %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte("{}"), 0o640); err != nil {
		return fmt.Errorf("failed to write layout file %s: %w", path, err)
	}
	return nil
}
