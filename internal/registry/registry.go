// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

// Package registry persists project metadata in a single shared SQLite file,
// independent of any per-project analytical store. A successful Create is
// committed before the caller proceeds to workspace provisioning.
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/datanexushq/datanexus/internal/models"
)

const schema = `
CREATE TABLE IF NOT EXISTS projects (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    created_at TIMESTAMP NOT NULL
);
`

// Registry is the durable mapping from project name to project record.
type Registry struct {
	db *sql.DB
}

// Open opens (creating if necessary) the registry database at path and
// applies the schema.
func Open(path string) (*Registry, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return nil, fmt.Errorf("failed to create registry directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open registry database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		closeQuietly(db)
		return nil, fmt.Errorf("failed to apply registry schema: %w", err)
	}

	return &Registry{db: db}, nil
}

// Create persists a new project and returns the full record. Returns
// ErrNameConflict if a project with the same name (exact match) exists.
// The row is committed before Create returns.
func (r *Registry) Create(ctx context.Context, name string) (*models.Project, error) {
	createdAt := time.Now().UTC()

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, created_at) VALUES (?, ?)`,
		name, createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrNameConflict
		}
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read project id: %w", err)
	}

	return &models.Project{ID: id, Name: name, CreatedAt: createdAt}, nil
}

// Get retrieves a project by id. Returns ErrProjectNotFound for unknown ids.
func (r *Registry) Get(ctx context.Context, id int64) (*models.Project, error) {
	var proj models.Project
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM projects WHERE id = ?`, id,
	).Scan(&proj.ID, &proj.Name, &proj.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &proj, nil
}

// List returns all projects in insertion order.
func (r *Registry) List(ctx context.Context) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM projects ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer closeQuietly(rows)

	var projects []models.Project
	for rows.Next() {
		var proj models.Project
		if err := rows.Scan(&proj.ID, &proj.Name, &proj.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, proj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate projects: %w", err)
	}

	return projects, nil
}

// Delete removes a project record. Used to compensate when workspace
// provisioning fails after the registry commit, so no orphaned record is
// left behind. Returns ErrProjectNotFound for unknown ids.
func (r *Registry) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return ErrProjectNotFound
	}

	return nil
}

// Close closes the underlying database.
func (r *Registry) Close() error {
	return r.db.Close()
}

// isUniqueViolation reports whether err is a SQLite unique constraint failure.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func closeQuietly(c interface{ Close() error }) {
	_ = c.Close()
}
