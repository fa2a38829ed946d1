// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

// Package session tracks the workspace currently selected for ingestion and
// query operations. Exactly one workspace is active per process; selections
// replace each other (last write wins) and are never stacked.
//
// The session is an explicit value threaded through the API handler rather
// than a package-level global, so the coupling is visible at construction.
package session

import (
	"errors"
	"sync"

	"github.com/datanexushq/datanexus/internal/logging"
	"github.com/datanexushq/datanexus/internal/workspace"
)

// ErrNoActiveProject indicates an operation that needs a workspace was called
// before any project was created or selected.
var ErrNoActiveProject = errors.New("no project selected")

// Session holds the process-wide binding to the active workspace store.
type Session struct {
	mu      sync.RWMutex
	current *workspace.Store
}

// New returns an unbound session.
func New() *Session {
	return &Session{}
}

// Select binds the session to store, replacing any previous binding. The
// replaced store is closed: the engine is single-writer and an unbound open
// handle would hold the database file for the process lifetime.
func (s *Session) Select(store *workspace.Store) {
	s.mu.Lock()
	previous := s.current
	s.current = store
	s.mu.Unlock()

	if previous != nil && previous != store {
		if err := previous.Close(); err != nil {
			logging.Warn().Err(err).Str("dir", previous.Dir()).Msg("Failed to close previous workspace store")
		}
	}
}

// Current returns the active workspace store, or ErrNoActiveProject if none
// has been selected.
func (s *Session) Current() (*workspace.Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, ErrNoActiveProject
	}
	return s.current, nil
}

// Close releases the active store, if any. Called at shutdown.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	err := s.current.Close()
	s.current = nil
	return err
}
