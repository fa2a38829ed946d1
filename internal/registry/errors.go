// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package registry

import "errors"

var (
	// ErrNameConflict indicates a project with the same name already exists.
	ErrNameConflict = errors.New("project name already exists")

	// ErrProjectNotFound indicates no project exists with the given id.
	ErrProjectNotFound = errors.New("project not found")
)
