// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package models

import "time"

// Project is a registered data project. The name doubles as the display name
// and, after whitespace normalization, as the on-disk workspace folder name.
// Records are immutable after creation.
type Project struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Rowset is the structured result of an ad-hoc SQL query. Columns preserves
// the engine's result-column order; each row maps column name to value.
type Rowset struct {
	Columns []string                 `json:"columns"`
	Rows    []map[string]interface{} `json:"rows"`
}
