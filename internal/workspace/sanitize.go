// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

// Package workspace manages per-project analytical workspaces: a directory
// per project holding one DuckDB database file and one dashboard layout
// artifact, plus the ingestion and query operations against that store.
package workspace

import "strings"

// tableIdentReplacer maps the characters that commonly appear in file names
// but are not safe in an unquoted SQL identifier.
var tableIdentReplacer = strings.NewReplacer("-", "_", " ", "_", ".", "_")

// TableIdent derives a SQL table identifier from a file stem by replacing
// hyphens, spaces, and periods with underscores. Total and idempotent.
//
// Reserved words, empty results, and non-ASCII identifiers are not checked;
// the store quotes identifiers at the point of use.
func TableIdent(stem string) string {
	return tableIdentReplacer.Replace(stem)
}

// DirName derives a workspace directory name from a project name by replacing
// spaces with underscores. This is deliberately a narrower transform than
// TableIdent: directory names and SQL identifiers are different identifier
// spaces, and unifying the two would change observed directory names.
func DirName(projectName string) string {
	return strings.ReplaceAll(projectName, " ", "_")
}
