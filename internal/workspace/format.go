// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package workspace

import (
	"errors"
	"fmt"
	"strings"
)

// Format is a supported ingestion file format.
type Format string

const (
	FormatCSV     Format = "csv"
	FormatJSON    Format = "json"
	FormatParquet Format = "parquet"
)

// ErrUnsupportedFormat indicates the file extension is outside the supported
// set {csv, json, parquet}.
var ErrUnsupportedFormat = errors.New("unsupported file format")

// PathSeparator selects which separator convention applies to ingested file
// paths. Ingested paths come from the client's filesystem, which is not
// necessarily the host's, so the convention is an explicit configuration
// point rather than a guess.
type PathSeparator string

const (
	// SeparatorAuto splits on backslash when the path contains one,
	// otherwise on forward slash.
	SeparatorAuto PathSeparator = "auto"

	// SeparatorWindows always splits on backslash.
	SeparatorWindows PathSeparator = "windows"

	// SeparatorUnix always splits on forward slash.
	SeparatorUnix PathSeparator = "unix"
)

// baseName returns the final path element according to the separator
// convention.
func baseName(path string, sep PathSeparator) string {
	s := "/"
	switch sep {
	case SeparatorWindows:
		s = `\`
	case SeparatorUnix:
		s = "/"
	default:
		if strings.Contains(path, `\`) {
			s = `\`
		}
	}
	parts := strings.Split(path, s)
	return parts[len(parts)-1]
}

// splitExt splits a file name on its last period. A name with no period
// yields ok=false rather than failing.
func splitExt(name string) (stem, ext string, ok bool) {
	idx := strings.LastIndex(name, ".")
	if idx < 0 {
		return name, "", false
	}
	return name[:idx], name[idx+1:], true
}

// DetectFormat maps a file path to a supported ingestion format. The
// extension match is case-sensitive and exact: "data.PARQUET" is rejected.
// Paths without an extension are rejected explicitly.
func DetectFormat(path string, sep PathSeparator) (Format, error) {
	_, ext, ok := splitExt(baseName(path, sep))
	if !ok {
		return "", fmt.Errorf("%w: file has no extension", ErrUnsupportedFormat)
	}

	switch ext {
	case "csv":
		return FormatCSV, nil
	case "json":
		return FormatJSON, nil
	case "parquet":
		return FormatParquet, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
}

// FileStem returns the file name without directories or extension, suitable
// for passing to TableIdent.
func FileStem(path string, sep PathSeparator) string {
	stem, _, _ := splitExt(baseName(path, sep))
	return stem
}
