// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package workspace

import (
	"errors"
	"testing"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		sep     PathSeparator
		want    Format
		wantErr bool
	}{
		{"csv unix path", "/data/sales.csv", SeparatorAuto, FormatCSV, false},
		{"json unix path", "/data/events.json", SeparatorAuto, FormatJSON, false},
		{"parquet unix path", "x/y/data.parquet", SeparatorAuto, FormatParquet, false},
		{"windows path auto", `C:\data\sales-2024.csv`, SeparatorAuto, FormatCSV, false},
		{"windows path explicit", `C:\data\trips.parquet`, SeparatorWindows, FormatParquet, false},
		{"uppercase extension rejected", "x/y/data.PARQUET", SeparatorAuto, "", true},
		{"mixed case rejected", "a/b.Csv", SeparatorAuto, "", true},
		{"unknown extension", "/data/report.xlsx", SeparatorAuto, "", true},
		{"no extension", "/data/README", SeparatorAuto, "", true},
		{"bare name no extension", "datafile", SeparatorAuto, "", true},
		{"extension in dir only", "/data.d/file", SeparatorUnix, "", true},
		{"unix sep on windows path keeps whole string", `C:\data\x.csv`, SeparatorUnix, FormatCSV, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectFormat(tt.path, tt.sep)
			if tt.wantErr {
				if !errors.Is(err, ErrUnsupportedFormat) {
					t.Errorf("DetectFormat(%q) error = %v, want ErrUnsupportedFormat", tt.path, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DetectFormat(%q) failed: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("DetectFormat(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestDetectFormatErrorNamesExtension(t *testing.T) {
	_, err := DetectFormat("/data/report.xlsx", SeparatorAuto)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); !contains(got, "xlsx") {
		t.Errorf("error %q should name the rejected extension", got)
	}
}

func TestFileStem(t *testing.T) {
	tests := []struct {
		path string
		sep  PathSeparator
		want string
	}{
		{`C:\data\sales-2024.csv`, SeparatorAuto, "sales-2024"},
		{"/data/events.json", SeparatorAuto, "events"},
		{"trips.parquet", SeparatorAuto, "trips"},
		{"noext", SeparatorAuto, "noext"},
		{`C:\dir\archive.tar.gz`, SeparatorWindows, "archive.tar"},
	}

	for _, tt := range tests {
		if got := FileStem(tt.path, tt.sep); got != tt.want {
			t.Errorf("FileStem(%q, %q) = %q, want %q", tt.path, tt.sep, got, tt.want)
		}
	}
}

func contains(s, substr string) bool {
	for i := 0; i+len(substr) <= len(s); i++ {
		if s[i:i+len(substr)] == substr {
			return true
		}
	}
	return false
}
