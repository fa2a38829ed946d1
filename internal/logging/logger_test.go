// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInitAndLevels(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "debug", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Debug().Str("k", "v").Msg("debug message")
	Info().Msg("info message")

	out := buf.String()
	if !strings.Contains(out, "debug message") {
		t.Errorf("expected debug message in output, got %q", out)
	}
	if !strings.Contains(out, `"k":"v"`) {
		t.Errorf("expected structured field in output, got %q", out)
	}
	if !strings.Contains(out, "info message") {
		t.Errorf("expected info message in output, got %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(Config{Level: "warn", Format: "json", Output: &buf})
	defer Init(DefaultConfig())

	Info().Msg("should be filtered")
	Warn().Msg("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Errorf("info message should be filtered at warn level, got %q", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Errorf("warn message missing, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
		{"WARN", zerolog.WarnLevel},
		{"bogus", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewTestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTestLogger(&buf)
	logger.Info().Str("table", "sales_2024").Msg("ingested")

	if !strings.Contains(buf.String(), "sales_2024") {
		t.Errorf("expected field in test logger output, got %q", buf.String())
	}
}

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	orig := Logger()
	SetLogger(NewTestLogger(&buf))
	defer SetLogger(orig)

	Info().Msg("via replaced logger")
	if !strings.Contains(buf.String(), "via replaced logger") {
		t.Errorf("replaced logger did not receive message, got %q", buf.String())
	}
}
