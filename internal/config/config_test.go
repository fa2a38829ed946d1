// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with defaults failed: %v", err)
	}

	if cfg.Server.Port != 8000 {
		t.Errorf("default server.port = %d, want 8000", cfg.Server.Port)
	}
	if cfg.Server.Timeout != 30*time.Second {
		t.Errorf("default server.timeout = %s, want 30s", cfg.Server.Timeout)
	}
	if cfg.Registry.Path != "data/database.db" {
		t.Errorf("default registry.path = %q, want data/database.db", cfg.Registry.Path)
	}
	if cfg.Workspace.Root != "data/projects" {
		t.Errorf("default workspace.root = %q, want data/projects", cfg.Workspace.Root)
	}
	if cfg.Ingest.PathSeparator != "auto" {
		t.Errorf("default ingest.path_separator = %q, want auto", cfg.Ingest.PathSeparator)
	}
	if !cfg.API.EnableRawSQL {
		t.Error("default api.enable_raw_sql should be true")
	}
	if !cfg.Database.PreserveInsertionOrder {
		t.Error("default database.preserve_insertion_order should be true")
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  port: 9100
workspace:
  root: /srv/nexus/projects
api:
  enable_raw_sql: false
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() with config file failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("server.port = %d, want 9100 from file", cfg.Server.Port)
	}
	if cfg.Workspace.Root != "/srv/nexus/projects" {
		t.Errorf("workspace.root = %q, want /srv/nexus/projects", cfg.Workspace.Root)
	}
	if cfg.API.EnableRawSQL {
		t.Error("api.enable_raw_sql should be false from file")
	}
	// Unset keys keep defaults
	if cfg.Registry.Path != "data/database.db" {
		t.Errorf("registry.path = %q, want default", cfg.Registry.Path)
	}
}

func TestEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9100\n"), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("DATANEXUS_SERVER_PORT", "9200")
	t.Setenv("DATANEXUS_LOG_LEVEL", "debug")
	t.Setenv("DATANEXUS_API_CORS_ORIGINS", "http://localhost:1420, http://localhost:5173")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("server.port = %d, want env override 9200", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"http://localhost:1420", "http://localhost:5173"}
	if len(cfg.API.CORSOrigins) != len(want) {
		t.Fatalf("cors_origins = %v, want %v", cfg.API.CORSOrigins, want)
	}
	for i := range want {
		if cfg.API.CORSOrigins[i] != want[i] {
			t.Errorf("cors_origins[%d] = %q, want %q", i, cfg.API.CORSOrigins[i], want[i])
		}
	}
}

func TestUnmappedEnvIgnored(t *testing.T) {
	t.Setenv("DATANEXUS_TOTALLY_UNKNOWN", "boom")

	if _, err := Load(); err != nil {
		t.Fatalf("Load() should ignore unmapped env vars, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"port too low", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, true},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, true},
		{"empty registry path", func(c *Config) { c.Registry.Path = "" }, true},
		{"empty workspace root", func(c *Config) { c.Workspace.Root = "" }, true},
		{"bad separator", func(c *Config) { c.Ingest.PathSeparator = "both" }, true},
		{"windows separator ok", func(c *Config) { c.Ingest.PathSeparator = "windows" }, false},
		{"unix separator ok", func(c *Config) { c.Ingest.PathSeparator = "unix" }, false},
		{"negative rate limit", func(c *Config) { c.API.RateLimitRPM = -1 }, true},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
