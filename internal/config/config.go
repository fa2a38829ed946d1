// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

// Package config provides layered configuration loading via Koanf v2.
//
// Precedence (highest wins): environment variables > config file > defaults.
// Environment variables use the DATANEXUS_ prefix with underscores mapping to
// nested keys, e.g. DATANEXUS_SERVER_PORT -> server.port.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the DataNexus server.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Registry  RegistryConfig  `koanf:"registry"`
	Workspace WorkspaceConfig `koanf:"workspace"`
	Database  DatabaseConfig  `koanf:"database"`
	Ingest    IngestConfig    `koanf:"ingest"`
	API       APIConfig       `koanf:"api"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host    string        `koanf:"host"`
	Port    int           `koanf:"port"`
	Timeout time.Duration `koanf:"timeout"`
}

// RegistryConfig holds the project registry (SQLite) settings.
type RegistryConfig struct {
	// Path is the SQLite database file holding the projects table.
	Path string `koanf:"path"`
}

// WorkspaceConfig holds per-project workspace settings.
type WorkspaceConfig struct {
	// Root is the directory under which one directory per project is created.
	Root string `koanf:"root"`
}

// DatabaseConfig holds DuckDB tuning options applied to every
// per-project analytical store.
type DatabaseConfig struct {
	MaxMemory              string `koanf:"max_memory"`
	Threads                int    `koanf:"threads"`
	PreserveInsertionOrder bool   `koanf:"preserve_insertion_order"`
}

// IngestConfig holds ingestion pipeline settings.
type IngestConfig struct {
	// PathSeparator selects which separator convention applies to ingested
	// file paths: "auto", "windows", or "unix". Ingested paths come from the
	// client's filesystem, which is not necessarily the host's.
	PathSeparator string `koanf:"path_separator"`
}

// APIConfig holds API surface settings.
type APIConfig struct {
	// EnableRawSQL gates the /execute-sql passthrough endpoint. It runs
	// arbitrary SQL against the active workspace and should be disabled in
	// untrusted deployments.
	EnableRawSQL bool `koanf:"enable_raw_sql"`

	// RateLimitRPM is the per-IP request budget per minute. 0 disables limiting.
	RateLimitRPM int `koanf:"rate_limit_rpm"`

	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// defaultConfig returns a Config with all default values. Defaults are loaded
// first, then overridden by the config file and environment variables.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:    "0.0.0.0",
			Port:    8000,
			Timeout: 30 * time.Second,
		},
		Registry: RegistryConfig{
			Path: "data/database.db",
		},
		Workspace: WorkspaceConfig{
			Root: "data/projects",
		},
		Database: DatabaseConfig{
			MaxMemory:              "2GB",
			Threads:                0, // 0 = use runtime.NumCPU()
			PreserveInsertionOrder: true,
		},
		Ingest: IngestConfig{
			PathSeparator: "auto",
		},
		API: APIConfig{
			EnableRawSQL: true,
			RateLimitRPM: 600,
			CORSOrigins:  []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
	}
}

// Validate checks the configuration for inconsistent or unusable values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be 1-65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Registry.Path == "" {
		return fmt.Errorf("registry.path must not be empty")
	}
	if c.Workspace.Root == "" {
		return fmt.Errorf("workspace.root must not be empty")
	}
	switch c.Ingest.PathSeparator {
	case "auto", "windows", "unix":
	default:
		return fmt.Errorf("ingest.path_separator must be auto, windows, or unix, got %q", c.Ingest.PathSeparator)
	}
	if c.API.RateLimitRPM < 0 {
		return fmt.Errorf("api.rate_limit_rpm must not be negative, got %d", c.API.RateLimitRPM)
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		return fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format)
	}
	return nil
}
