// DataNexus - Data Project Workspace Backend
// Copyright 2026 DataNexus contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/datanexushq/datanexus

package workspace

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"strings"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/datanexushq/datanexus/internal/config"
	"github.com/datanexushq/datanexus/internal/metrics"
	"github.com/datanexushq/datanexus/internal/models"
)

// Store wraps the DuckDB connection for one project workspace. The engine is
// a single-writer local database, so one Store is active process-wide at a
// time (see the session package).
type Store struct {
	conn *sql.DB
	dir  string
	path string
}

// openStore opens the DuckDB database at path with tuning options from cfg.
func openStore(dir, path string, cfg *config.DatabaseConfig) (*Store, error) {
	numThreads := cfg.Threads
	if numThreads <= 0 {
		numThreads = runtime.NumCPU()
	}

	preserveOrder := "true"
	if !cfg.PreserveInsertionOrder {
		preserveOrder = "false"
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&preserve_insertion_order=%s",
		path, numThreads, cfg.MaxMemory, preserveOrder)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open analytical store: %w", err)
	}

	// The engine is single-writer; keep the pool to one connection so
	// concurrent requests serialize instead of fighting over the file.
	conn.SetMaxOpenConns(1)
	conn.SetMaxIdleConns(1)
	conn.SetConnMaxLifetime(time.Hour)

	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := conn.PingContext(pingCtx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to ping analytical store: %w", err)
	}

	return &Store{conn: conn, dir: dir, path: path}, nil
}

// Path returns the DuckDB database file path.
func (s *Store) Path() string { return s.path }

// Dir returns the workspace directory.
func (s *Store) Dir() string { return s.dir }

// Close closes the underlying connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// readerFunc maps a format to its DuckDB table function.
func readerFunc(format Format) string {
	switch format {
	case FormatJSON:
		return "read_json"
	case FormatParquet:
		return "read_parquet"
	default:
		return "read_csv"
	}
}

// Ingest materializes a new table from the source file, delegating parsing
// and schema inference to the engine's reader for the detected format. The
// statement is atomic: on any failure no table is created. Engine errors
// (name collision, malformed file, unreadable path) are returned verbatim.
func (s *Store) Ingest(ctx context.Context, tableName string, format Format, sourcePath string) error {
	start := time.Now()

	stmt := fmt.Sprintf("CREATE TABLE %s AS SELECT * FROM %s(%s)",
		quoteIdent(tableName), readerFunc(format), quoteLiteral(sourcePath))

	_, err := s.conn.ExecContext(ctx, stmt)
	metrics.RecordDBQuery("ingest", time.Since(start), err)
	metrics.RecordIngest(string(format), time.Since(start), err)
	return err
}

// Query runs the given SQL verbatim and returns a structured rowset with
// columns in result order.
func (s *Store) Query(ctx context.Context, sqlText string) (*models.Rowset, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx, sqlText)
	metrics.RecordDBQuery("query", time.Since(start), err)
	if err != nil {
		return nil, err
	}
	defer closeQuietly(rows)

	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &models.Rowset{
		Columns: columns,
		Rows:    []map[string]interface{}{},
	}

	values := make([]interface{}, len(columns))
	scanArgs := make([]interface{}, len(columns))
	for i := range values {
		scanArgs[i] = &values[i]
	}

	for rows.Next() {
		if err := rows.Scan(scanArgs...); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		row := make(map[string]interface{}, len(columns))
		for i, col := range columns {
			row[col] = normalizeValue(values[i])
		}
		result.Rows = append(result.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// Tables lists the table names in the workspace store.
func (s *Store) Tables(ctx context.Context) ([]string, error) {
	start := time.Now()
	rows, err := s.conn.QueryContext(ctx,
		`SELECT table_name FROM information_schema.tables WHERE table_schema = 'main' ORDER BY table_name`)
	metrics.RecordDBQuery("tables", time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer closeQuietly(rows)

	tables := []string{}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}

	return tables, nil
}

// normalizeValue converts driver values to JSON-friendly types.
func normalizeValue(v interface{}) interface{} {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}

// quoteIdent quotes a SQL identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral quotes a SQL string literal.
func quoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func closeQuietly(c interface{ Close() error }) {
	_ = c.Close()
}
