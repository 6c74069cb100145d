// Package database provides sqlite connection management.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// InMemory is the connection target for a transient, non-persisted database.
const InMemory = ":memory:"

// DB wraps the sqlite connection pool. The value is a lightweight handle:
// copies share the same pool and observe the same data.
type DB struct {
	Pool *sql.DB
}

// New opens the database at the given target and ensures the schema exists.
// The target is either InMemory or a file path; for a file path every
// missing parent directory is created first. Repeated opens against the
// same file are safe, schema creation is idempotent.
func New(ctx context.Context, target string) (*DB, error) {
	dsn, err := buildDSN(target)
	if err != nil {
		return nil, err
	}

	pool, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if target == InMemory {
		// every raw :memory: connection is its own database, so the pool
		// must hand out the single shared-cache connection
		pool.SetMaxOpenConns(1)
	}

	if err := pool.PingContext(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	db := &DB{Pool: pool}
	if err := db.createSchema(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}

// buildDSN translates the connection target into a sqlite DSN, creating
// parent directories for file targets.
func buildDSN(target string) (string, error) {
	if target == InMemory {
		return "file::memory:?cache=shared", nil
	}

	if dir := filepath.Dir(target); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("create database directory: %w", err)
		}
	}

	return fmt.Sprintf("file:%s?_busy_timeout=5000", target), nil
}

// createSchema ensures the job_applications table exists.
func (db *DB) createSchema(ctx context.Context) error {
	_, err := db.Pool.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS job_applications (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			date       TEXT,
			cv_path    TEXT,
			company    TEXT NOT NULL,
			position   TEXT NOT NULL,
			status     TEXT NOT NULL,
			location   TEXT NOT NULL,
			salary_min INTEGER NOT NULL DEFAULT 0,
			salary_max INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}

// Close releases the connection pool. No operation on this handle or any
// copy of it is valid afterwards.
func (db *DB) Close() error {
	return db.Pool.Close()
}

// Ping checks if the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.Pool.PingContext(ctx)
}
