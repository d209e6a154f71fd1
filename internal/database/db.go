// Package database handles the initialization and connection to the SQLite db
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// DefaultPath returns ~/.funil/funil.db, creating the directory if needed
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	funilDir := filepath.Join(home, ".funil")
	if err := os.MkdirAll(funilDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	return filepath.Join(funilDir, "funil.db"), nil
}

// InitDB opens the database at the default location and migrates it
func InitDB(ctx context.Context) (*sql.DB, error) {
	dbPath, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(ctx, dbPath)
}

// Open opens the database at path, applies connection pragmas and runs migrations.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool before anything else: an in-memory database
	// only exists on the connection that created it.
	db.SetMaxOpenConns(1) // SQLite benefits from a single writer connection
	db.SetMaxIdleConns(1)

	pragmas := []struct {
		stmt string
		desc string
	}{
		// Required for CASCADE deletions of comments
		{"PRAGMA foreign_keys = ON", "enable foreign keys"},
		{"PRAGMA journal_mode = WAL", "enable WAL mode"},
		// SQLite will retry for this duration
		{"PRAGMA busy_timeout = 5000", "set busy timeout"},
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p.stmt); err != nil {
			slog.Error("Failed to "+p.desc, "error", err)
			closeDB(db)
			return nil, fmt.Errorf("failed to %s: %w", p.desc, err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
