package database

import (
	"context"
	"database/sql"
	"fmt"
)

// schema is applied in order; every statement is idempotent
var schema = []string{
	// Key/value store for the login session and UI state
	`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL,
		priority TEXT NOT NULL,
		position INTEGER NOT NULL,
		created_by TEXT NOT NULL DEFAULT '',
		assigned_to TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		due_date DATETIME,
		completed_at DATETIME,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,

	// Board columns are read by status in position order
	`CREATE INDEX IF NOT EXISTS idx_tasks_status
		ON tasks(status, position)`,

	`CREATE TABLE IF NOT EXISTS comments (
		id TEXT PRIMARY KEY,
		task_id TEXT NOT NULL,
		author_name TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_comments_task
		ON comments(task_id, created_at)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		color TEXT NOT NULL,
		created_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL
	)`,

	// Deleting a team leaves its members without one
	`CREATE TABLE IF NOT EXISTS members (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL,
		role TEXT NOT NULL,
		team_id TEXT,
		status TEXT NOT NULL,
		joined_at DATETIME NOT NULL,
		updated_at DATETIME NOT NULL,
		FOREIGN KEY (team_id) REFERENCES teams(id) ON DELETE SET NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_members_team
		ON members(team_id)`,
}

// runMigrations creates the database schema
func runMigrations(ctx context.Context, db *sql.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
