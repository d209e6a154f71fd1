package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/funil/internal/models"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// setupTestDBFile creates a file-based database for testing persistence across restarts
func setupTestDBFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "funil-test.db")
}

// ============================================================================
// DATA HELPERS
// ============================================================================

// createTestTask inserts a task in the given status and returns it
func createTestTask(t *testing.T, repo *TaskRepo, title string, status models.TaskStatus) *models.Task {
	t.Helper()
	task := &models.Task{
		ID:       uuid.NewString(),
		Title:    title,
		Status:   status,
		Priority: models.DefaultPriority,
	}
	require.NoError(t, repo.CreateTask(context.Background(), task))
	return task
}

// columnTitles lists task titles in a status column in position order
func columnTitles(t *testing.T, repo *TaskRepo, status models.TaskStatus) []string {
	t.Helper()
	tasks, err := repo.ListTasks(context.Background(), TaskFilter{Statuses: []models.TaskStatus{status}})
	require.NoError(t, err)

	titles := make([]string, 0, len(tasks))
	for i, task := range tasks {
		require.Equal(t, i, task.Position, "positions are dense")
		titles = append(titles, task.Title)
	}
	return titles
}
