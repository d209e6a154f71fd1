package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/funil/internal/database"
)

// SetupTestDB creates an in-memory database with full schema.
// The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("Failed to close test database: %v", err)
		}
	})
	return db
}

// SetupTestRepository returns a repository over a fresh in-memory database
func SetupTestRepository(t *testing.T) *database.Repository {
	t.Helper()
	return database.NewRepository(SetupTestDB(t))
}
