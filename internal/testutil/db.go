package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/roster/internal/database"
)

// SetupTestDB creates an in-memory database with the full schema.
// The database is closed when the test finishes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

// CreateTestUser inserts a user directly and returns its ID
func CreateTestUser(t *testing.T, db *sql.DB, firstName, lastName string) int {
	t.Helper()
	result, err := db.Exec("INSERT INTO users (firstName, lastName) VALUES (?, ?)", firstName, lastName)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to get user ID: %v", err)
	}
	return int(id)
}

// CountTestUsers returns the number of rows in the users table
func CountTestUsers(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		t.Fatalf("Failed to count users: %v", err)
	}
	return count
}
