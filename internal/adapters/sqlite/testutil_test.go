// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup uses db.GetSchemaSQL() so tests run against the
// authoritative schema; do not hardcode CREATE TABLE statements here.
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/wells/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedWell inserts a test well row and returns its surrogate id.
func seedWell(t *testing.T, conn *sql.DB, gasID, pressureID, wellName string) int64 {
	t.Helper()

	var name any
	if wellName != "" {
		name = wellName
	}
	result, err := conn.Exec(
		"INSERT INTO wells (gas_id, pressure_id, well_name) VALUES (?, ?, ?)",
		gasID, pressureID, name,
	)
	if err != nil {
		t.Fatalf("failed to seed well: %v", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("failed to get seeded id: %v", err)
	}
	return id
}

// countWells returns the number of rows in the wells table.
func countWells(t *testing.T, conn *sql.DB) int {
	t.Helper()

	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM wells").Scan(&count); err != nil {
		t.Fatalf("failed to count wells: %v", err)
	}
	return count
}
