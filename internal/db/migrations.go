package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_wells_table",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_identifier_indexes",
		Up:      migrationV2,
	},
	{
		Version: 3,
		Name:    "create_staged_wells_table",
		Up:      migrationV3,
	},
}

// RunMigrations executes all pending migrations on conn
func RunMigrations(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	for _, m := range migrations {
		var count int
		if err := conn.QueryRow("SELECT COUNT(*) FROM schema_version WHERE version = ?", m.Version).Scan(&count); err != nil {
			return fmt.Errorf("failed to check migration %d: %w", m.Version, err)
		}
		if count > 0 {
			continue
		}

		if err := m.Up(conn); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		if _, err := conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}

	return nil
}

func migrationV1(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS wells (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			gas_id TEXT,
			pressure_id TEXT,
			well_name TEXT,
			formation TEXT,
			layer TEXT,
			fault_block TEXT,
			pad_name TEXT,
			completion_tech TEXT,
			lateral_length TEXT,
			uwi TEXT,
			composite_name TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			CHECK (IFNULL(TRIM(gas_id), '') != '' OR IFNULL(TRIM(pressure_id), '') != '')
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create wells: %w", err)
	}
	return nil
}

func migrationV2(conn *sql.DB) error {
	stmts := []string{
		"CREATE INDEX IF NOT EXISTS idx_wells_gas ON wells(gas_id)",
		"CREATE INDEX IF NOT EXISTS idx_wells_pressure ON wells(pressure_id)",
		"CREATE INDEX IF NOT EXISTS idx_wells_name ON wells(well_name)",
	}
	for _, s := range stmts {
		if _, err := conn.Exec(s); err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}
	return nil
}

func migrationV3(conn *sql.DB) error {
	_, err := conn.Exec(`
		CREATE TABLE IF NOT EXISTS staged_wells (
			gas_id TEXT NOT NULL DEFAULT '',
			pressure_id TEXT NOT NULL DEFAULT '',
			well_name TEXT,
			formation TEXT,
			layer TEXT,
			fault_block TEXT,
			pad_name TEXT,
			completion_tech TEXT,
			lateral_length TEXT,
			uwi TEXT,
			staged_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(gas_id, pressure_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create staged_wells: %w", err)
	}
	return nil
}
