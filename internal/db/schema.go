package db

import "database/sql"

// SchemaSQL is the complete schema for fresh installs.
// This schema reflects the current state after all migrations.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All tests use
// this schema via GetSchemaSQL(). If repository code references a column
// that doesn't exist here, tests fail immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in internal/db/migrations.go
//  2. Update SchemaSQL here
const SchemaSQL = `
-- Well metadata (one row per gas/pressure record pair).
-- id is the surrogate key assigned by SQLite; gas_id/pressure_id form the
-- natural key and are never rewritten after insert. A row must carry at
-- least one half of the pair.
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
);

CREATE INDEX IF NOT EXISTS idx_wells_gas ON wells(gas_id);
CREATE INDEX IF NOT EXISTS idx_wells_pressure ON wells(pressure_id);
CREATE INDEX IF NOT EXISTS idx_wells_name ON wells(well_name);

-- Staged entries (identifier pairs promoted for data entry).
-- Lives outside the well table on purpose: staged rows are not yet
-- persisted wells, and must survive snapshot reloads untouched.
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
);
`

// InitSchema creates the database schema on conn if it is missing,
// otherwise runs any pending migrations.
func InitSchema(conn *sql.DB) error {
	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err := conn.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Completely fresh install - create the current schema directly
		// and mark every migration as applied so they never re-run.
		if _, err := conn.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = conn.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := conn.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations(conn)
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
