package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/wells/internal/ports/secondary"
)

// StagingRepository implements secondary.StagingRepository with SQLite.
// The staged_wells table is keyed by the identifier pair; rowid preserves
// insertion order, which is the order entries are presented for editing.
type StagingRepository struct {
	db *sql.DB
}

// NewStagingRepository creates a new SQLite staging repository.
func NewStagingRepository(db *sql.DB) *StagingRepository {
	return &StagingRepository{db: db}
}

// Stage adds a pair to the working set with blank editable fields.
// Idempotent: a pair that is already staged is left untouched.
func (r *StagingRepository) Stage(ctx context.Context, gasID, pressureID string) (bool, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO staged_wells (gas_id, pressure_id) VALUES (?, ?)",
		gasID, pressureID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to stage pair: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	return rowsAffected > 0, nil
}

// Unstage removes a pair from the working set.
func (r *StagingRepository) Unstage(ctx context.Context, gasID, pressureID string) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM staged_wells WHERE gas_id = ? AND pressure_id = ?",
		gasID, pressureID,
	)
	if err != nil {
		return fmt.Errorf("failed to unstage pair: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("pair (%s, %s) is not staged", gasID, pressureID)
	}

	return nil
}

const stagedColumns = "gas_id, pressure_id, well_name, formation, layer, fault_block, pad_name, completion_tech, lateral_length, uwi, staged_at"

// ListStaged retrieves staged entries in insertion order.
func (r *StagingRepository) ListStaged(ctx context.Context) ([]*secondary.StagedRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+stagedColumns+" FROM staged_wells ORDER BY rowid ASC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged pairs: %w", err)
	}
	defer rows.Close()

	var staged []*secondary.StagedRecord
	for rows.Next() {
		record, err := scanStaged(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan staged entry: %w", err)
		}
		staged = append(staged, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list staged pairs: %w", err)
	}

	return staged, nil
}

// Get retrieves a single staged entry.
func (r *StagingRepository) Get(ctx context.Context, gasID, pressureID string) (*secondary.StagedRecord, error) {
	record, err := scanStaged(r.db.QueryRowContext(ctx,
		"SELECT "+stagedColumns+" FROM staged_wells WHERE gas_id = ? AND pressure_id = ?",
		gasID, pressureID,
	))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("pair (%s, %s) is not staged", gasID, pressureID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get staged entry: %w", err)
	}
	return record, nil
}

// UpdateFields edits a staged entry's editable values.
func (r *StagingRepository) UpdateFields(ctx context.Context, gasID, pressureID string, upd secondary.StagedUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	query := "UPDATE staged_wells SET "
	args := []any{}
	first := true

	appendSet := func(column string, value *string) {
		if value == nil {
			return
		}
		if !first {
			query += ", "
		}
		query += column + " = ?"
		args = append(args, nullable(*value))
		first = false
	}

	appendSet("well_name", upd.WellName)
	appendSet("formation", upd.Formation)
	appendSet("layer", upd.Layer)
	appendSet("fault_block", upd.FaultBlock)
	appendSet("pad_name", upd.PadName)
	appendSet("completion_tech", upd.CompletionTech)
	appendSet("lateral_length", upd.LateralLength)
	appendSet("uwi", upd.UWI)

	query += " WHERE gas_id = ? AND pressure_id = ?"
	args = append(args, gasID, pressureID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update staged entry: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("pair (%s, %s) is not staged", gasID, pressureID)
	}

	return nil
}

func scanStaged(s rowScanner) (*secondary.StagedRecord, error) {
	var (
		wellName       sql.NullString
		formation      sql.NullString
		layer          sql.NullString
		faultBlock     sql.NullString
		padName        sql.NullString
		completionTech sql.NullString
		lateralLength  sql.NullString
		uwi            sql.NullString
		stagedAt       sql.NullTime
	)

	record := &secondary.StagedRecord{}
	err := s.Scan(&record.GasID, &record.PressureID, &wellName, &formation, &layer, &faultBlock, &padName, &completionTech, &lateralLength, &uwi, &stagedAt)
	if err != nil {
		return nil, err
	}

	record.WellName = wellName.String
	record.Formation = formation.String
	record.Layer = layer.String
	record.FaultBlock = faultBlock.String
	record.PadName = padName.String
	record.CompletionTech = completionTech.String
	record.LateralLength = lateralLength.String
	record.UWI = uwi.String
	if stagedAt.Valid {
		record.StagedAt = stagedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Ensure StagingRepository implements the interface
var _ secondary.StagingRepository = (*StagingRepository)(nil)
