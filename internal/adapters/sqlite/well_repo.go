// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/example/wells/internal/ports/secondary"
)

// wellColumns is the scan column list shared by every SELECT. Order matters.
const wellColumns = "id, gas_id, pressure_id, well_name, formation, layer, fault_block, pad_name, completion_tech, lateral_length, uwi, composite_name, created_at, updated_at"

// categoricalColumns whitelists the columns UniqueValues may touch. The
// field name doubles as the column name; anything else is rejected before
// it reaches SQL.
var categoricalColumns = map[string]bool{
	secondary.FieldFormation:      true,
	secondary.FieldLayer:          true,
	secondary.FieldFaultBlock:     true,
	secondary.FieldCompletionTech: true,
}

// WellRepository implements secondary.WellRepository with SQLite.
// The table name comes from configuration; everything else about the
// schema is fixed.
type WellRepository struct {
	db    *sql.DB
	table string
}

// NewWellRepository creates a new SQLite well repository against the given table.
func NewWellRepository(db *sql.DB, table string) *WellRepository {
	return &WellRepository{db: db, table: table}
}

// LoadAll retrieves every well row ordered by surrogate id ascending.
func (r *WellRepository) LoadAll(ctx context.Context) ([]*secondary.WellRow, error) {
	query := fmt.Sprintf("SELECT %s FROM %q ORDER BY id ASC", wellColumns, r.table)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load wells: %w", err)
	}
	defer rows.Close()

	var wells []*secondary.WellRow
	for rows.Next() {
		record, err := scanWell(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan well: %w", err)
		}
		wells = append(wells, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load wells: %w", err)
	}

	return wells, nil
}

// GetByID retrieves a well row by its surrogate id.
func (r *WellRepository) GetByID(ctx context.Context, id int64) (*secondary.WellRow, error) {
	query := fmt.Sprintf("SELECT %s FROM %q WHERE id = ?", wellColumns, r.table)
	record, err := scanWell(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("well %d not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get well: %w", err)
	}
	return record, nil
}

// UniqueValues returns the distinct trimmed non-blank values of a
// categorical column, sorted ascending.
func (r *WellRepository) UniqueValues(ctx context.Context, field string) ([]string, error) {
	if !categoricalColumns[field] {
		return nil, fmt.Errorf("field %s has no choice list", field)
	}

	query := fmt.Sprintf(
		"SELECT DISTINCT TRIM(%s) FROM %q WHERE %s IS NOT NULL AND TRIM(%s) != '' ORDER BY 1",
		field, r.table, field, field,
	)
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load unique values: %w", err)
	}
	defer rows.Close()

	var values []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan value: %w", err)
		}
		values = append(values, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load unique values: %w", err)
	}

	return values, nil
}

// FindByIdentifierPair resolves an identifier pair to a surrogate id.
// Both halves given: exact AND match. One half given: single-column match,
// flagged ambiguous when more than one row qualifies. Neither: no match.
func (r *WellRepository) FindByIdentifierPair(ctx context.Context, gasID, pressureID string) (secondary.PairMatch, error) {
	var query string
	var args []any

	switch {
	case gasID != "" && pressureID != "":
		query = fmt.Sprintf("SELECT id FROM %q WHERE gas_id = ? AND pressure_id = ? ORDER BY id LIMIT 2", r.table)
		args = []any{gasID, pressureID}
	case gasID != "":
		query = fmt.Sprintf("SELECT id FROM %q WHERE gas_id = ? ORDER BY id LIMIT 2", r.table)
		args = []any{gasID}
	case pressureID != "":
		query = fmt.Sprintf("SELECT id FROM %q WHERE pressure_id = ? ORDER BY id LIMIT 2", r.table)
		args = []any{pressureID}
	default:
		return secondary.PairMatch{}, nil
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return secondary.PairMatch{}, fmt.Errorf("failed to look up identifier pair: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return secondary.PairMatch{}, fmt.Errorf("failed to scan id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return secondary.PairMatch{}, fmt.Errorf("failed to look up identifier pair: %w", err)
	}

	if len(ids) == 0 {
		return secondary.PairMatch{}, nil
	}

	match := secondary.PairMatch{ID: ids[0], Found: true}
	// A full-pair match is authoritative even when duplicated; only a
	// single-component probe can be ambiguous.
	if len(ids) > 1 && (gasID == "" || pressureID == "") {
		match.Ambiguous = true
	}
	return match, nil
}

// ExistsByWellName checks whether any row carries exactly this well name.
func (r *WellRepository) ExistsByWellName(ctx context.Context, name string) (bool, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %q WHERE well_name = ?", r.table)
	var count int
	if err := r.db.QueryRowContext(ctx, query, name).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check well name: %w", err)
	}
	return count > 0, nil
}

// InsertBatch appends rows in a single transaction, omitting the surrogate
// id. Either all rows become visible or none do.
func (r *WellRepository) InsertBatch(ctx context.Context, rows []*secondary.WellRow) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin insert batch: %w", err)
	}
	defer tx.Rollback()

	query := fmt.Sprintf(
		"INSERT INTO %q (gas_id, pressure_id, well_name, formation, layer, fault_block, pad_name, completion_tech, lateral_length, uwi, composite_name) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)",
		r.table,
	)
	stmt, err := tx.PrepareContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, row := range rows {
		_, err := stmt.ExecContext(ctx,
			nullable(row.GasID),
			nullable(row.PressureID),
			nullable(row.WellName),
			nullable(row.Formation),
			nullable(row.Layer),
			nullable(row.FaultBlock),
			nullable(row.PadName),
			nullable(row.CompletionTech),
			nullable(row.LateralLength),
			nullable(row.UWI),
			nullable(row.CompositeName),
		)
		if err != nil {
			return fmt.Errorf("insert batch of %d rows failed: %w", len(rows), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("insert batch of %d rows failed: %w", len(rows), err)
	}

	return nil
}

// UpdateByID applies a partial update by surrogate id. Only columns with a
// non-nil pointer in upd are touched; gas_id and pressure_id are not in the
// column list and can never be rewritten here.
func (r *WellRepository) UpdateByID(ctx context.Context, id int64, upd secondary.WellUpdate) error {
	if upd.IsEmpty() {
		return nil
	}

	query := fmt.Sprintf("UPDATE %q SET updated_at = CURRENT_TIMESTAMP", r.table)
	args := []any{}

	appendSet := func(column string, value *string) {
		if value == nil {
			return
		}
		query += ", " + column + " = ?"
		args = append(args, nullable(*value))
	}

	appendSet("well_name", upd.WellName)
	appendSet("formation", upd.Formation)
	appendSet("layer", upd.Layer)
	appendSet("fault_block", upd.FaultBlock)
	appendSet("pad_name", upd.PadName)
	appendSet("completion_tech", upd.CompletionTech)
	appendSet("lateral_length", upd.LateralLength)
	appendSet("uwi", upd.UWI)
	appendSet("composite_name", upd.CompositeName)

	query += " WHERE id = ?"
	args = append(args, id)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update well %d: %w", id, err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return fmt.Errorf("well %d not found", id)
	}

	return nil
}

// nullable maps "" to NULL so blank fields never persist as empty strings.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWell(s rowScanner) (*secondary.WellRow, error) {
	var (
		gasID          sql.NullString
		pressureID     sql.NullString
		wellName       sql.NullString
		formation      sql.NullString
		layer          sql.NullString
		faultBlock     sql.NullString
		padName        sql.NullString
		completionTech sql.NullString
		lateralLength  sql.NullString
		uwi            sql.NullString
		compositeName  sql.NullString
		createdAt      sql.NullTime
		updatedAt      sql.NullTime
	)

	record := &secondary.WellRow{}
	err := s.Scan(&record.ID, &gasID, &pressureID, &wellName, &formation, &layer, &faultBlock, &padName, &completionTech, &lateralLength, &uwi, &compositeName, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	record.GasID = gasID.String
	record.PressureID = pressureID.String
	record.WellName = wellName.String
	record.Formation = formation.String
	record.Layer = layer.String
	record.FaultBlock = faultBlock.String
	record.PadName = padName.String
	record.CompletionTech = completionTech.String
	record.LateralLength = lateralLength.String
	record.UWI = uwi.String
	record.CompositeName = compositeName.String
	if createdAt.Valid {
		record.CreatedAt = createdAt.Time.Format(time.RFC3339)
	}
	if updatedAt.Valid {
		record.UpdatedAt = updatedAt.Time.Format(time.RFC3339)
	}

	return record, nil
}

// Ensure WellRepository implements the interface
var _ secondary.WellRepository = (*WellRepository)(nil)
