package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/wells/internal/adapters/sqlite"
	"github.com/example/wells/internal/ports/secondary"
)

func TestWellRepository_LoadAll(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	seedWell(t, conn, "G1", "P1", "Well A")
	seedWell(t, conn, "G2", "P2", "")
	seedWell(t, conn, "G3", "P3", "Well C")

	rows, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("got %d rows, want 3", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].ID <= rows[i-1].ID {
			t.Errorf("rows not ordered by id: %d then %d", rows[i-1].ID, rows[i].ID)
		}
	}
	if rows[1].WellName != "" {
		t.Errorf("NULL well name scanned as %q", rows[1].WellName)
	}
}

func TestWellRepository_LoadAllEmpty(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")

	rows, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}

func TestWellRepository_GetByID(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	id := seedWell(t, conn, "G1", "P1", "Well A")

	row, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if row.GasID != "G1" || row.WellName != "Well A" {
		t.Errorf("row = %+v", row)
	}

	if _, err := repo.GetByID(ctx, 9999); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestWellRepository_UniqueValues(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	stmts := []struct{ gas, layer string }{
		{"G1", "Upper"},
		{"G2", "  Lower  "},
		{"G3", "Upper"},
		{"G4", "   "},
	}
	for _, s := range stmts {
		if _, err := conn.Exec("INSERT INTO wells (gas_id, pressure_id, layer) VALUES (?, 'P', ?)", s.gas, s.layer); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}

	values, err := repo.UniqueValues(ctx, secondary.FieldLayer)
	if err != nil {
		t.Fatalf("UniqueValues failed: %v", err)
	}

	if len(values) != 2 || values[0] != "Lower" || values[1] != "Upper" {
		t.Errorf("values = %v, want [Lower Upper]", values)
	}
}

func TestWellRepository_UniqueValuesRejectsUnknownField(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")

	if _, err := repo.UniqueValues(context.Background(), "well_name"); err == nil {
		t.Error("expected error for non-categorical field")
	}
	if _, err := repo.UniqueValues(context.Background(), "1; DROP TABLE wells"); err == nil {
		t.Error("expected error for hostile field name")
	}
}

func TestWellRepository_FindByIdentifierPair(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	id1 := seedWell(t, conn, "G1", "P1", "")
	seedWell(t, conn, "G1", "P2", "")
	id3 := seedWell(t, conn, "G3", "P3", "")

	tests := []struct {
		name      string
		gas, pres string
		wantID    int64
		found     bool
		ambiguous bool
	}{
		{"both halves", "G1", "P1", id1, true, false},
		{"gas only unique", "G3", "", id3, true, false},
		{"pressure only", "", "P3", id3, true, false},
		{"gas only ambiguous", "G1", "", id1, true, true},
		{"no match", "G9", "P9", 0, false, false},
		{"neither given", "", "", 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			match, err := repo.FindByIdentifierPair(ctx, tt.gas, tt.pres)
			if err != nil {
				t.Fatalf("FindByIdentifierPair failed: %v", err)
			}
			if match.Found != tt.found {
				t.Fatalf("Found = %v, want %v", match.Found, tt.found)
			}
			if match.Ambiguous != tt.ambiguous {
				t.Errorf("Ambiguous = %v, want %v", match.Ambiguous, tt.ambiguous)
			}
			if tt.found && match.ID != tt.wantID {
				t.Errorf("ID = %d, want %d", match.ID, tt.wantID)
			}
		})
	}
}

func TestWellRepository_ExistsByWellName(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	seedWell(t, conn, "G1", "P1", "Well 7")

	exists, err := repo.ExistsByWellName(ctx, "Well 7")
	if err != nil {
		t.Fatalf("ExistsByWellName failed: %v", err)
	}
	if !exists {
		t.Error("expected Well 7 to exist")
	}

	exists, err = repo.ExistsByWellName(ctx, "Well 8")
	if err != nil {
		t.Fatalf("ExistsByWellName failed: %v", err)
	}
	if exists {
		t.Error("Well 8 should not exist")
	}
}

func TestWellRepository_InsertBatch(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	rows := []*secondary.WellRow{
		{GasID: "G1", PressureID: "P1", WellName: "Well A", CompositeName: "Well A - L - T"},
		{GasID: "G2", PressureID: "P2"},
	}
	if err := repo.InsertBatch(ctx, rows); err != nil {
		t.Fatalf("InsertBatch failed: %v", err)
	}

	loaded, err := repo.LoadAll(ctx)
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("got %d rows, want 2", len(loaded))
	}
	if loaded[0].ID == 0 || loaded[1].ID == 0 {
		t.Error("store should assign surrogate ids")
	}

	// Blank fields persist as NULL, not empty strings
	var composite any
	if err := conn.QueryRow("SELECT composite_name FROM wells WHERE gas_id = 'G2'").Scan(&composite); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if composite != nil {
		t.Errorf("blank composite stored as %v, want NULL", composite)
	}
}

func TestWellRepository_InsertBatchAtomicity(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	// Second row violates the identifier CHECK, so the whole batch must
	// roll back.
	rows := []*secondary.WellRow{
		{GasID: "G1", PressureID: "P1", WellName: "Well A"},
		{},
		{GasID: "G3", PressureID: "P3"},
	}
	if err := repo.InsertBatch(ctx, rows); err == nil {
		t.Fatal("expected batch insert to fail")
	}

	if n := countWells(t, conn); n != 0 {
		t.Errorf("rows visible after failed batch = %d, want 0", n)
	}
}

func TestWellRepository_InsertBatchEmpty(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")

	if err := repo.InsertBatch(context.Background(), nil); err != nil {
		t.Fatalf("empty batch should be a no-op, got %v", err)
	}
}

func TestWellRepository_UpdateByID(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	id := seedWell(t, conn, "G1", "P1", "")

	name := "Well 7"
	layer := "Upper"
	composite := "Well 7 - Upper - Plug&Perf"
	err := repo.UpdateByID(ctx, id, secondary.WellUpdate{
		WellName:      &name,
		Layer:         &layer,
		CompositeName: &composite,
	})
	if err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}

	row, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if row.WellName != "Well 7" || row.Layer != "Upper" || row.CompositeName != composite {
		t.Errorf("row = %+v", row)
	}

	// Identifier pair is untouched by any update.
	if row.GasID != "G1" || row.PressureID != "P1" {
		t.Errorf("identifier pair changed: gas=%q pres=%q", row.GasID, row.PressureID)
	}
}

func TestWellRepository_UpdateByIDClearsToNull(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	id := seedWell(t, conn, "G1", "P1", "Well 7")
	if _, err := conn.Exec("UPDATE wells SET composite_name = 'Well 7 - L - T' WHERE id = ?", id); err != nil {
		t.Fatalf("seed update failed: %v", err)
	}

	empty := ""
	if err := repo.UpdateByID(ctx, id, secondary.WellUpdate{CompositeName: &empty}); err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}

	var composite any
	if err := conn.QueryRow("SELECT composite_name FROM wells WHERE id = ?", id).Scan(&composite); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if composite != nil {
		t.Errorf("cleared composite stored as %v, want NULL", composite)
	}
}

func TestWellRepository_UpdateByIDPartial(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")
	ctx := context.Background()

	id := seedWell(t, conn, "G1", "P1", "Well 7")
	if _, err := conn.Exec("UPDATE wells SET formation = 'Montney' WHERE id = ?", id); err != nil {
		t.Fatalf("seed update failed: %v", err)
	}

	pad := "Pad 3"
	if err := repo.UpdateByID(ctx, id, secondary.WellUpdate{PadName: &pad}); err != nil {
		t.Fatalf("UpdateByID failed: %v", err)
	}

	row, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	// Untouched columns keep their values.
	if row.Formation != "Montney" || row.WellName != "Well 7" || row.PadName != "Pad 3" {
		t.Errorf("row = %+v", row)
	}
}

func TestWellRepository_UpdateByIDNotFound(t *testing.T) {
	conn := setupTestDB(t)
	repo := sqlite.NewWellRepository(conn, "wells")

	name := "Well 7"
	if err := repo.UpdateByID(context.Background(), 12345, secondary.WellUpdate{WellName: &name}); err == nil {
		t.Error("expected error for unknown id")
	}
}

func TestWellRepository_CustomTableName(t *testing.T) {
	conn := setupTestDB(t)
	if _, err := conn.Exec(`CREATE TABLE pce_wm AS SELECT * FROM wells WHERE 0`); err != nil {
		t.Fatalf("failed to create table copy: %v", err)
	}
	if _, err := conn.Exec("INSERT INTO pce_wm (id, gas_id, pressure_id, well_name) VALUES (1, 'G1', 'P1', 'Well A')"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	repo := sqlite.NewWellRepository(conn, "pce_wm")
	rows, err := repo.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}
	if len(rows) != 1 || rows[0].WellName != "Well A" {
		t.Errorf("rows = %+v", rows)
	}
}
