package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/example/wells/internal/ports/primary"
)

// mockStagingService implements primary.StagingService for testing
type mockStagingService struct {
	stageFn      func(ctx context.Context, gasID, pressureID string) (bool, error)
	stageWellFn  func(ctx context.Context, wellID int64) (*primary.StagedEntry, error)
	unstageFn    func(ctx context.Context, gasID, pressureID string) error
	listStagedFn func(ctx context.Context) ([]*primary.StagedEntry, error)
	setFieldsFn  func(ctx context.Context, req primary.SetFieldsRequest) (*primary.StagedEntry, error)
	applyFn      func(ctx context.Context, req primary.ApplyRequest) (*primary.ApplyResponse, error)

	lastApplyReq primary.ApplyRequest
}

func (m *mockStagingService) Stage(ctx context.Context, gasID, pressureID string) (bool, error) {
	if m.stageFn != nil {
		return m.stageFn(ctx, gasID, pressureID)
	}
	return true, nil
}

func (m *mockStagingService) StageWell(ctx context.Context, wellID int64) (*primary.StagedEntry, error) {
	if m.stageWellFn != nil {
		return m.stageWellFn(ctx, wellID)
	}
	return &primary.StagedEntry{GasID: "G-1", PressureID: "P-1"}, nil
}

func (m *mockStagingService) Unstage(ctx context.Context, gasID, pressureID string) error {
	if m.unstageFn != nil {
		return m.unstageFn(ctx, gasID, pressureID)
	}
	return nil
}

func (m *mockStagingService) ListStaged(ctx context.Context) ([]*primary.StagedEntry, error) {
	if m.listStagedFn != nil {
		return m.listStagedFn(ctx)
	}
	return []*primary.StagedEntry{}, nil
}

func (m *mockStagingService) SetFields(ctx context.Context, req primary.SetFieldsRequest) (*primary.StagedEntry, error) {
	if m.setFieldsFn != nil {
		return m.setFieldsFn(ctx, req)
	}
	return &primary.StagedEntry{GasID: req.GasID, PressureID: req.PressureID}, nil
}

func (m *mockStagingService) Apply(ctx context.Context, req primary.ApplyRequest) (*primary.ApplyResponse, error) {
	m.lastApplyReq = req
	if m.applyFn != nil {
		return m.applyFn(ctx, req)
	}
	return &primary.ApplyResponse{}, nil
}

func TestStagingAdapter_Add_New(t *testing.T) {
	mock := &mockStagingService{}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	if err := adapter.Add(context.Background(), "G-1", "P-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "Staged (G-1, P-1)") {
		t.Errorf("expected staged confirmation, got '%s'", buf.String())
	}
}

func TestStagingAdapter_Add_AlreadyStaged(t *testing.T) {
	mock := &mockStagingService{
		stageFn: func(ctx context.Context, gasID, pressureID string) (bool, error) {
			return false, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	if err := adapter.Add(context.Background(), "G-1", "P-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "already staged") {
		t.Errorf("expected already-staged notice, got '%s'", buf.String())
	}
}

func TestStagingAdapter_Add_MissingIdentifiers(t *testing.T) {
	mock := &mockStagingService{
		stageFn: func(ctx context.Context, gasID, pressureID string) (bool, error) {
			return false, errors.New("at least one of gas id or pressure id is required")
		},
	}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	err := adapter.Add(context.Background(), "", "")

	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestStagingAdapter_AddWell(t *testing.T) {
	mock := &mockStagingService{
		stageWellFn: func(ctx context.Context, wellID int64) (*primary.StagedEntry, error) {
			return &primary.StagedEntry{GasID: "G-9", PressureID: "P-9"}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	if err := adapter.AddWell(context.Background(), 9); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(buf.String(), "Staged well 9 as (G-9, P-9)") {
		t.Errorf("expected staged-well confirmation, got '%s'", buf.String())
	}
}

func TestStagingAdapter_List_Empty(t *testing.T) {
	mock := &mockStagingService{}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	entries, err := adapter.List(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected 0 entries, got %d", len(entries))
	}
	if !strings.Contains(buf.String(), "Nothing staged") {
		t.Errorf("expected 'Nothing staged', got '%s'", buf.String())
	}
}

func TestStagingAdapter_List_WithEntries(t *testing.T) {
	mock := &mockStagingService{
		listStagedFn: func(ctx context.Context) ([]*primary.StagedEntry, error) {
			return []*primary.StagedEntry{
				{GasID: "G-1", PressureID: "P-1", WellName: "Alpha", Layer: "L1", CompletionTech: "Frac", CompositeName: "Alpha - L1 - Frac"},
				{GasID: "G-2"},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	entries, err := adapter.List(context.Background())

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 entries, got %d", len(entries))
	}
	output := buf.String()
	if !strings.Contains(output, "Alpha - L1 - Frac") {
		t.Errorf("expected composite preview, got '%s'", output)
	}
	if !strings.Contains(output, "2 staged") {
		t.Errorf("expected count summary, got '%s'", output)
	}
}

func TestStagingAdapter_Set(t *testing.T) {
	mock := &mockStagingService{
		setFieldsFn: func(ctx context.Context, req primary.SetFieldsRequest) (*primary.StagedEntry, error) {
			return &primary.StagedEntry{GasID: req.GasID, PressureID: req.PressureID, CompositeName: "Delta - L3 - Frac"}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	name := "Delta"
	err := adapter.Set(context.Background(), primary.SetFieldsRequest{GasID: "G-4", PressureID: "P-4", WellName: &name})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	output := buf.String()
	if !strings.Contains(output, "Updated staged (G-4, P-4)") {
		t.Errorf("expected confirmation, got '%s'", output)
	}
	if !strings.Contains(output, "Delta - L3 - Frac") {
		t.Errorf("expected composite preview, got '%s'", output)
	}
}

func TestStagingAdapter_Remove_NotStaged(t *testing.T) {
	mock := &mockStagingService{
		unstageFn: func(ctx context.Context, gasID, pressureID string) error {
			return errors.New("pair (G-9, P-9) is not staged")
		},
	}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	err := adapter.Remove(context.Background(), "G-9", "P-9")

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !strings.Contains(err.Error(), "not staged") {
		t.Errorf("expected not-staged cause, got '%v'", err)
	}
}

func TestStagingAdapter_Apply_RendersOutcomes(t *testing.T) {
	mock := &mockStagingService{
		applyFn: func(ctx context.Context, req primary.ApplyRequest) (*primary.ApplyResponse, error) {
			return &primary.ApplyResponse{
				Outcomes: []primary.RowOutcome{
					{GasID: "G-1", PressureID: "P-1", Status: "updated", WellID: 12},
					{GasID: "G-2", Status: "inserted", WellID: 40},
					{GasID: "G-3", Status: "skipped", Reason: "well name already exists"},
					{PressureID: "P-4", Status: "failed", Reason: "identifier pair matches multiple rows"},
				},
				Summary: primary.ApplySummary{Updated: 1, Inserted: 1, Skipped: 1, Failed: 1},
			}, nil
		},
	}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	resp, err := adapter.Apply(context.Background(), primary.ApplyRequest{})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(resp.Outcomes) != 4 {
		t.Errorf("expected 4 outcomes, got %d", len(resp.Outcomes))
	}
	output := buf.String()
	for _, want := range []string{"updated", "inserted", "skipped", "failed", "well name already exists"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain '%s', got '%s'", want, output)
		}
	}
	if !strings.Contains(output, "Updated: 1  Inserted: 1  Skipped: 1  Failed: 1") {
		t.Errorf("expected summary line, got '%s'", output)
	}
}

func TestStagingAdapter_Apply_PassesPairSelection(t *testing.T) {
	mock := &mockStagingService{}
	var buf bytes.Buffer
	adapter := NewStagingAdapter(mock, &buf)

	req := primary.ApplyRequest{Pairs: []primary.PairRef{{GasID: "G-1", PressureID: "P-1"}}}
	_, err := adapter.Apply(context.Background(), req)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(mock.lastApplyReq.Pairs) != 1 || mock.lastApplyReq.Pairs[0].GasID != "G-1" {
		t.Errorf("expected pair selection passed through, got %+v", mock.lastApplyReq.Pairs)
	}
	if !strings.Contains(buf.String(), "Nothing to apply") {
		t.Errorf("expected 'Nothing to apply', got '%s'", buf.String())
	}
}
