package app

import (
	"context"
	"fmt"

	"github.com/example/wells/internal/core/reconcile"
	"github.com/example/wells/internal/core/well"
	"github.com/example/wells/internal/ports/primary"
	"github.com/example/wells/internal/ports/secondary"
)

// StagingServiceImpl implements the StagingService interface. It owns the
// staged working set and drives reconciliation when the user applies it.
type StagingServiceImpl struct {
	wellRepo    secondary.WellRepository
	stagingRepo secondary.StagingRepository
}

// NewStagingService creates a new StagingService with injected dependencies.
func NewStagingService(wellRepo secondary.WellRepository, stagingRepo secondary.StagingRepository) *StagingServiceImpl {
	return &StagingServiceImpl{
		wellRepo:    wellRepo,
		stagingRepo: stagingRepo,
	}
}

// Stage promotes an identifier pair into the working set. Idempotent.
func (s *StagingServiceImpl) Stage(ctx context.Context, gasID, pressureID string) (bool, error) {
	pair := well.IdentifierPair{GasID: gasID, PressureID: pressureID}.Normalize()
	if pair.IsZero() {
		return false, fmt.Errorf("at least one of gas id or pressure id is required")
	}
	return s.stagingRepo.Stage(ctx, pair.GasID, pair.PressureID)
}

// StageWell promotes a pending store row by surrogate id.
func (s *StagingServiceImpl) StageWell(ctx context.Context, wellID int64) (*primary.StagedEntry, error) {
	row, err := s.wellRepo.GetByID(ctx, wellID)
	if err != nil {
		return nil, err
	}
	if !well.IsPending(row.WellName) {
		return nil, fmt.Errorf("well %d already has a name; edit it instead of staging", wellID)
	}

	if _, err := s.Stage(ctx, row.GasID, row.PressureID); err != nil {
		return nil, err
	}

	pair := well.IdentifierPair{GasID: row.GasID, PressureID: row.PressureID}.Normalize()
	record, err := s.stagingRepo.Get(ctx, pair.GasID, pair.PressureID)
	if err != nil {
		return nil, err
	}
	return s.recordToEntry(record), nil
}

// Unstage removes a pair from the working set.
func (s *StagingServiceImpl) Unstage(ctx context.Context, gasID, pressureID string) error {
	pair := well.IdentifierPair{GasID: gasID, PressureID: pressureID}.Normalize()
	return s.stagingRepo.Unstage(ctx, pair.GasID, pair.PressureID)
}

// ListStaged returns staged entries in insertion order.
func (s *StagingServiceImpl) ListStaged(ctx context.Context) ([]*primary.StagedEntry, error) {
	records, err := s.stagingRepo.ListStaged(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged entries: %w", err)
	}

	entries := make([]*primary.StagedEntry, len(records))
	for i, r := range records {
		entries[i] = s.recordToEntry(r)
	}
	return entries, nil
}

// SetFields edits a staged entry and returns it with the recomputed
// composite preview.
func (s *StagingServiceImpl) SetFields(ctx context.Context, req primary.SetFieldsRequest) (*primary.StagedEntry, error) {
	pair := well.IdentifierPair{GasID: req.GasID, PressureID: req.PressureID}.Normalize()

	upd := secondary.StagedUpdate{
		WellName:       trimmed(req.WellName),
		Formation:      trimmed(req.Formation),
		Layer:          trimmed(req.Layer),
		FaultBlock:     trimmed(req.FaultBlock),
		PadName:        trimmed(req.PadName),
		CompletionTech: trimmed(req.CompletionTech),
		LateralLength:  trimmed(req.LateralLength),
		UWI:            trimmed(req.UWI),
	}

	if err := s.stagingRepo.UpdateFields(ctx, pair.GasID, pair.PressureID, upd); err != nil {
		return nil, err
	}

	record, err := s.stagingRepo.Get(ctx, pair.GasID, pair.PressureID)
	if err != nil {
		return nil, err
	}
	return s.recordToEntry(record), nil
}

// Apply reconciles staged entries against the store.
//
// All selected entries are classified before anything is written: updates
// run row by row collecting outcomes (no early abort), inserts accumulate
// into one batch executed at the end so they land or fail together.
// Successful rows leave the working set; skipped and failed rows stay
// staged for another attempt.
func (s *StagingServiceImpl) Apply(ctx context.Context, req primary.ApplyRequest) (*primary.ApplyResponse, error) {
	entries, err := s.selectEntries(ctx, req.Pairs)
	if err != nil {
		return nil, err
	}

	type insertItem struct {
		row  *secondary.WellRow
		pair well.IdentifierPair
	}

	var outcomes []reconcile.Outcome
	var batch []insertItem
	var persisted []well.IdentifierPair

	fail := func(pair well.IdentifierPair, reason string) {
		outcomes = append(outcomes, reconcile.Outcome{
			Pair:   pair,
			Status: reconcile.StatusFailed,
			Reason: reason,
		})
	}

	for _, entry := range entries {
		pair := well.IdentifierPair{GasID: entry.GasID, PressureID: entry.PressureID}.Normalize()
		fields := well.Fields{
			WellName:       entry.WellName,
			Formation:      entry.Formation,
			Layer:          entry.Layer,
			FaultBlock:     entry.FaultBlock,
			PadName:        entry.PadName,
			CompletionTech: entry.CompletionTech,
			LateralLength:  entry.LateralLength,
			UWI:            entry.UWI,
		}.Trimmed()

		// Composite is fixed before any persistence so the stored value
		// always agrees with its source fields.
		composite, _ := well.ComposeName(fields.WellName, fields.Layer, fields.CompletionTech)

		facts := reconcile.Facts{}
		if fields.WellName != "" {
			dup, err := s.wellRepo.ExistsByWellName(ctx, fields.WellName)
			if err != nil {
				fail(pair, fmt.Sprintf("duplicate check failed: %v", err))
				continue
			}
			facts.DuplicateName = dup
		}

		proceed := false
		if facts.DuplicateName && req.OnDuplicate != nil {
			proceed = req.OnDuplicate(fields.WellName)
		}

		match, err := s.wellRepo.FindByIdentifierPair(ctx, pair.GasID, pair.PressureID)
		if err != nil {
			fail(pair, fmt.Sprintf("identifier lookup failed: %v", err))
			continue
		}
		facts.MatchFound = match.Found
		facts.MatchID = match.ID
		facts.MatchAmbiguous = match.Ambiguous

		decision := reconcile.Classify(reconcile.Candidate{Pair: pair, Fields: fields}, facts, proceed)

		switch decision.Action {
		case reconcile.ActionUpdate:
			upd := secondary.WellUpdate{
				WellName:       &fields.WellName,
				Formation:      &fields.Formation,
				Layer:          &fields.Layer,
				FaultBlock:     &fields.FaultBlock,
				PadName:        &fields.PadName,
				CompletionTech: &fields.CompletionTech,
				LateralLength:  &fields.LateralLength,
				UWI:            &fields.UWI,
				CompositeName:  &composite,
			}
			if err := s.wellRepo.UpdateByID(ctx, decision.TargetID, upd); err != nil {
				fail(pair, fmt.Sprintf("update of well %d failed: %v", decision.TargetID, err))
				continue
			}
			outcomes = append(outcomes, reconcile.Outcome{
				Pair:   pair,
				Status: reconcile.StatusUpdated,
				WellID: decision.TargetID,
			})
			persisted = append(persisted, pair)

		case reconcile.ActionInsert:
			batch = append(batch, insertItem{
				row: &secondary.WellRow{
					GasID:          pair.GasID,
					PressureID:     pair.PressureID,
					WellName:       fields.WellName,
					Formation:      fields.Formation,
					Layer:          fields.Layer,
					FaultBlock:     fields.FaultBlock,
					PadName:        fields.PadName,
					CompletionTech: fields.CompletionTech,
					LateralLength:  fields.LateralLength,
					UWI:            fields.UWI,
					CompositeName:  composite,
				},
				pair: pair,
			})

		case reconcile.ActionSkip:
			outcomes = append(outcomes, reconcile.Outcome{
				Pair:   pair,
				Status: reconcile.StatusSkipped,
				Reason: decision.Reason,
			})

		case reconcile.ActionFail:
			fail(pair, decision.Reason)
		}
	}

	// One atomic batch for every not-found row in this action.
	if len(batch) > 0 {
		rows := make([]*secondary.WellRow, len(batch))
		for i, item := range batch {
			rows[i] = item.row
		}
		if err := s.wellRepo.InsertBatch(ctx, rows); err != nil {
			for _, item := range batch {
				fail(item.pair, fmt.Sprintf("insert batch failed: %v", err))
			}
		} else {
			for _, item := range batch {
				outcomes = append(outcomes, reconcile.Outcome{
					Pair:   item.pair,
					Status: reconcile.StatusInserted,
				})
				persisted = append(persisted, item.pair)
			}
		}
	}

	// Persisted rows leave the working set; skipped and failed rows stay.
	for _, pair := range persisted {
		if err := s.stagingRepo.Unstage(ctx, pair.GasID, pair.PressureID); err != nil {
			return nil, fmt.Errorf("row persisted but failed to unstage %s: %w", pair, err)
		}
	}

	return buildApplyResponse(outcomes), nil
}

// selectEntries resolves the apply selection: all staged entries, or the
// named pairs. An unknown pair is an error rather than a silent no-op.
func (s *StagingServiceImpl) selectEntries(ctx context.Context, pairs []primary.PairRef) ([]*secondary.StagedRecord, error) {
	if len(pairs) == 0 {
		records, err := s.stagingRepo.ListStaged(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list staged entries: %w", err)
		}
		return records, nil
	}

	var records []*secondary.StagedRecord
	for _, p := range pairs {
		pair := well.IdentifierPair{GasID: p.GasID, PressureID: p.PressureID}.Normalize()
		record, err := s.stagingRepo.Get(ctx, pair.GasID, pair.PressureID)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

func (s *StagingServiceImpl) recordToEntry(r *secondary.StagedRecord) *primary.StagedEntry {
	composite, _ := well.ComposeName(r.WellName, r.Layer, r.CompletionTech)
	return &primary.StagedEntry{
		GasID:          r.GasID,
		PressureID:     r.PressureID,
		WellName:       r.WellName,
		Formation:      r.Formation,
		Layer:          r.Layer,
		FaultBlock:     r.FaultBlock,
		PadName:        r.PadName,
		CompletionTech: r.CompletionTech,
		LateralLength:  r.LateralLength,
		UWI:            r.UWI,
		CompositeName:  composite,
		StagedAt:       r.StagedAt,
	}
}

func buildApplyResponse(outcomes []reconcile.Outcome) *primary.ApplyResponse {
	summary := reconcile.Summarize(outcomes)
	resp := &primary.ApplyResponse{
		Summary: primary.ApplySummary{
			Updated:  summary.Updated,
			Inserted: summary.Inserted,
			Skipped:  summary.Skipped,
			Failed:   summary.Failed,
		},
	}
	for _, o := range outcomes {
		resp.Outcomes = append(resp.Outcomes, primary.RowOutcome{
			GasID:      o.Pair.GasID,
			PressureID: o.Pair.PressureID,
			Status:     string(o.Status),
			WellID:     o.WellID,
			Reason:     o.Reason,
		})
	}
	return resp
}

// Ensure StagingServiceImpl implements the interface
var _ primary.StagingService = (*StagingServiceImpl)(nil)
