// Package app implements the primary-port services on top of the
// secondary-port repositories and the pure core packages.
package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/example/wells/internal/core/well"
	"github.com/example/wells/internal/ports/primary"
	"github.com/example/wells/internal/ports/secondary"
)

// WellServiceImpl implements the WellService interface.
type WellServiceImpl struct {
	wellRepo secondary.WellRepository
}

// NewWellService creates a new WellService with injected dependencies.
func NewWellService(wellRepo secondary.WellRepository) *WellServiceImpl {
	return &WellServiceImpl{
		wellRepo: wellRepo,
	}
}

// ListWells returns the full snapshot, complete rows first in id order,
// pending rows after them in id order. Mirrors the two-block grid of the
// entry tool: finished wells on top, rows awaiting a name at the bottom.
func (s *WellServiceImpl) ListWells(ctx context.Context) ([]*primary.Well, error) {
	rows, err := s.wellRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load wells: %w", err)
	}

	var complete, pending []*primary.Well
	for _, r := range rows {
		w := s.rowToWell(r)
		if w.Pending {
			pending = append(pending, w)
		} else {
			complete = append(complete, w)
		}
	}

	return append(complete, pending...), nil
}

// ListPending returns only the rows with a blank well name.
func (s *WellServiceImpl) ListPending(ctx context.Context) ([]*primary.Well, error) {
	rows, err := s.wellRepo.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load wells: %w", err)
	}

	var pending []*primary.Well
	for _, r := range rows {
		if well.IsPending(r.WellName) {
			pending = append(pending, s.rowToWell(r))
		}
	}
	return pending, nil
}

// GetWell retrieves a single well by surrogate id.
func (s *WellServiceImpl) GetWell(ctx context.Context, id int64) (*primary.Well, error) {
	row, err := s.wellRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.rowToWell(row), nil
}

// EditWell applies field edits to an existing row. The composite name is
// recomputed from the merged values so the stored field always agrees with
// its source fields at write time. The identifier pair is never part of
// the update.
func (s *WellServiceImpl) EditWell(ctx context.Context, req primary.EditWellRequest) (*primary.Well, error) {
	current, err := s.wellRepo.GetByID(ctx, req.WellID)
	if err != nil {
		return nil, err
	}

	wellName := mergedValue(req.WellName, current.WellName)
	layer := mergedValue(req.Layer, current.Layer)
	tech := mergedValue(req.CompletionTech, current.CompletionTech)

	composite, _ := well.ComposeName(wellName, layer, tech)

	upd := secondary.WellUpdate{
		WellName:       trimmed(req.WellName),
		Formation:      trimmed(req.Formation),
		Layer:          trimmed(req.Layer),
		FaultBlock:     trimmed(req.FaultBlock),
		PadName:        trimmed(req.PadName),
		CompletionTech: trimmed(req.CompletionTech),
		LateralLength:  trimmed(req.LateralLength),
		UWI:            trimmed(req.UWI),
		CompositeName:  &composite,
	}

	if err := s.wellRepo.UpdateByID(ctx, req.WellID, upd); err != nil {
		return nil, err
	}

	updated, err := s.wellRepo.GetByID(ctx, req.WellID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch updated well: %w", err)
	}
	return s.rowToWell(updated), nil
}

// FieldOptions returns the distinct existing values of a categorical field.
func (s *WellServiceImpl) FieldOptions(ctx context.Context, field string) ([]string, error) {
	values, err := s.wellRepo.UniqueValues(ctx, field)
	if err != nil {
		return nil, err
	}
	return values, nil
}

func (s *WellServiceImpl) rowToWell(r *secondary.WellRow) *primary.Well {
	return &primary.Well{
		ID:             r.ID,
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
		CompositeName:  r.CompositeName,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		Pending:        well.IsPending(r.WellName),
	}
}

// mergedValue picks the edited value when present, else the stored one.
func mergedValue(edit *string, current string) string {
	if edit != nil {
		return *edit
	}
	return current
}

// trimmed passes an edit through with surrounding whitespace removed,
// preserving nil (field untouched).
func trimmed(edit *string) *string {
	if edit == nil {
		return nil
	}
	t := strings.TrimSpace(*edit)
	return &t
}

// Ensure WellServiceImpl implements the interface
var _ primary.WellService = (*WellServiceImpl)(nil)
