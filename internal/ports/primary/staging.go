package primary

import "context"

// StagingService defines the primary port for the staged working set and
// the apply-staged reconciliation action.
type StagingService interface {
	// Stage promotes an identifier pair into the working set. Idempotent:
	// returns false if the pair was already staged.
	Stage(ctx context.Context, gasID, pressureID string) (bool, error)

	// StageWell promotes a pending store row by surrogate id, using its
	// identifier pair. Fails if the row is not pending.
	StageWell(ctx context.Context, wellID int64) (*StagedEntry, error)

	// Unstage removes a pair from the working set.
	Unstage(ctx context.Context, gasID, pressureID string) error

	// ListStaged returns staged entries in insertion order, each with its
	// composite-name preview.
	ListStaged(ctx context.Context) ([]*StagedEntry, error)

	// SetFields edits a staged entry and returns it with the recomputed
	// composite preview.
	SetFields(ctx context.Context, req SetFieldsRequest) (*StagedEntry, error)

	// Apply reconciles staged entries against the store: every selected
	// entry is classified first, updates run row by row, and all inserts
	// go in one atomic batch. Successful entries leave the working set.
	Apply(ctx context.Context, req ApplyRequest) (*ApplyResponse, error)
}

// StagedEntry is a staged row as presented to callers.
type StagedEntry struct {
	GasID          string
	PressureID     string
	WellName       string
	Formation      string
	Layer          string
	FaultBlock     string
	PadName        string
	CompletionTech string
	LateralLength  string
	UWI            string
	CompositeName  string // preview, derived; empty when undefined
	StagedAt       string
}

// SetFieldsRequest edits one staged entry. Nil pointers leave fields
// unchanged; pointers to "" clear them.
type SetFieldsRequest struct {
	GasID          string
	PressureID     string
	WellName       *string
	Formation      *string
	Layer          *string
	FaultBlock     *string
	PadName        *string
	CompletionTech *string
	LateralLength  *string
	UWI            *string
}

// DuplicateDecider answers the duplicate-well-name confirmation: return
// true to proceed with the row, false to skip it. A nil decider skips.
type DuplicateDecider func(wellName string) bool

// PairRef selects a staged entry by its identifier pair.
type PairRef struct {
	GasID      string
	PressureID string
}

// ApplyRequest selects which staged entries to reconcile.
type ApplyRequest struct {
	// Pairs limits the action to specific staged entries. Empty means all.
	Pairs []PairRef

	// OnDuplicate resolves duplicate-well-name conflicts.
	OnDuplicate DuplicateDecider
}

// RowOutcome is the per-row result of an apply action.
type RowOutcome struct {
	GasID      string
	PressureID string
	Status     string // "updated", "inserted", "skipped", "failed"
	WellID     int64  // surrogate id for updated rows
	Reason     string // populated for skipped/failed rows
}

// ApplySummary aggregates outcomes for the end-of-action report.
type ApplySummary struct {
	Updated  int
	Inserted int
	Skipped  int
	Failed   int
}

// ApplyResponse reports everything that happened during one apply action.
type ApplyResponse struct {
	Outcomes []RowOutcome
	Summary  ApplySummary
}
