// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import "context"

// Categorical columns eligible for UniqueValues (choice-list population).
const (
	FieldFormation      = "formation"
	FieldLayer          = "layer"
	FieldFaultBlock     = "fault_block"
	FieldCompletionTech = "completion_tech"
)

// CategoricalFields lists the columns UniqueValues accepts.
var CategoricalFields = []string{
	FieldFormation,
	FieldLayer,
	FieldFaultBlock,
	FieldCompletionTech,
}

// WellRepository defines the secondary port for well-record persistence.
type WellRepository interface {
	// LoadAll retrieves every well row, ordered by surrogate id ascending.
	LoadAll(ctx context.Context) ([]*WellRow, error)

	// GetByID retrieves a well row by its surrogate id.
	GetByID(ctx context.Context, id int64) (*WellRow, error)

	// UniqueValues returns the distinct trimmed non-blank values of a
	// categorical column, sorted. The column must be one of CategoricalFields.
	UniqueValues(ctx context.Context, field string) ([]string, error)

	// FindByIdentifierPair resolves an identifier pair to a surrogate id.
	// Both halves given: exact AND match. One half given: single-column
	// match, with Ambiguous set when more than one row qualifies.
	// Neither given: no match.
	FindByIdentifierPair(ctx context.Context, gasID, pressureID string) (PairMatch, error)

	// ExistsByWellName checks whether any row carries exactly this well name.
	ExistsByWellName(ctx context.Context, name string) (bool, error)

	// InsertBatch appends rows in a single transaction, omitting the
	// surrogate id. Either all rows become visible or none do.
	InsertBatch(ctx context.Context, rows []*WellRow) error

	// UpdateByID applies a partial update by surrogate id. The identifier
	// pair is not part of WellUpdate and is never rewritten.
	UpdateByID(ctx context.Context, id int64, upd WellUpdate) error
}

// WellRow represents a well record as stored in persistence.
// Empty strings stand for NULL columns.
type WellRow struct {
	ID             int64
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
	CompositeName  string
	CreatedAt      string
	UpdatedAt      string
}

// WellUpdate is a partial update of the editable columns. A nil pointer
// leaves the column untouched; a pointer to "" clears it to NULL. The
// surrogate id and the identifier pair have no fields here, so an update
// cannot touch them by construction.
type WellUpdate struct {
	WellName       *string
	Formation      *string
	Layer          *string
	FaultBlock     *string
	PadName        *string
	CompletionTech *string
	LateralLength  *string
	UWI            *string
	CompositeName  *string
}

// IsEmpty reports whether the update carries no changes.
func (u WellUpdate) IsEmpty() bool {
	return u.WellName == nil && u.Formation == nil && u.Layer == nil &&
		u.FaultBlock == nil && u.PadName == nil && u.CompletionTech == nil &&
		u.LateralLength == nil && u.UWI == nil && u.CompositeName == nil
}

// PairMatch is the result of an identifier-pair lookup.
type PairMatch struct {
	ID        int64
	Found     bool
	Ambiguous bool // single-component probe matched more than one row
}

// StagingRepository defines the secondary port for the staged working set.
// Staged entries live outside the well table and survive snapshot reloads.
type StagingRepository interface {
	// Stage adds a pair to the working set with blank editable fields.
	// Idempotent: returns false (and no error) if the pair is already staged.
	Stage(ctx context.Context, gasID, pressureID string) (bool, error)

	// Unstage removes a pair from the working set.
	Unstage(ctx context.Context, gasID, pressureID string) error

	// ListStaged retrieves staged entries in insertion order.
	ListStaged(ctx context.Context) ([]*StagedRecord, error)

	// Get retrieves a single staged entry.
	Get(ctx context.Context, gasID, pressureID string) (*StagedRecord, error)

	// UpdateFields edits a staged entry's editable values.
	UpdateFields(ctx context.Context, gasID, pressureID string, upd StagedUpdate) error
}

// StagedRecord represents a staged entry as stored in persistence.
type StagedRecord struct {
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
	StagedAt       string
}

// StagedUpdate is a partial update of a staged entry's editable values.
// Same pointer semantics as WellUpdate.
type StagedUpdate struct {
	WellName       *string
	Formation      *string
	Layer          *string
	FaultBlock     *string
	PadName        *string
	CompletionTech *string
	LateralLength  *string
	UWI            *string
}

// IsEmpty reports whether the update carries no changes.
func (u StagedUpdate) IsEmpty() bool {
	return u.WellName == nil && u.Formation == nil && u.Layer == nil &&
		u.FaultBlock == nil && u.PadName == nil && u.CompletionTech == nil &&
		u.LateralLength == nil && u.UWI == nil
}
