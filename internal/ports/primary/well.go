// Package primary defines the primary ports (driving interfaces) for the application.
// These are the interfaces through which callers (CLI adapters) drive the core.
package primary

import "context"

// WellService defines the primary port for viewing and editing well records.
type WellService interface {
	// ListWells returns the full snapshot: complete rows first (id order),
	// pending rows last.
	ListWells(ctx context.Context) ([]*Well, error)

	// ListPending returns only the rows with a blank well name.
	ListPending(ctx context.Context) ([]*Well, error)

	// GetWell retrieves a single well by surrogate id.
	GetWell(ctx context.Context, id int64) (*Well, error)

	// EditWell applies field edits to an existing row, recomputing the
	// composite name from the merged values. The identifier pair is never
	// touched.
	EditWell(ctx context.Context, req EditWellRequest) (*Well, error)

	// FieldOptions returns the distinct existing values of a categorical
	// field, for choice lists.
	FieldOptions(ctx context.Context, field string) ([]string, error)
}

// Well is a well record as presented to callers.
type Well struct {
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
	Pending        bool // blank well name
}

// EditWellRequest contains field edits for a single existing row.
// Nil pointers leave fields unchanged; pointers to "" clear them.
type EditWellRequest struct {
	WellID         int64
	WellName       *string
	Formation      *string
	Layer          *string
	FaultBlock     *string
	PadName        *string
	CompletionTech *string
	LateralLength  *string
	UWI            *string
}
