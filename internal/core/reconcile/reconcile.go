// Package reconcile contains the pure decision logic that maps a candidate
// row to an insert, update, skip, or failure. It evaluates precomputed
// store facts without side effects; the app layer gathers the facts and
// executes the decisions.
package reconcile

import (
	"github.com/example/wells/internal/core/well"
)

// Candidate is one row submitted for reconciliation: an identifier pair
// plus the user-supplied field values.
type Candidate struct {
	Pair   well.IdentifierPair
	Fields well.Fields
}

// Facts carries what the store knows about a candidate.
type Facts struct {
	// DuplicateName is true when the candidate's well name is non-blank and
	// another row already carries exactly that name. A duplicate is a soft
	// conflict: it needs a continue/skip decision, it never decides
	// insert vs update.
	DuplicateName bool

	// MatchFound / MatchID describe the identifier-pair lookup. The pair is
	// the authoritative key: a match means update, no match means insert.
	MatchFound bool
	MatchID    int64

	// MatchAmbiguous is true when a single-component probe matched more
	// than one row. The original tool silently took the first; here the
	// ambiguity fails the row so the analyst can fix the data.
	MatchAmbiguous bool
}

// Action is the reconciliation decision for a single candidate.
type Action int

const (
	ActionUpdate Action = iota
	ActionInsert
	ActionSkip
	ActionFail
)

// Decision is the outcome of classifying one candidate.
type Decision struct {
	Action   Action
	TargetID int64  // set for ActionUpdate
	Reason   string // set for ActionSkip and ActionFail
}

// Classify maps one candidate to exactly one decision.
// proceedOnDuplicate is the caller's answer to the duplicate-name
// confirmation; it is only consulted when Facts.DuplicateName is set.
func Classify(c Candidate, f Facts, proceedOnDuplicate bool) Decision {
	if f.DuplicateName && !proceedOnDuplicate {
		return Decision{
			Action: ActionSkip,
			Reason: "well name already exists",
		}
	}

	if f.MatchAmbiguous {
		return Decision{
			Action: ActionFail,
			Reason: "identifier " + c.Pair.String() + " matches more than one row",
		}
	}

	if f.MatchFound {
		return Decision{Action: ActionUpdate, TargetID: f.MatchID}
	}

	return Decision{Action: ActionInsert}
}

// Status is the per-row result reported back to the caller.
type Status string

const (
	StatusUpdated  Status = "updated"
	StatusInserted Status = "inserted"
	StatusSkipped  Status = "skipped"
	StatusFailed   Status = "failed"
)

// Outcome records what happened to one candidate.
type Outcome struct {
	Pair   well.IdentifierPair
	Status Status
	WellID int64  // surrogate id for StatusUpdated
	Reason string // populated for skipped/failed rows
}

// Summary aggregates outcomes for the end-of-action report.
type Summary struct {
	Updated  int
	Inserted int
	Skipped  int
	Failed   int
}

// Summarize counts outcomes by status.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch o.Status {
		case StatusUpdated:
			s.Updated++
		case StatusInserted:
			s.Inserted++
		case StatusSkipped:
			s.Skipped++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
