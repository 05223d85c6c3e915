package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/example/wells/internal/ports/primary"
)

// StagingAdapter translates CLI operations to StagingService calls.
type StagingAdapter struct {
	service primary.StagingService
	out     io.Writer
}

// NewStagingAdapter creates a new StagingAdapter with the given service.
func NewStagingAdapter(service primary.StagingService, out io.Writer) *StagingAdapter {
	return &StagingAdapter{
		service: service,
		out:     out,
	}
}

// Add stages an identifier pair for a later apply.
func (a *StagingAdapter) Add(ctx context.Context, gasID, pressureID string) error {
	added, err := a.service.Stage(ctx, gasID, pressureID)
	if err != nil {
		return fmt.Errorf("failed to stage pair: %w", err)
	}

	if added {
		fmt.Fprintf(a.out, "✓ Staged (%s, %s)\n", gasID, pressureID)
	} else {
		fmt.Fprintf(a.out, "Pair (%s, %s) is already staged.\n", gasID, pressureID)
	}
	return nil
}

// AddWell stages the identifier pair of an existing pending well.
func (a *StagingAdapter) AddWell(ctx context.Context, wellID int64) error {
	entry, err := a.service.StageWell(ctx, wellID)
	if err != nil {
		return fmt.Errorf("failed to stage well: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Staged well %d as (%s, %s)\n", wellID, entry.GasID, entry.PressureID)
	return nil
}

// List renders the staged entries in insertion order.
func (a *StagingAdapter) List(ctx context.Context) ([]*primary.StagedEntry, error) {
	entries, err := a.service.ListStaged(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list staged entries: %w", err)
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "Nothing staged.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Stage an identifier pair:")
		fmt.Fprintln(a.out, "  wells stage add --gas GAS-ID --pres PRES-ID")
		return entries, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "GAS\tPRESSURE\tNAME\tLAYER\tTECH\tCOMPOSITE")
	fmt.Fprintln(w, "---\t--------\t----\t-----\t----\t---------")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			orDash(e.GasID),
			orDash(e.PressureID),
			orDash(e.WellName),
			orDash(e.Layer),
			orDash(e.CompletionTech),
			orDash(e.CompositeName),
		)
	}
	w.Flush()

	fmt.Fprintf(a.out, "\n%d staged\n", len(entries))
	return entries, nil
}

// Set applies field values to a staged entry.
func (a *StagingAdapter) Set(ctx context.Context, req primary.SetFieldsRequest) error {
	entry, err := a.service.SetFields(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to set fields: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Updated staged (%s, %s)\n", entry.GasID, entry.PressureID)
	if entry.CompositeName != "" {
		fmt.Fprintf(a.out, "  Composite: %s\n", entry.CompositeName)
	}
	return nil
}

// Remove unstages an identifier pair.
func (a *StagingAdapter) Remove(ctx context.Context, gasID, pressureID string) error {
	if err := a.service.Unstage(ctx, gasID, pressureID); err != nil {
		return fmt.Errorf("failed to unstage pair: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Unstaged (%s, %s)\n", gasID, pressureID)
	return nil
}

// Apply reconciles staged entries against the database and renders one
// outcome line per pair plus a summary.
func (a *StagingAdapter) Apply(ctx context.Context, req primary.ApplyRequest) (*primary.ApplyResponse, error) {
	resp, err := a.service.Apply(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to apply staged entries: %w", err)
	}

	if len(resp.Outcomes) == 0 {
		fmt.Fprintln(a.out, "Nothing to apply.")
		return resp, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "GAS\tPRESSURE\tSTATUS\tWELL\tREASON")
	fmt.Fprintln(w, "---\t--------\t------\t----\t------")
	for _, o := range resp.Outcomes {
		wellID := "-"
		if o.WellID > 0 {
			wellID = fmt.Sprintf("%d", o.WellID)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			orDash(o.GasID),
			orDash(o.PressureID),
			o.Status,
			wellID,
			orDash(o.Reason),
		)
	}
	w.Flush()

	s := resp.Summary
	fmt.Fprintf(a.out, "\nUpdated: %d  Inserted: %d  Skipped: %d  Failed: %d\n",
		s.Updated, s.Inserted, s.Skipped, s.Failed)
	return resp, nil
}
