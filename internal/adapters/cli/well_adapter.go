// Package cli contains thin adapters that translate CLI operations to
// service calls and render the results. Adapters are stateless translators;
// they depend only on the primary-port interfaces.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/wells/internal/ports/primary"
)

// WellAdapter translates CLI operations to WellService calls.
type WellAdapter struct {
	service primary.WellService
	out     io.Writer
}

// NewWellAdapter creates a new WellAdapter with the given service.
func NewWellAdapter(service primary.WellService, out io.Writer) *WellAdapter {
	return &WellAdapter{
		service: service,
		out:     out,
	}
}

// List renders the full snapshot, complete rows first, pending rows last.
func (a *WellAdapter) List(ctx context.Context) ([]*primary.Well, error) {
	wells, err := a.service.ListWells(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list wells: %w", err)
	}

	if len(wells) == 0 {
		fmt.Fprintln(a.out, "No wells found.")
		return wells, nil
	}

	a.renderTable(wells)

	pending := 0
	for _, w := range wells {
		if w.Pending {
			pending++
		}
	}
	fmt.Fprintf(a.out, "\nLoaded %d rows, %d pending\n", len(wells), pending)
	return wells, nil
}

// Pending renders only the rows with a blank well name.
func (a *WellAdapter) Pending(ctx context.Context) ([]*primary.Well, error) {
	wells, err := a.service.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending wells: %w", err)
	}

	if len(wells) == 0 {
		fmt.Fprintln(a.out, "No pending wells.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Stage a new identifier pair directly:")
		fmt.Fprintln(a.out, "  wells stage add --gas GAS-ID --pres PRES-ID")
		return wells, nil
	}

	a.renderTable(wells)
	return wells, nil
}

// Show displays details for a single well.
func (a *WellAdapter) Show(ctx context.Context, wellID int64) (*primary.Well, error) {
	well, err := a.service.GetWell(ctx, wellID)
	if err != nil {
		return nil, fmt.Errorf("failed to get well: %w", err)
	}

	fmt.Fprintf(a.out, "\nWell: %d\n", well.ID)
	fmt.Fprintf(a.out, "Gas ID:      %s\n", orDash(well.GasID))
	fmt.Fprintf(a.out, "Pressure ID: %s\n", orDash(well.PressureID))
	fmt.Fprintf(a.out, "Name:        %s\n", orDash(well.WellName))
	fmt.Fprintf(a.out, "Formation:   %s\n", orDash(well.Formation))
	fmt.Fprintf(a.out, "Layer:       %s\n", orDash(well.Layer))
	fmt.Fprintf(a.out, "Fault Block: %s\n", orDash(well.FaultBlock))
	fmt.Fprintf(a.out, "Pad:         %s\n", orDash(well.PadName))
	fmt.Fprintf(a.out, "Technology:  %s\n", orDash(well.CompletionTech))
	fmt.Fprintf(a.out, "Lateral:     %s\n", orDash(well.LateralLength))
	fmt.Fprintf(a.out, "UWI:         %s\n", orDash(well.UWI))
	fmt.Fprintf(a.out, "Composite:   %s\n", orDash(well.CompositeName))
	fmt.Fprintln(a.out)

	return well, nil
}

// Edit applies field edits to an existing well and shows the result.
func (a *WellAdapter) Edit(ctx context.Context, req primary.EditWellRequest) (*primary.Well, error) {
	well, err := a.service.EditWell(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to edit well: %w", err)
	}

	fmt.Fprintf(a.out, "✓ Updated well %d\n", well.ID)
	if well.CompositeName != "" {
		fmt.Fprintf(a.out, "  Composite: %s\n", well.CompositeName)
	}
	return well, nil
}

// Options renders the distinct existing values of a categorical field.
func (a *WellAdapter) Options(ctx context.Context, field string) ([]string, error) {
	values, err := a.service.FieldOptions(ctx, field)
	if err != nil {
		return nil, fmt.Errorf("failed to list options: %w", err)
	}

	if len(values) == 0 {
		fmt.Fprintf(a.out, "No values for %s yet.\n", field)
		return values, nil
	}

	for _, v := range values {
		fmt.Fprintln(a.out, v)
	}
	return values, nil
}

func (a *WellAdapter) renderTable(wells []*primary.Well) {
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tGAS\tPRESSURE\tNAME\tLAYER\tTECH\tCOMPOSITE")
	fmt.Fprintln(w, "--\t---\t--------\t----\t-----\t----\t---------")

	for _, well := range wells {
		name := well.WellName
		if well.Pending {
			name = color.New(color.FgYellow).Sprint("(pending)")
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			well.ID,
			orDash(well.GasID),
			orDash(well.PressureID),
			name,
			orDash(well.Layer),
			orDash(well.CompletionTech),
			orDash(well.CompositeName),
		)
	}

	w.Flush()
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
