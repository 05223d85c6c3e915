package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/wells/internal/ports/primary"
	"github.com/example/wells/internal/wire"
)

var wellCmd = &cobra.Command{
	Use:   "well",
	Short: "View and edit well records",
	Long:  "List, inspect, and edit well-metadata records in the workspace database",
}

var wellListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all wells (pending rows last)",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := wire.WellAdapter()
		_, err := adapter.List(cmd.Context())
		return err
	},
}

var wellPendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List wells that still need a name",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := wire.WellAdapter()
		_, err := adapter.Pending(cmd.Context())
		return err
	},
}

var wellShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show details for a single well",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wellID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid well id: %s", args[0])
		}

		adapter := wire.WellAdapter()
		_, err = adapter.Show(cmd.Context(), wellID)
		return err
	},
}

var wellEditCmd = &cobra.Command{
	Use:   "edit [id...]",
	Short: "Edit fields of existing wells",
	Long: `Edit fields of one or more existing wells. Only the flags you pass
change; pass an empty value to clear a field. The identifier pair cannot
be edited. The composite name is recomputed from the merged name, layer,
and technology.

With several ids the same edits apply to each row; a failing row does not
stop the rest, and a summary is printed at the end.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := wire.WellAdapter()

		failed := 0
		for _, arg := range args {
			wellID, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				fmt.Printf("✗ invalid well id: %s\n", arg)
				failed++
				continue
			}

			req := primary.EditWellRequest{WellID: wellID}
			req.WellName = changedString(cmd, "name")
			req.Formation = changedString(cmd, "formation")
			req.Layer = changedString(cmd, "layer")
			req.FaultBlock = changedString(cmd, "fault-block")
			req.PadName = changedString(cmd, "pad")
			req.CompletionTech = changedString(cmd, "tech")
			req.LateralLength = changedString(cmd, "lateral")
			req.UWI = changedString(cmd, "uwi")

			if _, err := adapter.Edit(cmd.Context(), req); err != nil {
				fmt.Printf("✗ well %d: %v\n", wellID, err)
				failed++
			}
		}

		if len(args) > 1 {
			fmt.Printf("\nEdited: %d  Failed: %d\n", len(args)-failed, failed)
		}
		if failed > 0 {
			return fmt.Errorf("%d edit(s) failed", failed)
		}
		return nil
	},
}

var wellOptionsCmd = &cobra.Command{
	Use:   "options [field]",
	Short: "List distinct existing values of a categorical field",
	Long: `List the distinct existing values of a categorical field, for reuse
when filling in new rows. Fields: formation, layer, fault-block, tech.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := wire.WellAdapter()
		_, err := adapter.Options(cmd.Context(), fieldColumn(args[0]))
		return err
	},
}

// changedString returns a pointer to the flag value when the flag was passed,
// nil otherwise. Passing an empty value clears the field.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

// fieldColumn maps CLI field names to their column names.
func fieldColumn(field string) string {
	switch strings.ToLower(field) {
	case "fault-block":
		return "fault_block"
	case "tech", "technology":
		return "completion_tech"
	default:
		return strings.ToLower(field)
	}
}

func init() {
	// well edit flags
	wellEditCmd.Flags().String("name", "", "Well name")
	wellEditCmd.Flags().String("formation", "", "Formation")
	wellEditCmd.Flags().String("layer", "", "Layer")
	wellEditCmd.Flags().String("fault-block", "", "Fault block")
	wellEditCmd.Flags().String("pad", "", "Pad name")
	wellEditCmd.Flags().String("tech", "", "Completion technology")
	wellEditCmd.Flags().String("lateral", "", "Lateral length")
	wellEditCmd.Flags().String("uwi", "", "UWI")

	wellCmd.AddCommand(wellListCmd)
	wellCmd.AddCommand(wellPendingCmd)
	wellCmd.AddCommand(wellShowCmd)
	wellCmd.AddCommand(wellEditCmd)
	wellCmd.AddCommand(wellOptionsCmd)
}

// WellCmd returns the well command
func WellCmd() *cobra.Command {
	return wellCmd
}
