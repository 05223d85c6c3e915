package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/wells/internal/ports/primary"
	"github.com/example/wells/internal/wire"
)

var stageCmd = &cobra.Command{
	Use:   "stage",
	Short: "Manage the staged working set",
	Long:  "Stage identifier pairs, fill in their fields, and apply them to the database",
}

var stageAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Stage an identifier pair",
	Long: `Stage an identifier pair for a later apply. At least one of --gas
and --pres is required. Use --well to stage an existing pending row instead.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gasID, _ := cmd.Flags().GetString("gas")
		presID, _ := cmd.Flags().GetString("pres")
		wellID, _ := cmd.Flags().GetInt64("well")

		adapter := wire.StagingAdapter()
		if wellID > 0 {
			return adapter.AddWell(cmd.Context(), wellID)
		}
		return adapter.Add(cmd.Context(), gasID, presID)
	},
}

var stageListCmd = &cobra.Command{
	Use:   "list",
	Short: "List staged entries in insertion order",
	RunE: func(cmd *cobra.Command, args []string) error {
		adapter := wire.StagingAdapter()
		_, err := adapter.List(cmd.Context())
		return err
	},
}

var stageSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set fields on a staged entry",
	Long: `Set fields on a staged entry, identified by its pair (--gas/--pres).
Only the flags you pass change; pass an empty value to clear a field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gasID, _ := cmd.Flags().GetString("gas")
		presID, _ := cmd.Flags().GetString("pres")

		req := primary.SetFieldsRequest{GasID: gasID, PressureID: presID}
		req.WellName = changedString(cmd, "name")
		req.Formation = changedString(cmd, "formation")
		req.Layer = changedString(cmd, "layer")
		req.FaultBlock = changedString(cmd, "fault-block")
		req.PadName = changedString(cmd, "pad")
		req.CompletionTech = changedString(cmd, "tech")
		req.LateralLength = changedString(cmd, "lateral")
		req.UWI = changedString(cmd, "uwi")

		adapter := wire.StagingAdapter()
		return adapter.Set(cmd.Context(), req)
	},
}

var stageRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Unstage an identifier pair",
	RunE: func(cmd *cobra.Command, args []string) error {
		gasID, _ := cmd.Flags().GetString("gas")
		presID, _ := cmd.Flags().GetString("pres")

		adapter := wire.StagingAdapter()
		return adapter.Remove(cmd.Context(), gasID, presID)
	},
}

var stageApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply staged entries to the database",
	Long: `Apply staged entries to the database. Each entry is matched by its
identifier pair: a match becomes an update, no match becomes an insert.
All inserts go in one atomic batch. Successful entries leave the working set.

By default applies everything staged; pass --gas/--pres to apply one entry.
Rows whose well name already exists prompt for confirmation; use --force to
update them without asking, or --skip-duplicates to skip them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		gasID, _ := cmd.Flags().GetString("gas")
		presID, _ := cmd.Flags().GetString("pres")
		force, _ := cmd.Flags().GetBool("force")
		skipDuplicates, _ := cmd.Flags().GetBool("skip-duplicates")

		req := primary.ApplyRequest{}
		if gasID != "" || presID != "" {
			req.Pairs = []primary.PairRef{{GasID: gasID, PressureID: presID}}
		}

		switch {
		case force:
			req.OnDuplicate = func(wellName string) bool { return true }
		case skipDuplicates:
			req.OnDuplicate = nil
		default:
			req.OnDuplicate = promptDuplicate
		}

		adapter := wire.StagingAdapter()
		resp, err := adapter.Apply(cmd.Context(), req)
		if err != nil {
			return err
		}

		if resp.Summary.Failed > 0 {
			fmt.Println(color.New(color.FgRed).Sprintf("⚠ %d row(s) failed and remain staged", resp.Summary.Failed))
		} else if resp.Summary.Updated+resp.Summary.Inserted > 0 {
			fmt.Println(color.New(color.FgHiGreen).Sprint("✓ Save complete"))
		}
		return nil
	},
}

// promptDuplicate asks on stdin whether to proceed with a row whose well
// name already exists in the database.
func promptDuplicate(wellName string) bool {
	fmt.Printf("Well name %q already exists. Update anyway? [y/N] ", wellName)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

func addPairFlags(cmd *cobra.Command) {
	cmd.Flags().String("gas", "", "Gas-record identifier")
	cmd.Flags().String("pres", "", "Pressure-record identifier")
}

func init() {
	addPairFlags(stageAddCmd)
	stageAddCmd.Flags().Int64("well", 0, "Stage an existing pending well by id")

	addPairFlags(stageSetCmd)
	stageSetCmd.Flags().String("name", "", "Well name")
	stageSetCmd.Flags().String("formation", "", "Formation")
	stageSetCmd.Flags().String("layer", "", "Layer")
	stageSetCmd.Flags().String("fault-block", "", "Fault block")
	stageSetCmd.Flags().String("pad", "", "Pad name")
	stageSetCmd.Flags().String("tech", "", "Completion technology")
	stageSetCmd.Flags().String("lateral", "", "Lateral length")
	stageSetCmd.Flags().String("uwi", "", "UWI")

	addPairFlags(stageRmCmd)

	addPairFlags(stageApplyCmd)
	stageApplyCmd.Flags().Bool("force", false, "Update duplicate well names without asking")
	stageApplyCmd.Flags().Bool("skip-duplicates", false, "Skip rows whose well name already exists")

	stageCmd.AddCommand(stageAddCmd)
	stageCmd.AddCommand(stageListCmd)
	stageCmd.AddCommand(stageSetCmd)
	stageCmd.AddCommand(stageRmCmd)
	stageCmd.AddCommand(stageApplyCmd)
}

// StageCmd returns the stage command
func StageCmd() *cobra.Command {
	return stageCmd
}
