package cli

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/wells/internal/config"
	"github.com/example/wells/internal/db"
)

// CheckResult represents the outcome of a single check
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

// DoctorCmd returns the doctor command for workspace validation
func DoctorCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Validate the wells workspace",
		Long: `Health check for the current wells workspace.

Validates:
- Workspace config (.wells/config.json)
- Database file and schema
- Configured well table
- Staged working set

Examples:
  wells doctor              # Run full health check
  wells doctor --quiet      # Exit code only (0=healthy, 1=issues)`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			results := []CheckResult{}
			hasErrors := false

			cfgResult, cfg := checkConfig(cwd)
			results = append(results, cfgResult)

			dbResult, conn := checkDatabase(cfg)
			results = append(results, dbResult)
			if conn != nil {
				defer conn.Close()
				results = append(results, checkWellTable(conn, cfg.Table))
				results = append(results, checkStaging(conn))
			}

			for _, r := range results {
				if r.Status == "✗" {
					hasErrors = true
					break
				}
			}

			if !quiet {
				fmt.Println()
				fmt.Println("Check              Status")
				fmt.Println("─────────────────────────")
				for _, r := range results {
					fmt.Printf("%-18s %s\n", r.Name, r.Status)
				}
				fmt.Println()

				hasDetails := false
				for _, r := range results {
					if r.Details != "" {
						if !hasDetails {
							fmt.Println("Details:")
							hasDetails = true
						}
						fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
					}
				}

				if hasErrors {
					fmt.Println("\n⚠ Issues found. Run 'wells init' to set up the workspace.")
				} else {
					fmt.Println("All checks passed.")
				}
			}

			if hasErrors {
				return fmt.Errorf("workspace validation failed")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "Quiet mode - exit code only")

	return cmd
}

// checkConfig validates .wells/config.json; falls back to the default layout
// so that the remaining checks can still run against it.
func checkConfig(cwd string) (CheckResult, *config.Config) {
	cfg, err := config.LoadConfig(cwd)
	if err != nil {
		return CheckResult{
			Name:    "Config",
			Status:  "⚠",
			Details: "  .wells/config.json not found, using defaults",
		}, config.Default(cwd)
	}
	return CheckResult{Name: "Config", Status: "✓"}, cfg
}

// checkDatabase validates that the database file exists and opens
func checkDatabase(cfg *config.Config) (CheckResult, *sql.DB) {
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: fmt.Sprintf("  %s does not exist", filepath.Clean(cfg.DBPath)),
		}, nil
	}

	conn, err := db.Open(cfg.DBPath)
	if err != nil {
		return CheckResult{
			Name:    "Database",
			Status:  "✗",
			Details: fmt.Sprintf("  Cannot open database: %v", err),
		}, nil
	}

	return CheckResult{Name: "Database", Status: "✓"}, conn
}

// checkWellTable verifies the configured well table exists
func checkWellTable(conn *sql.DB, table string) CheckResult {
	var name string
	err := conn.QueryRow(
		"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table,
	).Scan(&name)
	if err == sql.ErrNoRows {
		return CheckResult{
			Name:    "Well Table",
			Status:  "✗",
			Details: fmt.Sprintf("  Table %q not found", table),
		}
	}
	if err != nil {
		return CheckResult{
			Name:    "Well Table",
			Status:  "✗",
			Details: fmt.Sprintf("  Cannot inspect schema: %v", err),
		}
	}
	return CheckResult{Name: "Well Table", Status: "✓"}
}

// checkStaging reports the size of the staged working set
func checkStaging(conn *sql.DB) CheckResult {
	var count int
	if err := conn.QueryRow("SELECT COUNT(*) FROM staged_wells").Scan(&count); err != nil {
		return CheckResult{
			Name:    "Staging",
			Status:  "✗",
			Details: fmt.Sprintf("  Cannot read staged_wells: %v", err),
		}
	}
	if count > 0 {
		return CheckResult{
			Name:    "Staging",
			Status:  "✓",
			Details: fmt.Sprintf("  %d entries staged (run 'wells stage apply' to save)", count),
		}
	}
	return CheckResult{Name: "Staging", Status: "✓"}
}
