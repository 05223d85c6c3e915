package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/wells/internal/config"
	"github.com/example/wells/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var dbPath string
	var table string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a wells workspace",
		Long:  `Initialize a wells workspace: writes .wells/config.json and creates the SQLite database with the required schema.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("failed to resolve working directory: %w", err)
			}

			cfg := config.Default(cwd)
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			if table != "" {
				cfg.Table = table
			}

			fmt.Printf("Initializing wells database at %s\n", cfg.DBPath)

			conn, err := db.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize database: %w", err)
			}
			defer conn.Close()

			fmt.Println("✓ Database initialized successfully")

			if err := config.SaveConfig(cwd, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Println("✓ Config written to .wells/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  wells stage add --gas GAS-ID --pres PRES-ID")
			fmt.Println("  wells well list")

			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "Path to the SQLite database file (default .wells/wells.db)")
	cmd.Flags().StringVar(&table, "table", "", "Name of the well table (default \"wells\")")

	return cmd
}
