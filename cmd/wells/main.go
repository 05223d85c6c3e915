package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/wells/internal/cli"
	"github.com/example/wells/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "wells",
		Short:   "wells - well-metadata entry and reconciliation",
		Version: version.String(),
		Long: `wells is a CLI tool for maintaining a well-metadata table.
It stages (gas, pressure) identifier pairs, fills in their descriptive
fields, and reconciles them against the database: matched pairs update
in place, new pairs insert in one atomic batch.`,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.WellCmd())
	rootCmd.AddCommand(cli.StageCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
