package main

import (
	"fmt"

	"github-scout/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply, roll back or inspect the embedded migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		if err := database.RunMigrations(e.db, command); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "migrate %s: done\n", command)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
