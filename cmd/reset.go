package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/lexseed/internal/seeder"
	"github.com/Lumos-Labs-HQ/lexseed/internal/utils"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all rows from the seeded tables",
	Long: `
Delete every row of the seeded tables, children first, inside a single
transaction. Tables themselves are kept.

⚠️  WARNING: This removes all data in these tables, not only demo data!

Use --force to skip the confirmation prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		force, _ := cmd.Flags().GetBool("force")
		if !utils.NewInputUtils().AskConfirmation("⚠️  Delete all rows from the seeded tables?", force) {
			color.Yellow("Reset cancelled")
			return nil
		}

		ctx := context.Background()
		st, db, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		tx, err := db.BeginTx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		defer tx.Rollback()

		txStore := st.WithTx(tx)
		for i := len(seeder.Tables) - 1; i >= 0; i-- {
			table := seeder.Tables[i]
			n, err := txStore.DeleteAll(ctx, table)
			if err != nil {
				return err
			}
			fmt.Printf("  🗑️  %-22s %6d deleted\n", table, n)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit reset: %w", err)
		}

		color.Green("✅ Database reset complete")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolP("force", "f", false, "Skip confirmation")
}
