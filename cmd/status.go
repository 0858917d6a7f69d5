package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Lumos-Labs-HQ/lexseed/internal/seeder"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts of the seeded tables",
	Long: `Show how many rows each seeded table holds, parents first.
Useful to check whether a database has been seeded before running seed or reset.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		st, db, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		color.Cyan("📊 Seeded tables (%s)", cfg.Database.Provider)
		fmt.Println()

		var total int64
		for _, table := range seeder.Tables {
			n, err := st.CountRows(ctx, table)
			if err != nil {
				return err
			}
			total += n
			fmt.Printf("  %-22s %6d\n", table, n)
		}

		fmt.Println()
		if total == 0 {
			color.Yellow("⚠️  Database is empty, run 'lexseed seed' to add demo data")
		} else {
			color.Green("✅ %d row(s) across %d table(s)", total, len(seeder.Tables))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
