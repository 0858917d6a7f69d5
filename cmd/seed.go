package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Lumos-Labs-HQ/lexseed/internal/auth"
	"github.com/Lumos-Labs-HQ/lexseed/internal/logger"
	"github.com/Lumos-Labs-HQ/lexseed/internal/seeder"
)

var (
	seedDataFile   string
	seedDryRun     bool
	seedBcryptCost int
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Populate the database with demo data",
	Long: `
Insert the demonstration dataset: a tenant, four users (admin, lawyer,
paralegal, client), clients, cases, tasks, calendar events, billing records,
time entries, expenses and communication logs.

If any of the demo users already exists the command reports it and exits
without writing. Rows are not wrapped in a transaction, so a failure part
way through leaves the rows inserted before it.

Use --dry-run to print the insertion plan without connecting.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("bcrypt-cost") {
			cfg.Seed.BcryptCost = seedBcryptCost
			if err := cfg.Validate(); err != nil {
				return err
			}
		}

		log, err := logger.New(&logger.Config{Level: cfg.Log.Level, Development: cfg.Log.Development})
		if err != nil {
			return err
		}
		defer log.Sync()

		hasher, err := auth.NewBcryptHasher(cfg.Seed.BcryptCost)
		if err != nil {
			return err
		}

		opts := []seeder.Option{seeder.WithHasher(hasher), seeder.WithLogger(log)}

		dataFile := seedDataFile
		if dataFile == "" {
			dataFile = cfg.Seed.DataFile
		}
		if dataFile != "" {
			ds, err := seeder.LoadDataset(dataFile)
			if err != nil {
				return err
			}
			opts = append(opts, seeder.WithDataset(ds))
		}

		if seedDryRun {
			plan, err := seeder.New(nil, opts...).Plan()
			if err != nil {
				return err
			}
			seeder.PrintPlan(os.Stdout, plan)
			return nil
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		st, db, err := openStore(ctx, cfg)
		if err != nil {
			log.Error("seed failed", zap.Error(err))
			return err
		}
		defer db.Close()

		result, err := seeder.New(st, opts...).Run(ctx)
		seeder.PrintSummary(os.Stdout, result)
		if err != nil {
			log.Error("seed failed", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedDataFile, "data", "", "YAML dataset to seed instead of the built-in demo data")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Print the insertion plan without touching the database")
	seedCmd.Flags().IntVar(&seedBcryptCost, "bcrypt-cost", 0, "bcrypt cost for demo passwords (overrides config)")
}
