package cmd

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Lumos-Labs-HQ/lexseed/internal/config"
	"github.com/Lumos-Labs-HQ/lexseed/internal/database"
	"github.com/Lumos-Labs-HQ/lexseed/internal/store"
)

// loadConfig reads and validates the CLI configuration.
func loadConfig() (*config.Config, error) {
	if configErr != nil {
		return nil, configErr
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore connects to the configured database. Callers close the returned *sql.DB.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, *sql.DB, error) {
	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, nil, err
	}

	db, err := database.Open(ctx, cfg.Database.Provider, dbURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return store.New(db, cfg.Database.Provider), db, nil
}
