package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/learningpython92/FinalDashboard/internal/config"
	"github.com/learningpython92/FinalDashboard/internal/database"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore connects to the configured database. The returned string names
// the store in progress output.
func openStore(ctx context.Context, cfg *config.Config) (database.DatabaseAdapter, string, error) {
	adapter, err := database.NewAdapter(cfg.Database.Provider)
	if err != nil {
		return nil, "", err
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, "", err
	}

	if err := adapter.Connect(ctx, dbURL); err != nil {
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, "", fmt.Errorf("failed to connect to database: %w", err)
	}

	adapter.SetBatchSize(cfg.Seed.BatchSize)
	return adapter, displayTarget(cfg, dbURL), nil
}

func closeStore(adapter database.DatabaseAdapter) {
	if err := adapter.Close(); err != nil {
		color.Yellow("⚠️  Failed to close database: %v", err)
		return
	}
	fmt.Println("Database session closed.")
}

// displayTarget avoids echoing credentials from server URLs.
func displayTarget(cfg *config.Config, dbURL string) string {
	if cfg.IsSQLite() {
		return dbURL
	}
	return cfg.Database.Provider + " ($" + cfg.Database.URLEnv + ")"
}
