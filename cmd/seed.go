package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/learningpython92/FinalDashboard/internal/database"
	"github.com/learningpython92/FinalDashboard/internal/export"
	"github.com/learningpython92/FinalDashboard/internal/generator"
	"github.com/learningpython92/FinalDashboard/internal/profile"
	"github.com/learningpython92/FinalDashboard/internal/seeder"
	"github.com/spf13/cobra"
)

var (
	seedRandom int64
	seedDryRun bool
	seedExport string
	seedFormat string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Regenerate and seed the dashboard data",
	Long: `Clear hiring_data and business_summary, generate a fresh synthetic
dataset and insert it in a single transaction. Any failure rolls the whole
run back, leaving the previous data in place.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := seedOptions{dryRun: seedDryRun, exportPath: seedExport, exportFormat: seedFormat}
		if cmd.Flags().Changed("random-seed") {
			opts.randomSeed = &seedRandom
		}

		runSeed(context.Background(), opts)
		return nil
	},
}

type seedOptions struct {
	randomSeed   *int64
	dryRun       bool
	exportPath   string
	exportFormat string
}

// runSeed never fails the command: seed reports its own error, so a failed
// run still exits normally.
func runSeed(ctx context.Context, opts seedOptions) {
	color.Cyan("🌱 Running database seeder...")
	_ = seed(ctx, opts)
}

// seed reports any failure before the store is closed, so the error shows
// up ahead of the session-closed line.
func seed(ctx context.Context, opts seedOptions) (err error) {
	var store database.DatabaseAdapter
	defer func() {
		if err != nil {
			color.Red("\n❌ An error occurred: %v", err)
		}
		if store != nil {
			closeStore(store)
		}
	}()

	if opts.exportPath != "" {
		if err := export.CheckFormat(opts.exportFormat); err != nil {
			return err
		}
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	p, err := profile.Load(cfg.Seed.Profile)
	if err != nil {
		return err
	}

	randomSeed := cfg.Seed.RandomSeed
	if opts.randomSeed != nil {
		randomSeed = *opts.randomSeed
	}
	if randomSeed != 0 {
		color.Cyan("🎲 Random seed: %d", randomSeed)
	}
	gen := generator.New(p, generator.NewSeededFaker(randomSeed))

	if opts.dryRun {
		result, err := seeder.New(nil, gen, cfg.Database.Provider, true).Seed(ctx)
		if err != nil {
			return err
		}
		fmt.Println()
		color.Green("✅ Would seed %d hiring records and %d summary records.", result.Hirings, result.Summaries)
		return exportResult(result, opts)
	}

	var target string
	store, target, err = openStore(ctx, cfg)
	if err != nil {
		return err
	}

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	result, err := seeder.New(store, gen, target, false).Seed(ctx)
	if err != nil {
		return err
	}
	return exportResult(result, opts)
}

func exportResult(result *seeder.Result, opts seedOptions) error {
	if opts.exportPath == "" {
		return nil
	}

	path, err := export.Write(result.Data, opts.exportPath, opts.exportFormat)
	if err != nil {
		return fmt.Errorf("failed to export dataset: %w", err)
	}
	color.Green("📦 Dataset exported to %s", path)
	return nil
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Int64Var(&seedRandom, "random-seed", 0, "Seed for the random generator (default: seed.random_seed, 0 = time based)")
	seedCmd.Flags().BoolVar(&seedDryRun, "dry-run", false, "Generate and report without writing to the database")
	seedCmd.Flags().StringVar(&seedExport, "export", "", "Also write the generated dataset to this directory")
	seedCmd.Flags().StringVar(&seedFormat, "format", "csv", "Export format (csv, json)")
}
