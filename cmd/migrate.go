package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/learningpython92/FinalDashboard/internal/database/common"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the dashboard schema",
	Long: `Create hiring_data, business_summary and alerts_log with their indexes
if they do not exist yet. Existing tables and data are left untouched.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		store, target, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore(store)

		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}

		color.Green("✅ Schema is up to date in '%s'", target)
		for _, table := range common.Tables() {
			fmt.Printf("  • %s\n", table.Name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
