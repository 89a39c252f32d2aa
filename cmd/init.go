package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/learningpython92/FinalDashboard/internal/config"
	"github.com/spf13/cobra"
)

var (
	postgresqlFlag bool
	mysqlFlag      bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName,
	Long: `Write a config file with the default settings. SQLite is used unless
--postgresql or --mysql is given, in which case the URL is read from the
DATABASE_URL environment variable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if postgresqlFlag && mysqlFlag {
			return fmt.Errorf("please specify only one database type (--postgresql or --mysql)")
		}

		cfg := config.DefaultConfig()
		switch {
		case postgresqlFlag:
			cfg.Database.Provider = "postgresql"
			cfg.Database.URL = ""
		case mysqlFlag:
			cfg.Database.Provider = "mysql"
			cfg.Database.URL = ""
		}

		if err := cfg.WriteFile(config.FileName); err != nil {
			return err
		}

		color.Green("✅ Created %s", config.FileName)
		color.Cyan("💡 Run 'dashseed' to seed the %s database", cfg.Database.Provider)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVar(&postgresqlFlag, "postgresql", false, "Configure for PostgreSQL")
	initCmd.Flags().BoolVar(&mysqlFlag, "mysql", false, "Configure for MySQL")
}
