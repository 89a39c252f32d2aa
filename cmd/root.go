package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/learningpython92/FinalDashboard/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile     string
	showVersion bool
	Version     = "1.0.0"
)

var rootCmd = &cobra.Command{
	Use:   "dashseed",
	Short: "Seed the hiring dashboard database with synthetic data",
	Long: `
dashseed fills the hiring dashboard database with a realistic synthetic
dataset: headcount summaries per business and function plus individual
hiring records with cost, time-to-fill, sourcing and diversity attributes.

Running dashseed without a subcommand creates the schema if needed, clears
the existing data and seeds a fresh dataset in a single transaction.

Database Support:
- SQLite (default, ./dashboard2.db)
- PostgreSQL
- MySQL`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		if showVersion {
			fmt.Printf("dashseed version %s\n", Version)
			os.Exit(0)
		}

		runSeed(context.Background(), seedOptions{})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./"+config.FileName+")")
	rootCmd.Flags().BoolVarP(&showVersion, "version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("dashseed.config")
	}

	viper.AutomaticEnv()

	// The config file is optional; defaults cover a plain run.
	_ = viper.ReadInConfig()
}
