package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/learningpython92/FinalDashboard/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show per-business headcount and hiring figures",
	Long: `Read back the Overall headcount row of every business together with
its hire count, average cost-per-hire and average time-to-fill.`,
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

		stats, err := store.BusinessStats(ctx)
		if err != nil {
			return fmt.Errorf("failed to read stats: %w", err)
		}

		if len(stats) == 0 {
			color.Yellow("⚠️  No data in '%s'. Run 'dashseed seed' first.", target)
			return nil
		}

		color.Green("📊 Dashboard data in '%s'", target)
		fmt.Println()
		printStats(stats)
		return nil
	},
}

func printStats(stats []types.BusinessStats) {
	p := message.NewPrinter(language.English)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "BUSINESS\tHEADCOUNT\tAVAILABLE\tGAP\tHIRES\tAVG COST\tAVG TTF")
	fmt.Fprintln(w, "--------\t---------\t---------\t---\t-----\t--------\t-------")

	var hires int64
	for _, s := range stats {
		hires += s.Hires
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			color.CyanString(s.BusinessGroup),
			p.Sprintf("%d", s.TotalHeadcount),
			p.Sprintf("%d", s.AvailableHeadcount),
			p.Sprintf("%d", s.Gap),
			p.Sprintf("%d", s.Hires),
			p.Sprintf("%.0f", s.AvgCostPerHire),
			p.Sprintf("%.1f days", s.AvgTimeToFill),
		)
	}
	w.Flush()

	fmt.Println()
	color.Cyan("💡 %s hiring records in total", p.Sprintf("%d", hires))
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
