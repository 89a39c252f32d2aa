// Package seeder runs one regenerate-and-replace cycle against a store:
// clear the dashboard tables, generate a fresh dataset and insert it, all
// inside a single transaction.
package seeder

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/learningpython92/FinalDashboard/internal/database"
	"github.com/learningpython92/FinalDashboard/internal/database/common"
	"github.com/learningpython92/FinalDashboard/internal/generator"
	"github.com/learningpython92/FinalDashboard/internal/types"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

type Seeder struct {
	adapter   database.DatabaseAdapter
	generator *generator.Generator
	target    string
	dryRun    bool
	printer   *message.Printer
}

// Result summarises a finished run.
type Result struct {
	Summaries int
	Hirings   int
	Plans     []generator.BusinessPlan
	Data      *generator.Dataset
}

// New builds a seeder. target names the store in progress output. With
// dryRun set the dataset is generated and reported but nothing is written.
func New(adapter database.DatabaseAdapter, gen *generator.Generator, target string, dryRun bool) *Seeder {
	return &Seeder{
		adapter:   adapter,
		generator: gen,
		target:    target,
		dryRun:    dryRun,
		printer:   message.NewPrinter(language.English),
	}
}

func (s *Seeder) Seed(ctx context.Context) (*Result, error) {
	if s.dryRun {
		color.Yellow("🧪 Dry run: nothing will be written to '%s'", s.target)
		data, err := s.generate()
		if err != nil {
			return nil, err
		}
		return s.result(data), nil
	}

	color.Cyan("🗄️  Database session started for '%s'.", s.target)

	tx, err := s.adapter.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := s.replace(ctx, tx)
	if err != nil {
		color.Yellow("🔄 Rolling back transaction due to error...")
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return nil, fmt.Errorf("seed failed and rollback failed: %v (original: %w)", rbErr, err)
		}
		color.Yellow("✅ Transaction rolled back")
		return nil, err
	}

	color.Green("\n✅ Seeded %d hiring records and %d summary records into '%s'.",
		result.Hirings, result.Summaries, s.target)
	return result, nil
}

func (s *Seeder) replace(ctx context.Context, tx common.Tx) (*Result, error) {
	color.Cyan("🧹 Clearing existing data...")
	for _, table := range []string{types.HiringTable, types.SummaryTable} {
		if err := tx.DeleteAll(ctx, table); err != nil {
			return nil, err
		}
	}

	data, err := s.generate()
	if err != nil {
		return nil, err
	}

	fmt.Println()
	color.Cyan("📝 Adding generated data to the session...")
	if err := tx.InsertSummaries(ctx, data.Summaries); err != nil {
		return nil, err
	}
	if err := tx.InsertHirings(ctx, data.Hirings); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	color.Cyan("🔓 Data committed to the database successfully.")

	return s.result(data), nil
}

func (s *Seeder) generate() (*generator.Dataset, error) {
	color.Cyan("🎲 Generating new data with trends, outliers, and correct summaries...")
	data, err := s.generator.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate data: %w", err)
	}
	for _, plan := range data.Plans {
		fmt.Println()
		color.Cyan("%s", s.printer.Sprintf("--- Processing: %s - Simulating %d Hires ---", plan.Business, plan.TotalHires))
	}
	return data, nil
}

func (s *Seeder) result(data *generator.Dataset) *Result {
	return &Result{
		Summaries: len(data.Summaries),
		Hirings:   len(data.Hirings),
		Plans:     data.Plans,
		Data:      data,
	}
}
