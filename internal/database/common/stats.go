package common

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/learningpython92/FinalDashboard/internal/types"
)

// OverallSelect reads the business-wide summary rows in insertion order.
func OverallSelect(qb squirrel.StatementBuilderType, quote func(string) string) squirrel.SelectBuilder {
	return qb.
		Select("business_group", "total_headcount", "available_headcount", "gap").
		From(quote(types.SummaryTable)).
		Where(squirrel.Eq{quote("function"): types.OverallFunction}).
		OrderBy("id")
}

// HiringSelect aggregates hires per business. avg wraps a column in the
// provider's average expression.
func HiringSelect(qb squirrel.StatementBuilderType, quote func(string) string, avg func(string) string) squirrel.SelectBuilder {
	return qb.
		Select("business_group", "COUNT(*)", avg("cost_per_hire"), avg("time_to_fill")).
		From(quote(types.HiringTable)).
		GroupBy("business_group")
}

// CountRows returns the number of rows in table.
func CountRows(ctx context.Context, db *sql.DB, qb squirrel.StatementBuilderType, quote func(string) string, table string) (int64, error) {
	if err := CheckTable(table); err != nil {
		return 0, err
	}

	query, args, err := qb.Select("COUNT(*)").From(quote(table)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", table, err)
	}
	return count, nil
}

// QueryStats reads the Overall summaries and the per-business hiring
// aggregates through database/sql.
func QueryStats(ctx context.Context, db *sql.DB, qb squirrel.StatementBuilderType, quote func(string) string) ([]types.BusinessStats, error) {
	query, args, err := OverallSelect(qb, quote).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	defer rows.Close()

	var overall []types.BusinessStats
	for rows.Next() {
		var s types.BusinessStats
		if err := rows.Scan(&s.BusinessGroup, &s.TotalHeadcount, &s.AvailableHeadcount, &s.Gap); err != nil {
			return nil, fmt.Errorf("failed to scan summary: %w", err)
		}
		overall = append(overall, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	query, args, err = HiringSelect(qb, quote, Avg).ToSql()
	if err != nil {
		return nil, err
	}

	hireRows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hiring aggregates: %w", err)
	}
	defer hireRows.Close()

	hires := map[string]types.BusinessStats{}
	for hireRows.Next() {
		var s types.BusinessStats
		if err := hireRows.Scan(&s.BusinessGroup, &s.Hires, &s.AvgCostPerHire, &s.AvgTimeToFill); err != nil {
			return nil, fmt.Errorf("failed to scan hiring aggregate: %w", err)
		}
		hires[s.BusinessGroup] = s
	}
	if err := hireRows.Err(); err != nil {
		return nil, err
	}

	return MergeStats(overall, hires), nil
}

func Avg(column string) string {
	return "AVG(" + column + ")"
}
