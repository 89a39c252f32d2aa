package common

import (
	"context"
	"fmt"
	"regexp"
	"sort"

	"github.com/learningpython92/FinalDashboard/internal/types"
)

// DefaultBatchSize is the number of rows written per INSERT statement.
const DefaultBatchSize = 100

// validIdentifier validates SQL identifiers (table/column names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

func IsValidIdentifier(name string) bool {
	return validIdentifier.MatchString(name)
}

// Tx is one unit of work against the store. Nothing written through it is
// visible outside until Commit.
type Tx interface {
	DeleteAll(ctx context.Context, table string) error
	InsertSummaries(ctx context.Context, rows []types.HeadcountSummary) error
	InsertHirings(ctx context.Context, rows []types.HiringRecord) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

var HiringColumns = []string{
	"business_group", "function", "role_title", "hire_date", "cost_per_hire",
	"time_to_fill", "ijp_adherence", "build_buy_ratio", "diversity_ratio", "source",
}

var SummaryColumns = []string{
	"business_group", "function", "total_headcount", "available_headcount", "gap",
}

func HiringValues(h types.HiringRecord) []interface{} {
	return []interface{}{
		h.BusinessGroup, h.Function, h.RoleTitle, h.HireDate, h.CostPerHire,
		h.TimeToFill, h.IJPAdherence, string(h.BuildBuy), h.Diversity, h.Source,
	}
}

func SummaryValues(s types.HeadcountSummary) []interface{} {
	return []interface{}{
		s.BusinessGroup, s.Function, s.TotalHeadcount, s.AvailableHeadcount, s.Gap,
	}
}

// Batches splits n rows into [start, end) windows of at most size rows.
func Batches(n, size int) [][2]int {
	if size <= 0 {
		size = DefaultBatchSize
	}
	var out [][2]int
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		out = append(out, [2]int{start, end})
	}
	return out
}

// QuoteAll applies quote to every column name.
func QuoteAll(columns []string, quote func(string) string) []string {
	quoted := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = quote(c)
	}
	return quoted
}

// CheckTable rejects anything that is not one of the seeded tables.
func CheckTable(table string) error {
	if !IsValidIdentifier(table) {
		return fmt.Errorf("invalid table name: %s", table)
	}
	switch table {
	case types.HiringTable, types.SummaryTable, types.AlertTable:
		return nil
	}
	return fmt.Errorf("unknown table: %s", table)
}

// MergeStats joins the Overall summary rows with the per-business hiring
// aggregates, keeping the summary order.
func MergeStats(overall []types.BusinessStats, hires map[string]types.BusinessStats) []types.BusinessStats {
	out := make([]types.BusinessStats, 0, len(overall))
	seen := make(map[string]bool, len(overall))
	for _, o := range overall {
		if h, ok := hires[o.BusinessGroup]; ok {
			o.Hires = h.Hires
			o.AvgCostPerHire = h.AvgCostPerHire
			o.AvgTimeToFill = h.AvgTimeToFill
		}
		seen[o.BusinessGroup] = true
		out = append(out, o)
	}
	// Businesses with hires but no summary row still show up.
	var extra []string
	for name := range hires {
		if !seen[name] {
			extra = append(extra, name)
		}
	}
	sort.Strings(extra)
	for _, name := range extra {
		out = append(out, hires[name])
	}
	return out
}
