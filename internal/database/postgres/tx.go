package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/learningpython92/FinalDashboard/internal/database/common"
	"github.com/learningpython92/FinalDashboard/internal/types"
)

// pgTx clears tables with TRUNCATE, which is transactional in Postgres,
// and writes rows with COPY.
type pgTx struct {
	tx pgx.Tx
}

func (t *pgTx) DeleteAll(ctx context.Context, table string) error {
	if err := common.CheckTable(table); err != nil {
		return err
	}
	if _, err := t.tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY", quote(table))); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}
	return nil
}

func (t *pgTx) InsertSummaries(ctx context.Context, rows []types.HeadcountSummary) error {
	return t.copy(ctx, types.SummaryTable, common.SummaryColumns, len(rows), func(i int) []interface{} {
		return common.SummaryValues(rows[i])
	})
}

func (t *pgTx) InsertHirings(ctx context.Context, rows []types.HiringRecord) error {
	return t.copy(ctx, types.HiringTable, common.HiringColumns, len(rows), func(i int) []interface{} {
		return common.HiringValues(rows[i])
	})
}

func (t *pgTx) copy(ctx context.Context, table string, columns []string, n int, values func(int) []interface{}) error {
	copied, err := t.tx.CopyFrom(ctx, pgx.Identifier{table}, columns,
		pgx.CopyFromSlice(n, func(i int) ([]any, error) {
			return values(i), nil
		}))
	if err != nil {
		return fmt.Errorf("failed to copy rows into %s: %w", table, err)
	}
	if copied != int64(n) {
		return fmt.Errorf("copied %d of %d rows into %s", copied, n, table)
	}
	return nil
}

func (t *pgTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
