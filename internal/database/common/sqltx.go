package common

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/learningpython92/FinalDashboard/internal/types"
)

// SQLTx implements Tx on top of database/sql for providers whose driver
// goes through it (SQLite, MySQL).
type SQLTx struct {
	Tx        *sql.Tx
	QB        squirrel.StatementBuilderType
	Quote     func(string) string
	BatchSize int

	// DateLayout, when set, writes time values as text in that layout.
	DateLayout string

	// AfterDelete runs inside the transaction once a table is cleared. Its
	// error fails the delete.
	AfterDelete func(ctx context.Context, tx *sql.Tx, table string) error
}

func (t *SQLTx) DeleteAll(ctx context.Context, table string) error {
	if err := CheckTable(table); err != nil {
		return err
	}

	query, args, err := t.QB.Delete(t.Quote(table)).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build delete for %s: %w", table, err)
	}
	if _, err := t.Tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to clear %s: %w", table, err)
	}

	if t.AfterDelete != nil {
		if err := t.AfterDelete(ctx, t.Tx, table); err != nil {
			return err
		}
	}
	return nil
}

func (t *SQLTx) InsertSummaries(ctx context.Context, rows []types.HeadcountSummary) error {
	return t.insert(ctx, types.SummaryTable, SummaryColumns, len(rows), func(i int) []interface{} {
		return SummaryValues(rows[i])
	})
}

func (t *SQLTx) InsertHirings(ctx context.Context, rows []types.HiringRecord) error {
	return t.insert(ctx, types.HiringTable, HiringColumns, len(rows), func(i int) []interface{} {
		return HiringValues(rows[i])
	})
}

// insert writes n rows as multi-row INSERT statements of BatchSize rows.
func (t *SQLTx) insert(ctx context.Context, table string, columns []string, n int, values func(int) []interface{}) error {
	quoted := QuoteAll(columns, t.Quote)

	for _, batch := range Batches(n, t.BatchSize) {
		builder := t.QB.Insert(t.Quote(table)).Columns(quoted...)
		for i := batch[0]; i < batch[1]; i++ {
			builder = builder.Values(t.convert(values(i))...)
		}

		query, args, err := builder.ToSql()
		if err != nil {
			return fmt.Errorf("failed to build insert for %s: %w", table, err)
		}
		if _, err := t.Tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to insert rows %d-%d into %s: %w", batch[0], batch[1], table, err)
		}
	}
	return nil
}

func (t *SQLTx) convert(values []interface{}) []interface{} {
	if t.DateLayout == "" {
		return values
	}
	for i, v := range values {
		if ts, ok := v.(time.Time); ok {
			values[i] = ts.Format(t.DateLayout)
		}
	}
	return values
}

func (t *SQLTx) Commit(ctx context.Context) error {
	return t.Tx.Commit()
}

func (t *SQLTx) Rollback(ctx context.Context) error {
	return t.Tx.Rollback()
}
