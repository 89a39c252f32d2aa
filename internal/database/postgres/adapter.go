package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/learningpython92/FinalDashboard/internal/database/common"
	"github.com/learningpython92/FinalDashboard/internal/types"
)

type Adapter struct {
	pool *pgxpool.Pool
	qb   squirrel.StatementBuilderType
}

func New() *Adapter {
	return &Adapter{
		qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func (p *Adapter) Connect(ctx context.Context, url string) error {
	config, err := pgxpool.ParseConfig(url)
	if err != nil {
		return fmt.Errorf("failed to parse connection URL: %w", err)
	}

	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	config.MaxConns = 2
	config.MinConns = 0
	config.MaxConnLifetime = 15 * time.Minute
	config.MaxConnIdleTime = 3 * time.Minute
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}

	p.pool = pool
	return nil
}

func (p *Adapter) Close() error {
	if p.pool != nil {
		p.pool.Close()
	}
	return nil
}

func (p *Adapter) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// SetBatchSize is a no-op: rows go through COPY in a single stream.
func (p *Adapter) SetBatchSize(n int) {}

func (p *Adapter) Migrate(ctx context.Context) error {
	for _, table := range common.Tables() {
		if _, err := p.pool.Exec(ctx, p.GenerateCreateTableSQL(table)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
		for _, index := range table.Indexes {
			if _, err := p.pool.Exec(ctx, p.GenerateAddIndexSQL(index)); err != nil {
				return fmt.Errorf("failed to create index %s: %w", index.Name, err)
			}
		}
	}
	return nil
}

func (p *Adapter) Begin(ctx context.Context) (common.Tx, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &pgTx{tx: tx}, nil
}

func (p *Adapter) CountRows(ctx context.Context, table string) (int64, error) {
	if err := common.CheckTable(table); err != nil {
		return 0, err
	}

	query, args, err := p.qb.Select("COUNT(*)").From(quote(table)).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count rows in table %s: %w", table, err)
	}
	return count, nil
}

func (p *Adapter) BusinessStats(ctx context.Context) ([]types.BusinessStats, error) {
	query, args, err := common.OverallSelect(p.qb, quote).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summaries: %w", err)
	}
	overall, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (types.BusinessStats, error) {
		var s types.BusinessStats
		err := row.Scan(&s.BusinessGroup, &s.TotalHeadcount, &s.AvailableHeadcount, &s.Gap)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan summaries: %w", err)
	}

	query, args, err = common.HiringSelect(p.qb, quote, avg).ToSql()
	if err != nil {
		return nil, err
	}

	rows, err = p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hiring aggregates: %w", err)
	}
	aggregates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (types.BusinessStats, error) {
		var s types.BusinessStats
		err := row.Scan(&s.BusinessGroup, &s.Hires, &s.AvgCostPerHire, &s.AvgTimeToFill)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan hiring aggregates: %w", err)
	}

	hires := make(map[string]types.BusinessStats, len(aggregates))
	for _, a := range aggregates {
		hires[a.BusinessGroup] = a
	}
	return common.MergeStats(overall, hires), nil
}

func quote(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// avg casts to float8 since AVG over integers yields numeric.
func avg(column string) string {
	return "AVG(" + column + ")::float8"
}
