package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/learningpython92/FinalDashboard/internal/database/common"
	"github.com/learningpython92/FinalDashboard/internal/types"
	_ "github.com/mattn/go-sqlite3"
)

const dateLayout = "2006-01-02"

type Adapter struct {
	db        *sql.DB
	qb        squirrel.StatementBuilderType
	batchSize int
}

func New() *Adapter {
	return &Adapter{
		qb:        squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		batchSize: common.DefaultBatchSize,
	}
}

func (s *Adapter) Connect(ctx context.Context, url string) error {
	dbPath := strings.TrimPrefix(url, "sqlite://")
	if !strings.Contains(dbPath, "?") {
		dbPath += "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("failed to open SQLite connection: %w", err)
	}

	// One writer keeps the seeding transaction on a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(5 * time.Minute)

	s.db = db
	return nil
}

func (s *Adapter) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Adapter) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Adapter) SetBatchSize(n int) {
	if n > 0 {
		s.batchSize = n
	}
}

// Migrate creates the dashboard tables and indexes if they are missing.
func (s *Adapter) Migrate(ctx context.Context) error {
	for _, table := range common.Tables() {
		if _, err := s.db.ExecContext(ctx, s.GenerateCreateTableSQL(table)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
		for _, index := range table.Indexes {
			if _, err := s.db.ExecContext(ctx, s.GenerateAddIndexSQL(index)); err != nil {
				return fmt.Errorf("failed to create index %s: %w", index.Name, err)
			}
		}
	}
	return nil
}

func (s *Adapter) Begin(ctx context.Context) (common.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &common.SQLTx{
		Tx:          tx,
		QB:          s.qb,
		Quote:       quote,
		BatchSize:   s.batchSize,
		DateLayout:  dateLayout,
		AfterDelete: resetSequence,
	}, nil
}

func (s *Adapter) CountRows(ctx context.Context, table string) (int64, error) {
	return common.CountRows(ctx, s.db, s.qb, quote, table)
}

func (s *Adapter) BusinessStats(ctx context.Context) ([]types.BusinessStats, error) {
	return common.QueryStats(ctx, s.db, s.qb, quote)
}

// resetSequence restarts AUTOINCREMENT ids for a cleared table. SQLite only
// creates sqlite_sequence along with the first AUTOINCREMENT table, so a
// missing one means there is nothing to reset.
func resetSequence(ctx context.Context, tx *sql.Tx, table string) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM sqlite_sequence WHERE name = ?", table)
	if err != nil && !strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("failed to reset ids for %s: %w", table, err)
	}
	return nil
}

func quote(name string) string {
	return `"` + name + `"`
}
