package mysql

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/learningpython92/FinalDashboard/internal/database/common"
	"github.com/learningpython92/FinalDashboard/internal/types"
)

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

func (m *Adapter) Connect(ctx context.Context, url string) error {
	cfg, err := mysql.ParseDSN(toDSN(url))
	if err != nil {
		return fmt.Errorf("failed to parse MySQL DSN: %w", err)
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to open MySQL connection: %w", err)
	}
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(15 * time.Minute)
	db.SetConnMaxIdleTime(3 * time.Minute)

	m.db = db
	return nil
}

// toDSN turns a mysql:// URL into the driver's DSN form. Anything else is
// assumed to already be a DSN.
func toDSN(url string) string {
	if !strings.HasPrefix(url, "mysql://") {
		return url
	}
	dsn := strings.TrimPrefix(url, "mysql://")

	atIndex := strings.LastIndex(dsn, "@")
	if atIndex <= 0 {
		return dsn
	}
	credentials := dsn[:atIndex]
	remainder := dsn[atIndex+1:]

	slashIndex := strings.Index(remainder, "/")
	if slashIndex <= 0 {
		return dsn
	}
	hostPort := remainder[:slashIndex]
	dbAndParams := remainder[slashIndex+1:]

	dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=REQUIRED", "tls=skip-verify")
	dbAndParams = strings.ReplaceAll(dbAndParams, "ssl-mode=DISABLED", "tls=false")
	dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=require", "tls=skip-verify")
	dbAndParams = strings.ReplaceAll(dbAndParams, "sslmode=disable", "tls=false")

	return fmt.Sprintf("%s@tcp(%s)/%s", credentials, hostPort, dbAndParams)
}

func (m *Adapter) Close() error {
	if m.db != nil {
		return m.db.Close()
	}
	return nil
}

func (m *Adapter) Ping(ctx context.Context) error {
	return m.db.PingContext(ctx)
}

func (m *Adapter) SetBatchSize(n int) {
	if n > 0 {
		m.batchSize = n
	}
}

func (m *Adapter) Migrate(ctx context.Context) error {
	for _, table := range common.Tables() {
		if _, err := m.db.ExecContext(ctx, m.GenerateCreateTableSQL(table)); err != nil {
			return fmt.Errorf("failed to create table %s: %w", table.Name, err)
		}
	}
	return nil
}

// Begin opens a transaction. Tables are cleared with DELETE because
// TRUNCATE commits implicitly in MySQL.
func (m *Adapter) Begin(ctx context.Context) (common.Tx, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return &common.SQLTx{
		Tx:        tx,
		QB:        m.qb,
		Quote:     quote,
		BatchSize: m.batchSize,
	}, nil
}

func (m *Adapter) CountRows(ctx context.Context, table string) (int64, error) {
	return common.CountRows(ctx, m.db, m.qb, quote, table)
}

func (m *Adapter) BusinessStats(ctx context.Context) ([]types.BusinessStats, error) {
	return common.QueryStats(ctx, m.db, m.qb, quote)
}

func quote(name string) string {
	return "`" + name + "`"
}
