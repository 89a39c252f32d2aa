package database

import (
	"context"

	"github.com/learningpython92/FinalDashboard/internal/database/common"
	"github.com/learningpython92/FinalDashboard/internal/types"
)

type DatabaseAdapter interface {
	Connect(ctx context.Context, url string) error
	Close() error
	Ping(ctx context.Context) error

	// Schema
	Migrate(ctx context.Context) error
	GenerateCreateTableSQL(table types.SchemaTable) string

	// Seeding
	Begin(ctx context.Context) (common.Tx, error)
	SetBatchSize(n int)

	// Read back
	CountRows(ctx context.Context, table string) (int64, error)
	BusinessStats(ctx context.Context) ([]types.BusinessStats, error)
}
