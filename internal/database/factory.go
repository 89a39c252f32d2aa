package database

import (
	"fmt"

	"github.com/learningpython92/FinalDashboard/internal/database/mysql"
	"github.com/learningpython92/FinalDashboard/internal/database/postgres"
	"github.com/learningpython92/FinalDashboard/internal/database/sqlite"
)

// Providers lists the accepted values of database.provider.
var Providers = []string{"sqlite", "sqlite3", "postgresql", "postgres", "mysql"}

func NewAdapter(provider string) (DatabaseAdapter, error) {
	switch provider {
	case "postgresql", "postgres":
		return postgres.New(), nil
	case "mysql":
		return mysql.New(), nil
	case "sqlite", "sqlite3", "":
		return sqlite.New(), nil
	default:
		return nil, fmt.Errorf("unsupported database provider: %s", provider)
	}
}
