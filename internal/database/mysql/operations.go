package mysql

import (
	"fmt"
	"strings"

	"github.com/learningpython92/FinalDashboard/internal/types"
)

// GenerateCreateTableSQL renders indexes inline so that re-running it
// never fails on an existing index.
func (m *Adapter) GenerateCreateTableSQL(table types.SchemaTable) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("CREATE TABLE IF NOT EXISTS `%s` (", table.Name))

	for i, column := range table.Columns {
		comma := ","
		if i == len(table.Columns)-1 && len(table.Indexes) == 0 {
			comma = ""
		}
		lines = append(lines, fmt.Sprintf("  `%s` %s%s", column.Name, m.FormatColumnType(column), comma))
	}

	for i, index := range table.Indexes {
		comma := ","
		if i == len(table.Indexes)-1 {
			comma = ""
		}
		lines = append(lines, fmt.Sprintf("  %s%s", m.indexClause(index), comma))
	}

	lines = append(lines, ") ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;")
	return strings.Join(lines, "\n")
}

func (m *Adapter) indexClause(index types.SchemaIndex) string {
	kind := "KEY"
	if index.Unique {
		kind = "UNIQUE KEY"
	}
	return fmt.Sprintf("%s `%s` (`%s`)", kind, index.Name, strings.Join(index.Columns, "`, `"))
}

func (m *Adapter) FormatColumnType(column types.SchemaColumn) string {
	parts := []string{column.Type}

	if column.IsPrimary {
		parts = append(parts, "NOT NULL")
		if column.IsAutoIncrement {
			parts = append(parts, "AUTO_INCREMENT")
		}
		parts = append(parts, "PRIMARY KEY")
		return strings.Join(parts, " ")
	}

	if column.Nullable {
		parts = append(parts, "NULL")
	} else {
		parts = append(parts, "NOT NULL")
	}

	return strings.Join(parts, " ")
}
