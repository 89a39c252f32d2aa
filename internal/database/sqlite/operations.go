package sqlite

import (
	"fmt"
	"strings"

	"github.com/learningpython92/FinalDashboard/internal/types"
)

func (s *Adapter) GenerateCreateTableSQL(table types.SchemaTable) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("CREATE TABLE IF NOT EXISTS \"%s\" (", table.Name))

	for i, column := range table.Columns {
		comma := ","
		if i == len(table.Columns)-1 {
			comma = ""
		}
		lines = append(lines, fmt.Sprintf("  \"%s\" %s%s", column.Name, s.FormatColumnType(column), comma))
	}

	lines = append(lines, ");")
	return strings.Join(lines, "\n")
}

func (s *Adapter) GenerateAddIndexSQL(index types.SchemaIndex) string {
	unique := ""
	if index.Unique {
		unique = "UNIQUE "
	}
	columns := "\"" + strings.Join(index.Columns, "\", \"") + "\""
	return fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS \"%s\" ON \"%s\" (%s);", unique, index.Name, index.Table, columns)
}

func (s *Adapter) FormatColumnType(column types.SchemaColumn) string {
	parts := []string{column.Type}

	if column.IsPrimary {
		if column.IsAutoIncrement && strings.ToUpper(column.Type) == "INTEGER" {
			parts = append(parts, "PRIMARY KEY AUTOINCREMENT")
		} else {
			parts = append(parts, "PRIMARY KEY")
		}
	}

	if !column.Nullable && !column.IsPrimary {
		parts = append(parts, "NOT NULL")
	}

	return strings.Join(parts, " ")
}
