package postgres

import (
	"fmt"
	"strings"

	"github.com/learningpython92/FinalDashboard/internal/types"
)

func (p *Adapter) GenerateCreateTableSQL(table types.SchemaTable) string {
	var lines []string

	lines = append(lines, fmt.Sprintf("CREATE TABLE IF NOT EXISTS \"%s\" (", table.Name))

	for i, column := range table.Columns {
		comma := ","
		if i == len(table.Columns)-1 {
			comma = ""
		}
		lines = append(lines, fmt.Sprintf("  \"%s\" %s%s", column.Name, p.FormatColumnType(column), comma))
	}

	lines = append(lines, ");")
	return strings.Join(lines, "\n")
}

func (p *Adapter) GenerateAddIndexSQL(index types.SchemaIndex) string {
	unique := ""
	if index.Unique {
		unique = "UNIQUE "
	}
	columns := "\"" + strings.Join(index.Columns, "\", \"") + "\""
	return fmt.Sprintf("CREATE %sINDEX IF NOT EXISTS \"%s\" ON \"%s\" (%s);", unique, index.Name, index.Table, columns)
}

func (p *Adapter) FormatColumnType(column types.SchemaColumn) string {
	if column.IsPrimary && column.IsAutoIncrement {
		return "SERIAL PRIMARY KEY"
	}

	columnType := column.Type
	if strings.EqualFold(columnType, "FLOAT") {
		columnType = "DOUBLE PRECISION"
	}

	parts := []string{columnType}
	if column.IsPrimary {
		parts = append(parts, "PRIMARY KEY")
	} else if !column.Nullable {
		parts = append(parts, "NOT NULL")
	}
	return strings.Join(parts, " ")
}
