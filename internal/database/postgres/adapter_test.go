package postgres

import (
	"testing"

	"github.com/learningpython92/FinalDashboard/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestQuote(t *testing.T) {
	assert.Equal(t, `"hiring_data"`, quote("hiring_data"))
	assert.Equal(t, `"a""b"`, quote(`a"b`))
}

func TestFormatColumnType(t *testing.T) {
	a := New()
	assert.Equal(t, "SERIAL PRIMARY KEY", a.FormatColumnType(types.SchemaColumn{Name: "id", Type: "INTEGER", IsPrimary: true, IsAutoIncrement: true}))
	assert.Equal(t, "DOUBLE PRECISION", a.FormatColumnType(types.SchemaColumn{Name: "value", Type: "FLOAT", Nullable: true}))
	assert.Equal(t, "DATE NOT NULL", a.FormatColumnType(types.SchemaColumn{Name: "d", Type: "DATE"}))
}

func TestGenerateAddIndexSQL(t *testing.T) {
	sql := New().GenerateAddIndexSQL(types.SchemaIndex{
		Name:    "ix_hiring_data_function",
		Table:   types.HiringTable,
		Columns: []string{"function"},
	})
	assert.Equal(t, `CREATE INDEX IF NOT EXISTS "ix_hiring_data_function" ON "hiring_data" ("function");`, sql)
}
