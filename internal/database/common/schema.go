package common

import "github.com/learningpython92/FinalDashboard/internal/types"

// Tables describes the dashboard schema. Adapters render it in their own
// dialect. Index names follow the names the dashboard backend created
// historically so existing databases are reused rather than duplicated.
func Tables() []types.SchemaTable {
	return []types.SchemaTable{
		{
			Name: types.HiringTable,
			Columns: []types.SchemaColumn{
				idColumn(),
				{Name: "business_group", Type: "VARCHAR(255)", Nullable: true},
				{Name: "function", Type: "VARCHAR(255)", Nullable: true},
				{Name: "role_title", Type: "VARCHAR(255)", Nullable: true},
				{Name: "hire_date", Type: "DATE", Nullable: true},
				{Name: "cost_per_hire", Type: "INTEGER", Nullable: true},
				{Name: "time_to_fill", Type: "INTEGER", Nullable: true},
				{Name: "ijp_adherence", Type: "BOOLEAN", Nullable: true},
				{Name: "build_buy_ratio", Type: "VARCHAR(255)", Nullable: true},
				{Name: "diversity_ratio", Type: "BOOLEAN", Nullable: true},
				{Name: "source", Type: "VARCHAR(255)", Nullable: true},
			},
			Indexes: []types.SchemaIndex{
				{Name: "ix_hiring_data_business_group", Table: types.HiringTable, Columns: []string{"business_group"}},
				{Name: "ix_hiring_data_function", Table: types.HiringTable, Columns: []string{"function"}},
			},
		},
		{
			Name: types.SummaryTable,
			Columns: []types.SchemaColumn{
				idColumn(),
				{Name: "business_group", Type: "VARCHAR(255)", Nullable: true},
				{Name: "function", Type: "VARCHAR(255)", Nullable: true},
				{Name: "total_headcount", Type: "INTEGER", Nullable: true},
				{Name: "available_headcount", Type: "INTEGER", Nullable: true},
				{Name: "gap", Type: "INTEGER", Nullable: true},
			},
		},
		{
			Name: types.AlertTable,
			Columns: []types.SchemaColumn{
				idColumn(),
				{Name: "timestamp", Type: "TIMESTAMP", Nullable: true},
				{Name: "metric_name", Type: "VARCHAR(255)", Nullable: true},
				{Name: "value", Type: "FLOAT", Nullable: true},
				{Name: "threshold", Type: "FLOAT", Nullable: true},
				{Name: "severity", Type: "VARCHAR(255)", Nullable: true},
				{Name: "business_group", Type: "VARCHAR(255)", Nullable: true},
				{Name: "function", Type: "VARCHAR(255)", Nullable: true},
			},
		},
	}
}

func idColumn() types.SchemaColumn {
	return types.SchemaColumn{Name: "id", Type: "INTEGER", IsPrimary: true, IsAutoIncrement: true}
}
