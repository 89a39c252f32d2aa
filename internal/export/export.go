// Package export writes a generated dataset to files, one table per file
// for CSV or a single document for JSON, using the database column names.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/learningpython92/FinalDashboard/internal/database/common"
	"github.com/learningpython92/FinalDashboard/internal/generator"
	"github.com/learningpython92/FinalDashboard/internal/types"
)

var Formats = []string{"csv", "json"}

type table struct {
	name    string
	columns []string
	rows    [][]interface{}
}

// CheckFormat reports whether format is one Write understands.
func CheckFormat(format string) error {
	for _, f := range Formats {
		if f == format {
			return nil
		}
	}
	return fmt.Errorf("unsupported export format: %s. Supported formats: %v", format, Formats)
}

// Write exports data under exportPath and returns the file or directory
// it created. Nothing is created for an unsupported format.
func Write(data *generator.Dataset, exportPath, format string) (string, error) {
	if err := CheckFormat(format); err != nil {
		return "", err
	}
	tables := tablesOf(data)

	if err := os.MkdirAll(exportPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	timestamp := time.Now().Format("2006-01-02_15-04-05")

	if format == "json" {
		return exportToJSON(tables, filepath.Join(exportPath, fmt.Sprintf("export_%s.json", timestamp)))
	}
	return exportToCSV(tables, filepath.Join(exportPath, fmt.Sprintf("export_%s_csv", timestamp)))
}

func tablesOf(data *generator.Dataset) []table {
	summaries := table{name: types.SummaryTable, columns: common.SummaryColumns}
	for _, s := range data.Summaries {
		summaries.rows = append(summaries.rows, common.SummaryValues(s))
	}

	hirings := table{name: types.HiringTable, columns: common.HiringColumns}
	for _, h := range data.Hirings {
		hirings.rows = append(hirings.rows, common.HiringValues(h))
	}

	return []table{summaries, hirings}
}

func exportToJSON(tables []table, filePath string) (string, error) {
	doc := make(map[string][]map[string]interface{}, len(tables))
	for _, t := range tables {
		rows := make([]map[string]interface{}, 0, len(t.rows))
		for _, row := range t.rows {
			record := make(map[string]interface{}, len(t.columns))
			for i, column := range t.columns {
				record[column] = formatValue(row[i])
			}
			rows = append(rows, record)
		}
		doc[t.name] = rows
	}

	jsonData, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal data: %w", err)
	}

	if err := os.WriteFile(filePath, jsonData, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return filePath, nil
}

func exportToCSV(tables []table, dirPath string) (string, error) {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return "", fmt.Errorf("failed to create CSV directory: %w", err)
	}

	for _, t := range tables {
		if err := writeCSV(filepath.Join(dirPath, t.name+".csv"), t); err != nil {
			return "", err
		}
	}

	return dirPath, nil
}

func writeCSV(filePath string, t table) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file for %s: %w", t.name, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(t.columns); err != nil {
		return fmt.Errorf("failed to write CSV header for %s: %w", t.name, err)
	}

	values := make([]string, len(t.columns))
	for _, row := range t.rows {
		for i, v := range row {
			values[i] = fmt.Sprintf("%v", formatValue(v))
		}
		if err := writer.Write(values); err != nil {
			return fmt.Errorf("failed to write CSV row for %s: %w", t.name, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatValue(val interface{}) interface{} {
	if ts, ok := val.(time.Time); ok {
		return ts.Format("2006-01-02")
	}
	return val
}
