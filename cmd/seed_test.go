package cmd

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// useSQLite points the global config at a fresh SQLite file that does not
// exist yet.
func useSQLite(t *testing.T) string {
	t.Helper()
	t.Setenv("DATABASE_URL", "")
	dbPath := filepath.Join(t.TempDir(), "dash.db")
	viper.Set("database.provider", "sqlite")
	viper.Set("database.url", dbPath)
	t.Cleanup(viper.Reset)
	return dbPath
}

func writeProfile(t *testing.T, doc string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))
	viper.Set("seed.profile", path)
}

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout, colorOut, noColor := os.Stdout, color.Output, color.NoColor
	os.Stdout, color.Output, color.NoColor = w, w, true
	defer func() {
		os.Stdout, color.Output, color.NoColor = stdout, colorOut, noColor
	}()

	fn()
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(out)
}

func TestSeedRejectsExportFormatBeforeWriting(t *testing.T) {
	dbPath := useSQLite(t)
	exportDir := filepath.Join(t.TempDir(), "out")

	var err error
	captureOutput(t, func() {
		err = seed(context.Background(), seedOptions{exportPath: exportDir, exportFormat: "xml"})
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")

	_, statErr := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(statErr), "database should not be opened")
	_, statErr = os.Stat(exportDir)
	assert.True(t, os.IsNotExist(statErr), "export directory should not be created")
}

func TestSeedWithExport(t *testing.T) {
	dbPath := useSQLite(t)
	exportDir := filepath.Join(t.TempDir(), "out")
	seedValue := int64(5)
	writeProfile(t, `
window: {start: "2025-01-01", end: "2025-12-31"}
hire_rate: {min: 0.1, max: 0.1}
availability: {min: 0.9, max: 0.9}
businesses:
  - {name: Energy, headcount: 500}
functions:
  - {name: Sales, weight: 0.4}
  - {name: Legal, weight: 0.6}
kpi_ranges:
  - business: default
    function: default
    time_to_fill: {min: 10, max: 20}
    cost_per_hire: {min: 100, max: 200}
`)

	var err error
	out := captureOutput(t, func() {
		err = seed(context.Background(), seedOptions{randomSeed: &seedValue, exportPath: exportDir, exportFormat: "json"})
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Dataset exported to")
	assert.Contains(t, out, "Database session closed.")

	assert.FileExists(t, dbPath)
	entries, err := os.ReadDir(exportDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasSuffix(entries[0].Name(), ".json"))
}

func TestSeedReportsErrorBeforeClosing(t *testing.T) {
	useSQLite(t)

	// Rounding at headcount 10 leaves the last function a negative gap, so
	// generation fails with the store already open.
	writeProfile(t, `
window: {start: "2025-01-01", end: "2025-12-31"}
availability: {min: 0.9, max: 0.9}
businesses:
  - {name: Energy, headcount: 10}
functions:
  - {name: A, weight: 0.3}
  - {name: B, weight: 0.3}
  - {name: C, weight: 0.4}
kpi_ranges:
  - business: default
    function: default
    time_to_fill: {min: 10, max: 20}
    cost_per_hire: {min: 100, max: 200}
`)

	out := captureOutput(t, func() {
		runSeed(context.Background(), seedOptions{})
	})

	errAt := strings.Index(out, "An error occurred")
	closedAt := strings.Index(out, "Database session closed.")
	require.NotEqual(t, -1, errAt, out)
	require.NotEqual(t, -1, closedAt, out)
	assert.Less(t, errAt, closedAt)
	assert.Equal(t, 1, strings.Count(out, "An error occurred"))
}
