package main

import (
	"path/filepath"
	"testing"
	"time"

	"benchgate/internal/benchmark"
	"benchgate/internal/history"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHistory(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "history.db")

	store, err := history.NewSQLiteStore(dbPath)
	require.NoError(t, err)
	defer store.Close()

	base := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	for i, mean := range []float64{100, 110, 99} {
		run := benchmark.Run{
			Timestamp: base.Add(time.Duration(i) * time.Hour),
			Benchmarks: map[string]benchmark.Result{
				"parsing/small": {Name: "parsing/small", Mean: mean, Median: mean, StdDev: 1, Unit: "ns"},
			},
		}
		require.NoError(t, store.RecordRun(run))
	}
	return dbPath
}

func useHistoryDB(t *testing.T, dbPath string) {
	t.Helper()
	viper.Set("history.backend", "sqlite")
	viper.Set("history.dsn", dbPath)
	t.Cleanup(func() {
		viper.Set("history.backend", "sqlite")
		viper.Set("history.dsn", "")
	})
}

func TestTrendListsNames(t *testing.T) {
	useHistoryDB(t, seedHistory(t))

	output, err := executeCommand(rootCmd, "trend")

	require.NoError(t, err)
	assert.Contains(t, output, "parsing/small")
}

func TestTrendShowsSamplesOldestFirst(t *testing.T) {
	useHistoryDB(t, seedHistory(t))

	output, err := executeCommand(rootCmd, "trend", "parsing/small")

	require.NoError(t, err)
	assert.Contains(t, output, "RECORDED")
	assert.Contains(t, output, "+10.00%")
	assert.Contains(t, output, "-10.00%")
	// First row has no previous run to diff against.
	assert.Contains(t, output, "2026-03-14 12:00:00")
}

func TestTrendUnknownBenchmark(t *testing.T) {
	useHistoryDB(t, seedHistory(t))

	_, err := executeCommand(rootCmd, "trend", "does/not/exist")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no recorded runs")
}

func TestTrendEmptyStore(t *testing.T) {
	useHistoryDB(t, filepath.Join(t.TempDir(), "empty.db"))

	output, err := executeCommand(rootCmd, "trend")

	require.NoError(t, err)
	assert.Contains(t, output, "No recorded benchmark runs")
}
