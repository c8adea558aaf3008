package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/timeshift/progress"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func TestLevelsCommandValidatesCatalog(t *testing.T) {
	require.NoError(t, execute(t, "levels"))
}

func TestRunRecordsHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "runs.db")
	require.NoError(t, execute(t, "run", "--db", db, "--level", "1", "--max-ticks", "5", "--record"))

	store, err := progress.OpenSQL(db)
	require.NoError(t, err)
	defer store.Close()

	// An incomplete run is stored but never counts as a best.
	best, err := store.BestRuns()
	require.NoError(t, err)
	assert.Empty(t, best)

	require.NoError(t, execute(t, "best", "--db", db))
}

func TestRunRejectsUnknownLevel(t *testing.T) {
	assert.Error(t, execute(t, "run", "--level", "11", "--max-ticks", "1"))
}
