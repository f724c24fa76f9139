package runstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

func TestAppendAndList(t *testing.T) {
	store := openTestStore(t)

	first := RunRecord{
		StartedAt:       time.Date(2019, 4, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt:      time.Date(2019, 4, 1, 10, 1, 0, 0, time.UTC),
		Files:           []string{"Trips_2019_Q1.csv"},
		RowsProcessed:   100,
		BadTimeRows:     2,
		BadDurationRows: 1,
	}
	second := RunRecord{
		StartedAt:     time.Date(2019, 7, 1, 10, 0, 0, 0, time.UTC),
		FinishedAt:    time.Date(2019, 7, 1, 10, 2, 0, 0, time.UTC),
		Files:         []string{"Trips_2019_Q1.csv", "Trips_2019_Q2.csv"},
		RowsProcessed: 250,
	}

	require.NoError(t, store.Append(first))
	require.NoError(t, store.Append(second))

	records, err := store.List(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	// Newest first.
	assert.Equal(t, int64(250), records[0].RowsProcessed)
	assert.Equal(t, []string{"Trips_2019_Q1.csv", "Trips_2019_Q2.csv"}, records[0].Files)
	assert.Equal(t, int64(100), records[1].RowsProcessed)
	assert.Equal(t, int64(2), records[1].BadTimeRows)
	assert.True(t, records[1].StartedAt.Equal(first.StartedAt))
}

func TestList_Limit(t *testing.T) {
	store := openTestStore(t)

	for i := int64(1); i <= 5; i++ {
		require.NoError(t, store.Append(RunRecord{RowsProcessed: i}))
	}

	records, err := store.List(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, int64(5), records[0].RowsProcessed)
	assert.Equal(t, int64(4), records[1].RowsProcessed)
}

func TestList_Empty(t *testing.T) {
	store := openTestStore(t)

	records, err := store.List(10)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestOpen_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "runs.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}
